package http

import (
	"bytes"
	"html/template"

	"resume-enhancer/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// The page layer is intentionally minimal: the real UI is served elsewhere.
// These routes exist for the session contract (public pages, gated pages,
// logout redirect).

func page(c *fiber.Ctx, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<!doctype html><html><body>" + body + "</body></html>")
}

func (h *Handler) HomePage(c *fiber.Ctx) error {
	return page(c, `<h1>Resume Enhancer</h1><p><a href="/signup">Sign up</a> or <a href="/login">log in</a>.</p>`)
}

func (h *Handler) SignupPage(c *fiber.Ctx) error {
	return page(c, `<h1>Sign up</h1><p>POST /api/signup</p>`)
}

func (h *Handler) LoginPage(c *fiber.Ctx) error {
	return page(c, `<h1>Log in</h1><p>POST /api/login</p>`)
}

func (h *Handler) UploadPage(c *fiber.Ctx) error {
	return page(c, `<h1>Upload a resume</h1><p>POST /api/upload (multipart field "resume")</p>`)
}

var dashboardTpl = template.Must(template.New("dashboard").Parse(
	`<h1>Dashboard</h1><p>{{.Username}} ({{.Email}})</p><ul>` +
		`{{range .Resumes}}<li>{{.OriginalName}} — {{.Filename}}</li>{{else}}<li>No uploads yet</li>{{end}}` +
		`</ul><p><a href="/logout">Log out</a></p>`))

func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	email := sessionEmail(c)
	records, err := h.resumes.ListByEmail(c.Context(), email)
	if err != nil {
		h.logger.Error("dashboard list failed", "email", email, "error", err)
		records = nil
	}

	var buf bytes.Buffer
	data := struct {
		Email    string
		Username string
		Resumes  []domain.ResumeRecord
	}{email, sessionUsername(c), records}
	if err := dashboardTpl.Execute(&buf, data); err != nil {
		return fiber.ErrInternalServerError
	}
	return page(c, buf.String())
}

var resultTpl = template.Must(template.New("result").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><style>
body { font-family: Georgia, serif; margin: 2.5cm; font-size: 12pt; }
h1 { font-size: 14pt; border-bottom: 1px solid #444; }
pre { white-space: pre-wrap; font: inherit; }
.letter { page-break-before: always; }
</style></head>
<body>
<h1>Enhanced Resume</h1>
<pre>{{.EnhancedResume}}</pre>
<div class="letter">
<h1>Cover Letter</h1>
<pre>{{.CoverLetter}}</pre>
</div>
</body>
</html>`))

// resultHTML builds the printable document for a stored enhancement result.
func resultHTML(res *domain.EnhancedResult) (string, error) {
	var buf bytes.Buffer
	if err := resultTpl.Execute(&buf, res); err != nil {
		return "", err
	}
	return buf.String(), nil
}
