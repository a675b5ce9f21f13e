package http

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"resume-enhancer/internal/common"
	"resume-enhancer/internal/domain"
	"resume-enhancer/internal/model"
	"resume-enhancer/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// ResultsStore is the enhancement-history read surface.
type ResultsStore interface {
	ListByEmail(ctx context.Context, email string) ([]domain.EnhancedResult, error)
	Get(ctx context.Context, email string, id uuid.UUID) (*domain.EnhancedResult, error)
}

// Renderer turns HTML into PDF bytes for result downloads.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	accounts  *usecase.Accounts
	enhancer  *usecase.Enhancer
	resumes   usecase.ResumesRepo
	results   ResultsStore
	renderer  Renderer
	store     *session.Store
	uploadDir string
	logger    *slog.Logger
}

func NewHandler(accounts *usecase.Accounts, enhancer *usecase.Enhancer, resumes usecase.ResumesRepo,
	results ResultsStore, renderer Renderer, store *session.Store, uploadDir string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		accounts:  accounts,
		enhancer:  enhancer,
		resumes:   resumes,
		results:   results,
		renderer:  renderer,
		store:     store,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
}

// Signup creates an account. POST /api/signup {email,password,username}
func (h *Handler) Signup(c *fiber.Ctx) error {
	if err := model.ValidateJSON("signup", c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, "All fields required")
	}
	var req model.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.accounts.SignUp(c.Context(), req.Email, req.Password, req.Username); err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return fail(c, fiber.StatusConflict, "Email already registered")
		}
		h.logger.Error("signup failed", "email", req.Email, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not create account")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Account created successfully"})
}

// Login checks credentials and opens a session. POST /api/login {email,password}
func (h *Handler) Login(c *fiber.Ctx) error {
	if err := model.ValidateJSON("login", c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, "All fields required")
	}
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}

	username, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			return fail(c, fiber.StatusUnauthorized, "User not found")
		case errors.Is(err, common.ErrWrongPassword):
			return fail(c, fiber.StatusUnauthorized, "Invalid password")
		}
		h.logger.Error("login failed", "email", req.Email, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not log in")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Could not open session")
	}
	sess.Set(sessionEmailKey, req.Email)
	sess.Set(sessionUsernameKey, username)
	if err := sess.Save(); err != nil {
		return fail(c, fiber.StatusInternalServerError, "Could not save session")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Upload stores a validated resume file. POST /api/upload, multipart field "resume".
func (h *Handler) Upload(c *fiber.Ctx) error {
	email := sessionEmail(c)

	file, err := c.FormFile("resume")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No file selected")
	}
	if err := usecase.ValidateUpload(file.Filename, file.Size); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBadExtension):
			return fail(c, fiber.StatusBadRequest, "Only PDF or JPG allowed")
		case errors.Is(err, usecase.ErrFileTooLarge):
			return fail(c, fiber.StatusBadRequest, "File must be under 1MB")
		}
		return fail(c, fiber.StatusBadRequest, "No file selected")
	}

	stored := usecase.StoredName(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, stored)); err != nil {
		h.logger.Error("save upload failed", "email", email, "filename", stored, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not store file")
	}

	rec := &domain.ResumeRecord{Email: email, Filename: stored, OriginalName: file.Filename}
	if err := h.resumes.Add(c.Context(), rec); err != nil {
		h.logger.Error("record upload failed", "email", email, "filename", stored, "error", err)
		// keep disk and records consistent when the insert fails
		if rmErr := os.Remove(filepath.Join(h.uploadDir, stored)); rmErr != nil {
			h.logger.Warn("orphan upload cleanup failed", "filename", stored, "error", rmErr)
		}
		return fail(c, fiber.StatusInternalServerError, "Could not record upload")
	}

	return c.JSON(fiber.Map{"success": true, "filename": stored, "original_name": file.Filename})
}

// ListResumes returns the caller's uploads. GET /api/resumes
func (h *Handler) ListResumes(c *fiber.Ctx) error {
	email := sessionEmail(c)
	records, err := h.resumes.ListByEmail(c.Context(), email)
	if err != nil {
		h.logger.Error("list resumes failed", "email", email, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not list resumes")
	}
	if records == nil {
		records = []domain.ResumeRecord{}
	}
	return c.JSON(fiber.Map{"success": true, "resumes": records})
}

// Enhance runs the enhancement flow. POST /api/enhance {job,filename}
func (h *Handler) Enhance(c *fiber.Ctx) error {
	if err := model.ValidateJSON("enhance", c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, "Job description and filename required")
	}
	var req model.EnhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := sessionEmail(c)
	res, err := h.enhancer.Enhance(c.Context(), email, req.Filename, req.Job)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "Resume not found")
		case errors.Is(err, common.ErrUpstreamUnavailable):
			return fail(c, fiber.StatusBadGateway, "Enhancement service unavailable, try again later")
		case errors.Is(err, common.ErrMalformedResponse):
			return fail(c, fiber.StatusBadGateway, "Enhancement service returned an unusable answer, try again")
		}
		h.logger.Error("enhance failed", "email", email, "filename", req.Filename, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not enhance resume")
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"improved_resume": res.EnhancedResume,
		"cover_letter":    res.CoverLetter,
	})
}

// DeleteResume removes a record and its stored blob. POST /api/delete_resume {filename}
func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	if err := model.ValidateJSON("delete_resume", c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, "Filename required")
	}
	var req model.DeleteResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := sessionEmail(c)
	if err := h.resumes.Remove(c.Context(), email, req.Filename); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Resume not found")
		}
		h.logger.Error("delete resume failed", "email", email, "filename", req.Filename, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not delete resume")
	}

	// record is gone; a leftover blob is logged, not surfaced
	if err := os.Remove(filepath.Join(h.uploadDir, req.Filename)); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("blob removal failed", "filename", req.Filename, "error", err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListResults returns the caller's enhancement history. GET /api/results
func (h *Handler) ListResults(c *fiber.Ctx) error {
	email := sessionEmail(c)
	results, err := h.results.ListByEmail(c.Context(), email)
	if err != nil {
		h.logger.Error("list results failed", "email", email, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not list results")
	}
	if results == nil {
		results = []domain.EnhancedResult{}
	}
	return c.JSON(fiber.Map{"success": true, "results": results})
}

// Download renders one enhancement result as a PDF. POST /api/download {result_id}
func (h *Handler) Download(c *fiber.Ctx) error {
	if err := model.ValidateJSON("download", c.Body()); err != nil {
		return fail(c, fiber.StatusBadRequest, "Result id required")
	}
	var req model.DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid payload")
	}
	id, err := uuid.Parse(req.ResultID)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid result id")
	}

	email := sessionEmail(c)
	res, err := h.results.Get(c.Context(), email, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Result not found")
		}
		h.logger.Error("load result failed", "email", email, "result_id", req.ResultID, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not load result")
	}

	html, err := resultHTML(res)
	if err != nil {
		h.logger.Error("render result html failed", "result_id", req.ResultID, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not render result")
	}
	pdf, err := h.renderer.RenderHTMLToPDF(c.Context(), html)
	if err != nil {
		h.logger.Error("render result pdf failed", "result_id", req.ResultID, "error", err)
		return fail(c, fiber.StatusInternalServerError, "Could not render PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="enhanced-resume.pdf"`)
	return c.Send(pdf)
}
