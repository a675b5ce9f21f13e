package http

import (
	"github.com/gofiber/fiber/v2"
)

const (
	sessionEmailKey    = "email"
	sessionUsernameKey = "username"

	localsEmailKey    = "session_email"
	localsUsernameKey = "session_username"
)

// RequireAPISession rejects unauthenticated API calls with a uniform
// Unauthorized body.
func (h *Handler) RequireAPISession(c *fiber.Ctx) error {
	if !h.loadSession(c) {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return c.Next()
}

// RequirePageSession redirects unauthenticated page requests to the login page.
func (h *Handler) RequirePageSession(c *fiber.Ctx) error {
	if !h.loadSession(c) {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Next()
}

// loadSession copies the caller identity from the session into request
// locals. Returns false when there is no active session.
func (h *Handler) loadSession(c *fiber.Ctx) bool {
	sess, err := h.store.Get(c)
	if err != nil {
		return false
	}
	email, ok := sess.Get(sessionEmailKey).(string)
	if !ok || email == "" {
		return false
	}
	username, _ := sess.Get(sessionUsernameKey).(string)
	c.Locals(localsEmailKey, email)
	c.Locals(localsUsernameKey, username)
	return true
}

func sessionEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(localsEmailKey).(string)
	return email
}

func sessionUsername(c *fiber.Ctx) string {
	username, _ := c.Locals(localsUsernameKey).(string)
	return username
}

// Logout destroys the session and sends the caller back to the login page.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if sess, err := h.store.Get(c); err == nil {
		if err := sess.Destroy(); err != nil {
			h.logger.Warn("session destroy failed", "error", err)
		}
	}
	return c.Redirect("/login", fiber.StatusFound)
}
