package http

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts all page and API routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.HomePage)
	app.Get("/signup", h.SignupPage)
	app.Get("/login", h.LoginPage)
	app.Get("/upload", h.RequirePageSession, h.UploadPage)
	app.Get("/dashboard", h.RequirePageSession, h.DashboardPage)
	app.Get("/logout", h.Logout)

	api := app.Group("/api")
	api.Post("/signup", h.Signup)
	api.Post("/login", h.Login)

	// everything registered below requires an active session
	api.Use(h.RequireAPISession)
	api.Post("/upload", h.Upload)
	api.Get("/resumes", h.ListResumes)
	api.Post("/enhance", h.Enhance)
	api.Post("/delete_resume", h.DeleteResume)
	api.Get("/results", h.ListResults)
	api.Post("/download", h.Download)
}
