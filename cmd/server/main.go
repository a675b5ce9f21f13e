package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	httpadapter "resume-enhancer/internal/adapter/http"
	repo "resume-enhancer/internal/adapter/repository"
	"resume-enhancer/internal/common"
	"resume-enhancer/internal/infrastructure/migration"
	"resume-enhancer/internal/usecase"
	"resume-enhancer/pkg/ai"
	"resume-enhancer/pkg/extract"
	infra "resume-enhancer/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
)

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			slog.Info("loaded env file", "path", p)
			return
		}
	}
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	loadDotenv()

	cfg := common.LoadConfig()
	ctx := context.Background()

	pool, err := infra.NewPool(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("database not available: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("upload dir not available: %v", err)
	}

	usersRepo := repo.NewUsersRepo(pool)
	resumesRepo := repo.NewResumesRepo(pool)
	resultsRepo := repo.NewResultsRepo(pool)

	accounts := usecase.NewAccounts(usersRepo)
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
	}, slog.Default())
	llm := ai.NewClient(ai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, slog.Default())
	enhancer := usecase.NewEnhancer(llm, extractor, resumesRepo, resultsRepo, cfg.Upload.Dir, slog.Default())

	store := session.New(session.Config{
		Expiration:     cfg.Server.SessionExpiry,
		CookieHTTPOnly: true,
	})

	app := fiber.New(fiber.Config{
		BodyLimit: 4 << 20, // gatekeeper enforces the 1 MiB file ceiling itself
	})
	app.Use(recover.New())
	app.Use(logger.New())

	h := httpadapter.NewHandler(accounts, enhancer, resumesRepo, resultsRepo,
		infra.NewChromedpRenderer(), store, cfg.Upload.Dir, slog.Default())
	h.Register(app)

	slog.Info("server starting", "port", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
