package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shahparacha/timeprint-gpt/internal/api"
	"github.com/shahparacha/timeprint-gpt/internal/api/middleware"
	"github.com/shahparacha/timeprint-gpt/internal/api/routes"
	v1 "github.com/shahparacha/timeprint-gpt/internal/api/routes/v1"
	"github.com/shahparacha/timeprint-gpt/internal/config"
	"github.com/shahparacha/timeprint-gpt/internal/handlers"
	"github.com/shahparacha/timeprint-gpt/internal/libraries"
	llmHandlers "github.com/shahparacha/timeprint-gpt/internal/llm_handlers"
	"github.com/shahparacha/timeprint-gpt/internal/pkg/logger"
	"github.com/shahparacha/timeprint-gpt/internal/repo"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/generator"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/ingest"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/retrieval"
	"github.com/shahparacha/timeprint-gpt/internal/timeprint/workflow"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zlog := logger.New(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer zlog.Sync()

	// Connect to database
	if err := config.ConnectDB(cfg.DB.URL); err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer config.CloseDB()

	// Run migrations
	if err := config.MigrateAllModels(); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()

	llmClient, err := llmHandlers.NewClient(ctx, cfg.AI)
	if err != nil {
		zlog.Fatal("failed to init llm client", zap.Error(err))
	}
	embedder, err := llmHandlers.NewEmbeddingClient(ctx, cfg.AI)
	if err != nil {
		zlog.Fatal("failed to init embedding client", zap.Error(err))
	}
	store, err := libraries.NewObjectStore(ctx, cfg.Storage, cfg.AI.GCPCredentials)
	if err != nil {
		zlog.Fatal("failed to init object store", zap.Error(err))
	}

	// Repositories
	sessionRepo := repo.NewChatSessionRepository(config.DB)
	projectRepo := repo.NewProjectRepository(config.DB)
	subcontractorRepo := repo.NewSubcontractorRepository(config.DB)
	workerRepo := repo.NewWorkerRepository(config.DB)
	identificationRepo := repo.NewIdentificationRepository(config.DB)
	blueprintRepo := repo.NewBlueprintRepository(config.DB)
	reportRepo := repo.NewReportRepository(config.DB)
	documentRepo := repo.NewDocumentRepository(config.DB)

	// Chat pipeline
	searcher := retrieval.NewVectorSearcher(embedder, documentRepo, zlog)
	gen := generator.New(llmClient, zlog)
	wf := workflow.New(sessionRepo, searcher, gen, zlog)
	ingestor := ingest.New(embedder, documentRepo, zlog)

	deps := v1.Deps{
		Auth:            middleware.RequireAuth(cfg.Auth.JWTSecret),
		Chat:            handlers.NewChatHandler(sessionRepo, wf, zlog),
		Projects:        handlers.NewProjectHandler(projectRepo, zlog),
		Subcontractors:  handlers.NewSubcontractorHandler(subcontractorRepo, zlog),
		Workers:         handlers.NewWorkerHandler(workerRepo, zlog),
		Identifications: handlers.NewIdentificationHandler(identificationRepo, store, zlog),
		Blueprints:      handlers.NewBlueprintHandler(blueprintRepo, store, zlog),
		Reports:         handlers.NewReportHandler(reportRepo, store, zlog),
		Documents:       handlers.NewDocumentHandler(ingestor, zlog),
	}

	// Create and configure Fiber app
	app := api.NewServer(cfg, zlog)

	// Register routes
	routes.Register(app, deps)

	// Start server
	if err := api.StartServer(app, cfg.App.Port, zlog); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
