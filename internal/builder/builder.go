package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/seniorworks/chatbot-backend/internal/api"
	chatapi "github.com/seniorworks/chatbot-backend/internal/api/chat"
	jobapi "github.com/seniorworks/chatbot-backend/internal/api/job"
	knowledgeapi "github.com/seniorworks/chatbot-backend/internal/api/knowledge"
	"github.com/seniorworks/chatbot-backend/internal/config"
	"github.com/seniorworks/chatbot-backend/internal/integration/gemini"
	"github.com/seniorworks/chatbot-backend/internal/pkg/validator"
	"github.com/seniorworks/chatbot-backend/internal/rag"
	"github.com/seniorworks/chatbot-backend/internal/rag/chunker"
	"github.com/seniorworks/chatbot-backend/internal/rag/index"
	"github.com/seniorworks/chatbot-backend/internal/rag/ingest"
	"github.com/seniorworks/chatbot-backend/internal/repository"
	"github.com/seniorworks/chatbot-backend/internal/usecase/chat"
	"github.com/seniorworks/chatbot-backend/internal/usecase/job"
	"github.com/seniorworks/chatbot-backend/internal/usecase/knowledge"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	convRepo := repository.NewConversationPostgres(db)
	jobRepo := repository.NewJobPostgres(db)
	logger.Info("Repositories initialized")

	// Seed the job catalog on first start
	if err := repository.SeedJobs(ctx, jobRepo, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed jobs: %w", err)
	}

	// Initialize embedding and generation providers (with mock support)
	var embedder index.Embedder
	var generator rag.Generator

	if cfg.EnableMocks {
		logger.Info("Using mock providers for embedding and generation")
		embedder = gemini.NewMockEmbedder(cfg.GeminiCfg.EmbedDimension, logger)
		generator = gemini.NewMockGenerator(logger)
	} else {
		logger.Info("Using Gemini providers for embedding and generation")
		client, err := gemini.NewClient(ctx, cfg.GeminiCfg)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("initialize gemini client: %w", err)
		}
		embedder = gemini.NewEmbedder(client, cfg.GeminiCfg, logger)
		generator = gemini.NewGenerator(client, cfg.GeminiCfg, logger)
	}

	// Build the knowledge index before serving queries
	loader := ingest.NewLoader(cfg.KnowledgeCfg.Dir, logger)
	splitter, err := chunker.NewSplitter(cfg.KnowledgeCfg.ChunkSize, cfg.KnowledgeCfg.ChunkOverlap)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("configure chunker: %w", err)
	}

	documents, err := loader.Load()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load knowledge sources: %w", err)
	}
	chunks := splitter.Split(documents)
	holder := index.NewHolder(index.Build(ctx, chunks, embedder, logger))
	logger.Info("Knowledge index built",
		zap.Int("documents", len(documents)),
		zap.Int("chunks", len(chunks)),
		zap.Int("indexed", holder.Load().Len()),
	)

	// Initialize the RAG engine
	engine := rag.NewEngine(
		embedder,
		generator,
		holder,
		cfg.KnowledgeCfg.TopK,
		cfg.KnowledgeCfg.QueryCacheTTL,
		logger,
	)

	// Initialize validators
	reqValidator := validator.NewValidator()

	// Initialize use cases
	chatUC := chat.NewUsecase(convRepo, engine, cfg.KnowledgeCfg.HistoryFetchLimit, logger)
	jobUC := job.NewUsecase(jobRepo, logger)
	knowledgeUC := knowledge.NewUsecase(loader, splitter, embedder, holder, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	chatHandler := chatapi.NewHandler(chatUC, reqValidator)
	jobHandler := jobapi.NewHandler(jobUC)
	knowledgeHandler := knowledgeapi.NewHandler(knowledgeUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(chatHandler, jobHandler, knowledgeHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
