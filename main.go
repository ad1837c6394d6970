package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/config"
	"github.com/askdb-ai/askdb-engine/pkg/database"
	"github.com/askdb-ai/askdb-engine/pkg/handlers"
	"github.com/askdb-ai/askdb-engine/pkg/llm"
	"github.com/askdb-ai/askdb-engine/pkg/logging"
	"github.com/askdb-ai/askdb-engine/pkg/models"
	"github.com/askdb-ai/askdb-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("provider", cfg.AI.Provider),
		zap.String("llm_model", cfg.AI.LLMModel),
		zap.Bool("database_enabled", cfg.Database.Enabled))

	client, err := llm.NewClient(&llm.Config{
		Endpoint:       cfg.AI.LLMBaseURL,
		Model:          cfg.AI.LLMModel,
		EmbeddingModel: cfg.AI.EmbeddingModel,
		APIKey:         cfg.AI.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create AI client", zap.Error(err))
	}

	// Embeddings always go through the OpenAI-compatible client; the chat
	// generator is swappable.
	var generator llm.TextGenerator = client
	if cfg.AI.Provider == "anthropic" {
		anthropicGen, err := llm.NewAnthropicGenerator(cfg.AI.AnthropicAPIKey, cfg.AI.LLMModel, logger)
		if err != nil {
			logger.Fatal("failed to create Anthropic generator", zap.Error(err))
		}
		generator = anthropicGen
	}

	signatures := models.DefaultDomainSignatures()
	if cfg.DomainSignaturesPath != "" {
		signatures, err = models.LoadDomainSignatures(cfg.DomainSignaturesPath)
		if err != nil {
			logger.Fatal("failed to load domain signatures", zap.Error(err))
		}
		logger.Info("loaded custom domain signatures",
			zap.String("path", cfg.DomainSignaturesPath),
			zap.Int("count", len(signatures)))
	}

	agent := services.NewAgent(
		services.NewDomainDetector(signatures, client, logger),
		services.NewIntentClassifier(models.DefaultIntentSignatures(), client, logger),
		services.NewEntityExtractor(),
		services.NewQueryGenerator(generator, nil, logger),
		services.NewResponseGenerator(generator, nil, logger),
		services.NewChartSelector(models.DomainChartPreferences(), logger),
		signatures,
		logger,
	)

	var executor *database.Executor
	if cfg.Database.Enabled {
		db, err := database.NewConnection(context.Background(), &cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database",
				zap.String("conn", logging.SanitizeConnectionString(cfg.Database.ConnectionString())),
				zap.Error(err))
		}
		defer db.Close()
		executor = database.NewExecutor(db, logger)
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database))
	}

	mux := http.NewServeMux()

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAskHandler(agent, executor, logger).RegisterRoutes(mux)
	handlers.NewSchemaHandler(agent, logger).RegisterRoutes(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("starting askdb-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
