package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/seniorworks/chatbot-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// Knowledge base / RAG configuration
	KnowledgeCfg KnowledgeConfig `envPrefix:"KNOWLEDGE_"`

	// Gemini provider configuration
	GeminiCfg GeminiConfig `envPrefix:"GEMINI_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration: when set, embedding and generation use local
	// mocks instead of the Gemini API.
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// KnowledgeConfig controls corpus ingestion, chunking and retrieval.
type KnowledgeConfig struct {
	Dir               string        `env:"DIR" envDefault:"data"`
	ChunkSize         int           `env:"CHUNK_SIZE" envDefault:"500"`
	ChunkOverlap      int           `env:"CHUNK_OVERLAP" envDefault:"50"`
	TopK              int           `env:"TOP_K" envDefault:"3"`
	HistoryFetchLimit int           `env:"HISTORY_FETCH_LIMIT" envDefault:"5"`
	QueryCacheTTL     time.Duration `env:"QUERY_CACHE_TTL" envDefault:"5m"`
}

// GeminiConfig configures the embedding and generation provider. The same
// embedding model serves indexing and querying so the vector spaces match.
type GeminiConfig struct {
	APIKey         string               `env:"API_KEY"`
	EmbedModel     string               `env:"EMBED_MODEL" envDefault:"gemini-embedding-001"`
	ChatModel      string               `env:"CHAT_MODEL" envDefault:"gemini-2.5-flash"`
	EmbedDimension int                  `env:"EMBED_DIMENSION" envDefault:"768"`
	Temperature    float32              `env:"TEMPERATURE" envDefault:"0.7"`
	Timeout        time.Duration        `env:"TIMEOUT" envDefault:"30s"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.KnowledgeCfg.ChunkSize < 1 {
		errors = append(errors, fmt.Sprintf("KNOWLEDGE_CHUNK_SIZE must be positive, got %d", cfg.KnowledgeCfg.ChunkSize))
	}

	if cfg.KnowledgeCfg.ChunkOverlap < 0 || cfg.KnowledgeCfg.ChunkOverlap >= cfg.KnowledgeCfg.ChunkSize {
		errors = append(errors, fmt.Sprintf("KNOWLEDGE_CHUNK_OVERLAP must be in [0, KNOWLEDGE_CHUNK_SIZE), got %d", cfg.KnowledgeCfg.ChunkOverlap))
	}

	if cfg.KnowledgeCfg.TopK < 0 {
		errors = append(errors, fmt.Sprintf("KNOWLEDGE_TOP_K must be >= 0, got %d", cfg.KnowledgeCfg.TopK))
	}

	if cfg.KnowledgeCfg.HistoryFetchLimit < 0 {
		errors = append(errors, fmt.Sprintf("KNOWLEDGE_HISTORY_FETCH_LIMIT must be >= 0, got %d", cfg.KnowledgeCfg.HistoryFetchLimit))
	}

	if cfg.GeminiCfg.EmbedDimension < 1 {
		errors = append(errors, fmt.Sprintf("GEMINI_EMBED_DIMENSION must be positive, got %d", cfg.GeminiCfg.EmbedDimension))
	}

	if !cfg.EnableMocks && cfg.GeminiCfg.APIKey == "" {
		errors = append(errors, "GEMINI_API_KEY is required when ENABLE_MOCKS is false")
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
