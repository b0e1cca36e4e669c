package config

import (
	"os"
	"strconv"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Auth    AuthConfig
	AI      AIConfig
	Storage StorageConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DBConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret string
}

type AIConfig struct {
	// Generation provider: "openai", "groq", "gemini" or "vertex_anthropic"
	Provider string
	Model    string
	BaseURL  string
	APIKey   string

	// Embedding provider: "openai" or "vertex"
	EmbeddingProvider string
	EmbeddingModel    string

	GCPProjectID   string
	GCPRegion      string
	GCPCredentials string // base64-encoded service account JSON
}

type StorageConfig struct {
	// "local" or "gcs"
	Backend   string
	Bucket    string
	LocalRoot string
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Port:               getEnv("PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/timeprint.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		DB: DBConfig{
			URL: getEnv("DB_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		AI: AIConfig{
			Provider:          getEnv("LLM_PROVIDER", "openai"),
			Model:             getEnv("LLM_MODEL", "gpt-4.1"),
			BaseURL:           getEnv("LLM_BASE_URL", ""),
			APIKey:            getEnv("OPENAI_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			GCPProjectID:      getEnv("GOOGLE_CLOUD_PROJECT_ID", ""),
			GCPRegion:         getEnv("GOOGLE_CLOUD_VERTEXAI_LOCATION", "us-east5"),
			GCPCredentials:    getEnv("GCP_SERVICE_ACCOUNT_CREDENTIALS", ""),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "local"),
			Bucket:    getEnv("STORAGE_BUCKET", ""),
			LocalRoot: getEnv("STORAGE_LOCAL_ROOT", "public"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
