package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Load when no OpenAI credential is available.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set: add it to the environment or to a .env file next to the binary")

type Config struct {
	App    AppConfig
	OpenAI OpenAIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	DataDir            string
	StatePath          string
	QuestionsPath      string
	LogFilePath        string
	CorsAllowedOrigins string
}

type OpenAIConfig struct {
	APIKey        string
	DefaultModel  string
	AllowedModels []string
	PollInterval  time.Duration
	IndexTimeout  time.Duration
	AskTimeout    time.Duration
}

// Load reads configuration from the environment, picking up a local .env
// file first if one exists. It fails when the OpenAI credential is missing
// so the process can stop before serving anything.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			DataDir:            getEnv("DATA_DIR", "data"),
			StatePath:          getEnv("STATE_PATH", "app_state.json"),
			QuestionsPath:      getEnv("QUESTIONS_PATH", "questions.yaml"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		OpenAI: OpenAIConfig{
			APIKey:        apiKey,
			DefaultModel:  getEnv("OPENAI_MODEL", "gpt-5-mini"),
			AllowedModels: splitList(getEnv("OPENAI_ALLOWED_MODELS", "gpt-5-mini,gpt-5")),
			PollInterval:  getEnvAsDuration("OPENAI_POLL_INTERVAL", 2*time.Second),
			IndexTimeout:  getEnvAsDuration("OPENAI_INDEX_TIMEOUT", 10*time.Minute),
			AskTimeout:    getEnvAsDuration("OPENAI_ASK_TIMEOUT", 2*time.Minute),
		},
	}, nil
}

// ModelAllowed reports whether the given model is on the configured allow-list.
func (c OpenAIConfig) ModelAllowed(model string) bool {
	for _, m := range c.AllowedModels {
		if m == model {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
