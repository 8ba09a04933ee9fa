package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	LLM      LLMConfig
	Upload   UploadConfig
	Risk     RiskConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

// LLMConfig controls the optional external model. Enabled is only the default;
// callers can still switch the model off per request.
type LLMConfig struct {
	Enabled         bool
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxAttempts     int
	PromptCharLimit int
}

type UploadConfig struct {
	MaxBytes int64
}

// RiskConfig holds the lower bounds of the SUSPICIOUS and FRAUD_LIKELY bands.
type RiskConfig struct {
	SuspiciousThreshold  float64
	FraudLikelyThreshold float64
}

// Available reports whether a model client can be built at all.
func (c LLMConfig) Available() bool {
	return c.Enabled && c.APIKey != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 4),
			MaxRetries: getIntEnv("MAX_RETRIES", 1),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 100),
		},
		LLM: LLMConfig{
			Enabled:         getBoolEnv("LLM_ENABLED", true),
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("LLM_MODEL", "gemini-2.5-flash"),
			Timeout:         getDurationEnv("LLM_TIMEOUT", 20*time.Second),
			MaxAttempts:     getIntEnv("LLM_MAX_ATTEMPTS", 2),
			PromptCharLimit: getIntEnv("LLM_PROMPT_CHAR_LIMIT", 6000),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getIntEnv("MAX_UPLOAD_BYTES", 10<<20)),
		},
		Risk: RiskConfig{
			SuspiciousThreshold:  getFloatEnv("RISK_SUSPICIOUS_THRESHOLD", 18),
			FraudLikelyThreshold: getFloatEnv("RISK_FRAUD_LIKELY_THRESHOLD", 40),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid number for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
