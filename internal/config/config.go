// ABOUTME: Centralized configuration for the docchat session and capabilities
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for a docchat session.
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	MaxChunkChars int
	TopK          int

	// Enrichment settings
	SpellCheck  bool
	DatamuseURL string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("DOCCHAT_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("DOCCHAT_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		MaxChunkChars:  getEnvInt("DOCCHAT_CHUNK_CHARS", 2500),
		TopK:           getEnvInt("DOCCHAT_TOP_K", 4),
		SpellCheck:     getEnvBool("DOCCHAT_SPELL_CHECK", false),
		DatamuseURL:    getEnv("DOCCHAT_DATAMUSE_URL", "https://api.datamuse.com"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxChunkChars < 500 {
		return fmt.Errorf("DOCCHAT_CHUNK_CHARS must be at least 500, got %d", c.MaxChunkChars)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("DOCCHAT_TOP_K must be positive, got %d", c.TopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
