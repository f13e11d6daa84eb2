// ABOUTME: Shared session construction for CLI commands
// ABOUTME: Builds capabilities from configuration; missing API keys degrade features
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/harper/docchat/internal/config"
	"github.com/harper/docchat/internal/core"
	"github.com/harper/docchat/internal/enrich"
	"github.com/harper/docchat/internal/llm"
	"github.com/harper/docchat/internal/reader"
)

// newLogger builds the CLI logger, silenced by --quiet.
func newLogger() zerolog.Logger {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if quiet {
		out = io.Discard
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// buildSession loads configuration and assembles a session with every
// capability the environment supports. Without an OpenAI key the session
// still works through keyword retrieval.
func buildSession(logger zerolog.Logger) (*core.Session, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deps := core.SessionDeps{
		Readers:  reader.Readers(cfg.MaxChunkChars),
		Synonyms: enrich.NewDatamuseClientWithURL(cfg.DatamuseURL),
		TopK:     cfg.TopK,
		Logger:   logger,
	}

	if cfg.SpellCheck {
		deps.Spell = enrich.NewLanguageToolClient()
	}

	if cfg.OpenAIKey != "" {
		client, err := llm.NewClient(llm.ClientConfig{
			APIKey:         cfg.OpenAIKey,
			ChatModel:      cfg.ChatModel,
			EmbeddingModel: cfg.EmbeddingModel,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RetryDelay:     cfg.RetryDelay,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("OpenAI client unavailable, falling back to keyword retrieval")
		} else {
			deps.Embedder = client
			deps.Completer = client
		}
	} else {
		logger.Debug().Msg("OPENAI_API_KEY not set, semantic retrieval disabled")
	}

	return core.NewSession(deps), nil
}
