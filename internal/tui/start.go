package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/logger"
	"github.com/tatianab/treasure-hunter/internal/telemetry"
)

// Start loads configuration from the environment and plays one session.
// A bankrupt hunter is reported as engine.ErrBankrupt.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	state, err := Play(ctx, cfg)
	if err != nil {
		return err
	}
	if state == engine.StateBankrupt {
		return engine.ErrBankrupt
	}
	return nil
}

// Play sets up logging and tracing for a session, runs it in the configured
// front end and saves its transcript.
func Play(ctx context.Context, cfg *config.Config) (engine.State, error) {
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return engine.StateWelcome, fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, logFile)

	sessionID := logger.NewSessionID()
	ctx = logger.WithSessionID(ctx, sessionID)
	log := logger.FromContext(ctx)

	tracer := telemetry.NoopTracer()
	if cfg.TelemetryEnabled() {
		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			log.Warn("Tracing disabled", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Warn("Failed to flush traces", "error", err)
				}
			}()
			tracer = telemetry.Tracer("game")
		}
	}

	opts := engine.Options{
		Source:    engine.NewSource(cfg.Seed),
		Tracer:    tracer,
		SessionID: sessionID,
	}
	log.Info("Starting session", "ui", cfg.UI, "seed", cfg.Seed)

	var (
		g     *engine.Game
		state engine.State
	)
	switch cfg.UI {
	case config.UIConsole:
		g, state, err = RunConsole(ctx, opts, os.Stdin, os.Stdout)
	default:
		g, state, err = Run(ctx, opts)
	}

	// Closing the input or interrupting the game just ends the session.
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		log.Info("Player left", "reason", err)
		err = nil
	}

	if g != nil && cfg.TranscriptDir != "" {
		if saveErr := g.Transcript().Save(cfg.TranscriptDir); saveErr != nil {
			log.Error("Failed to save transcript", "dir", cfg.TranscriptDir, "error", saveErr)
		} else {
			log.Debug("Saved transcript", "dir", cfg.TranscriptDir)
		}
	}

	log.Info("Session ended", "outcome", state.String())
	return state, err
}
