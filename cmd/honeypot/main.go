package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aryan1092raj/HoneyPot/internal/api"
	"github.com/Aryan1092raj/HoneyPot/internal/classifier"
	"github.com/Aryan1092raj/HoneyPot/internal/config"
	"github.com/Aryan1092raj/HoneyPot/internal/engine"
	"github.com/Aryan1092raj/HoneyPot/internal/events"
	"github.com/Aryan1092raj/HoneyPot/internal/groq"
	"github.com/Aryan1092raj/HoneyPot/internal/intel"
	"github.com/Aryan1092raj/HoneyPot/internal/notify"
	"github.com/Aryan1092raj/HoneyPot/internal/session"
	"github.com/Aryan1092raj/HoneyPot/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("honeypot starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session store: postgres wins, then redis, then memory.
	var st store.Store
	switch {
	case cfg.DatabaseURL != "":
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		st = pg
		slog.Info("database session store ready")
	case cfg.RedisURL != "":
		rd, err := store.NewRedis(ctx, cfg.RedisURL, cfg.SessionIdleTTL)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		st = rd
		slog.Info("redis session store ready")
	default:
		st = store.NewMemory(cfg.SessionIdleTTL)
		slog.Warn("no DATABASE_URL or REDIS_URL — sessions are in-memory only")
	}
	defer st.Close()

	// Generator (optional — canned replies without it)
	var gen engine.Generator
	if cfg.GroqAPIKey != "" {
		gen = engine.NewGroqGenerator(groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel))
		slog.Info("groq client ready", "model", cfg.GroqModel)
	} else {
		slog.Warn("GROQ_API_KEY not set — using canned replies")
	}

	// NATS events (optional)
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		var err error
		publisher, err = events.Connect(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set — running without event publishing")
	}

	dispatcher := notify.NewDispatcher(
		cfg.CallbackURL, cfg.CallbackTimeout, cfg.CallbackRetries,
		publisher, slog.Default(),
	)

	policy := session.Policy{
		TrustBuildingMax: cfg.PhaseTrustMax,
		ProbingMax:       cfg.PhaseProbingMax,
		ExtractionMax:    cfg.PhaseExtractionMax,
		MaxMessages:      cfg.MaxMessages,
		MinMessages:      cfg.MinMessages,
		IntelThreshold:   cfg.IntelThreshold,
		HistoryWindow:    cfg.HistoryWindow,
	}

	cls := classifier.New(slog.Default())
	eng := engine.New(
		st,
		session.NewMachine(policy),
		cls,
		intel.New(slog.Default()),
		gen,
		dispatcher,
		publisher,
		cfg.GeneratorTimeout,
		cfg.CallbackTimeout*time.Duration(cfg.CallbackRetries+1),
		slog.Default(),
	)

	srv := api.NewServer(cfg.Port, cfg.APIKey, eng, st, cls, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("honeypot ready", "port", cfg.Port, "callback_url", cfg.CallbackURL)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("honeypot stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
