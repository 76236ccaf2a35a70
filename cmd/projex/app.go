package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"projex/internal/actions"
	"projex/internal/config"
	"projex/internal/logger"
	"projex/internal/state"
	"projex/internal/storage/memory"
	"projex/internal/storage/sqlite"
)

// app holds the pieces shared by every command.
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	actions *actions.Actions
	close   func() error
}

func newApp(ctx context.Context, f *flags, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.addr != "" {
		cfg.HTTP.Addr = f.addr
	}
	if f.staticDir != "" {
		cfg.HTTP.StaticDir = f.staticDir
	}
	if f.dbPath != "" {
		cfg.Storage.DBPath = f.dbPath
	}
	if f.memory {
		cfg.Storage.DBPath = ""
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.fast {
		cfg.App.Fast = true
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}, logOut)

	var (
		persist state.Persistence
		closer  = func() error { return nil }
	)
	if cfg.Storage.DBPath == "" {
		persist = memory.New()
		log.Info().Msg("using in-memory storage")
	} else {
		db, err := sqlite.Open(cfg.Storage.DBPath, log)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		if keys, err := db.Keys(ctx); err == nil {
			log.Debug().Strs("keys", keys).Msg("persisted documents")
		}
		persist, closer = db, db.Close
	}

	initial, err := state.Restore(ctx, persist)
	if err != nil {
		// A corrupt session document only costs the user a sign-in.
		log.Warn().Err(err).Msg("could not restore session")
	}
	if initial.Auth.User != nil {
		log.Info().Str("user", initial.Auth.User.Email).Msg("session restored")
	}

	opts := []actions.Option{actions.WithLogger(log)}
	if cfg.App.Fast {
		opts = append(opts, actions.WithDelays(actions.NoDelays))
	}
	store := state.NewStore(initial, log)

	return &app{
		cfg:     cfg,
		logger:  log,
		actions: actions.New(store, persist, opts...),
		close:   closer,
	}, nil
}
