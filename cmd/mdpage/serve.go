package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdpage/internal/hints"
	"github.com/alnah/go-mdpage/internal/server"
)

// runServe starts the HTTP server and blocks until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(env, flags.common.config)
	if err != nil {
		return err
	}
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	mergeContentFlags(flags.fs, &flags.content, cfg)
	mergeLogFlags(flags.common, flags.log, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := newLogger(env.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
	defer undo()

	renderer, err := newRenderer(env, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("renderer ready",
		"documents", cfg.Content.DocumentsDir,
		"components", renderer.Components())

	err = server.ListenAndServe(ctx, server.Options{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, server.New(renderer, logger), logger)
	if errors.Is(err, server.ErrListen) {
		return withHint(err, hints.ForListen(cfg.Server.Addr))
	}
	return err
}
