package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/config"
	"github.com/alnah/go-mdpage/internal/hints"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

// loadConfig returns DefaultConfig, or the named file when one is given.
func loadConfig(env *Environment, name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(env.Fs, name)
	if errors.Is(err, config.ErrConfigNotFound) {
		err = withHint(err, hints.ForConfigNotFound(name))
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", withStyleHint(err))
	}
	return cfg, nil
}

// validateConfig re-validates cfg after flags were merged into it.
func validateConfig(cfg *config.Config) error {
	return withStyleHint(cfg.Validate())
}

// withStyleHint lists the available styles when err names an unknown one.
func withStyleHint(err error) error {
	if errors.Is(err, pipeline.ErrUnknownStyle) {
		return withHint(err, hints.ForStyleNotFound(pipeline.HighlightStyles()))
	}
	return err
}

// withHint appends an actionable hint to err's message, keeping the chain.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// newLogger builds the slog handler selected by the log section.
func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(lc.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log.format %q", config.ErrInvalidValue, lc.Format)
	}
}

// newRenderer builds a Renderer from cfg on the environment's filesystem.
func newRenderer(env *Environment, cfg *config.Config, logger *slog.Logger) (*mdpage.Renderer, error) {
	scripts := make([]mdpage.PageScript, 0, len(cfg.Scripts))
	for _, s := range cfg.Scripts {
		scripts = append(scripts, mdpage.PageScript{Path: s.Path, File: s.File})
	}

	return mdpage.New(
		mdpage.WithFs(env.Fs),
		mdpage.WithDocumentsDir(cfg.Content.DocumentsDir),
		mdpage.WithComponentsDir(cfg.Content.ComponentsDir),
		mdpage.WithScriptsDir(cfg.Content.ScriptsDir),
		mdpage.WithAssetPath(cfg.Assets.BasePath),
		mdpage.WithPageScripts(scripts),
		mdpage.WithMarkdownOptions(mdpage.MarkdownOptions{
			WikiBaseURL:    cfg.Markdown.WikiBaseURL,
			GFM:            cfg.Markdown.GFM,
			Highlight:      cfg.Markdown.Highlight,
			HighlightStyle: cfg.Markdown.HighlightStyle,
			Permalinks:     cfg.Markdown.Permalinks,
			Sanitize:       cfg.Markdown.Sanitize,
		}),
		mdpage.WithStrictPartials(cfg.Partials.Strict),
		mdpage.WithLogger(logger),
	)
}
