package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/hints"
)

// runRender renders one document path to stdout or --output.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 || strings.TrimSpace(positional[0]) == "" {
		return fmt.Errorf("%w: usage: mdpage render <path>", ErrMissingPath)
	}

	cfg, err := loadConfig(env, flags.common.config)
	if err != nil {
		return err
	}
	mergeContentFlags(flags.fs, &flags.content, cfg)
	mergeLogFlags(flags.common, logFlags{}, cfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := newLogger(env.Stderr, cfg.Log)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(env, cfg, logger)
	if err != nil {
		return err
	}

	req := mdpage.Request{Route: "*", Wildcard: positional[0]}
	if flags.resources {
		req.Route = mdpage.ResourcesRoute
	}

	page, err := renderer.Render(ctx, req)
	switch {
	case errors.Is(err, mdpage.ErrPageScriptRead):
		return withHint(err, hints.ForPageScript(cfg.Content.ScriptsDir))
	case errors.Is(err, mdpage.ErrUnresolvedPartial):
		return withHint(err, hints.ForUnresolvedPartial(cfg.Content.ComponentsDir, renderer.Components()))
	case err != nil:
		return err
	}
	if !page.Found {
		err := fmt.Errorf("%w: %s", ErrPageNotFound, page.Path)
		return withHint(err, hints.ForDocumentNotFound(cfg.Content.DocumentsDir, page.Path))
	}

	out := page.HTML
	if flags.layout {
		links := mdpage.StyleLinks{Page: "page.css"}
		if renderer.Highlighting() {
			links.Highlight = "highlight.css"
		}
		out, err = renderer.Layout(page, links)
		if err != nil {
			return err
		}
	}

	return writeOutput(env, flags.output, out)
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(env *Environment, path, content string) error {
	if path == "" {
		_, err := io.WriteString(env.Stdout, content)
		return err
	}
	if err := afero.WriteFile(env.Fs, path, []byte(content), 0o644); err != nil {
		return withHint(fmt.Errorf("%w: %v", ErrWriteOutput, err), hints.ForOutputDirectory())
	}
	return nil
}
