package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/config"
)

// ---------------------------------------------------------------------------
// TestNewLogger - Handler selection
// ---------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		lc          config.LogConfig
		wantContain string
		wantDebug   bool
		wantErr     error
	}{
		{"text default", config.LogConfig{}, "msg=hello", false, nil},
		{"json", config.LogConfig{Format: "JSON", Level: "info"}, `"msg":"hello"`, false, nil},
		{"debug level", config.LogConfig{Level: "debug"}, "msg=hello", true, nil},
		{"bad level", config.LogConfig{Level: "chatty"}, "", false, config.ErrInvalidValue},
		{"bad format", config.LogConfig{Format: "xml"}, "", false, config.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.lc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("newLogger() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger() error = %v", err)
			}

			logger.Info("hello")
			if !strings.Contains(buf.String(), tt.wantContain) {
				t.Errorf("output %q missing %q", buf.String(), tt.wantContain)
			}
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewRenderer - Config to renderer wiring
// ---------------------------------------------------------------------------

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	env, _, _ := newTestEnv(t, map[string]string{
		"/site/docs/code.md":            "```go\nx := 1\n```\n\n<hello/>\n",
		"/site/components/hello.html":   `<p class="hello">hi</p>`,
		"/site/scripts/code-scripts.js": "run();",
	})

	cfg := config.DefaultConfig()
	cfg.Content = config.ContentConfig{
		DocumentsDir:  "/site/docs",
		ComponentsDir: "/site/components",
		ScriptsDir:    "/site/scripts",
	}
	cfg.Scripts = []config.PageScript{{Path: "code", File: "code-scripts.js"}}
	cfg.Markdown.Highlight = true

	r, err := newRenderer(env, cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("newRenderer() error = %v", err)
	}
	if !r.Highlighting() {
		t.Error("Highlighting() = false, want true")
	}

	page, err := r.Render(context.Background(), mdpage.Request{Route: "*", Wildcard: "code"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantContains := []string{`class="chroma"`, `<p class="hello">hi</p>`, "<script>run();</script>"}
	for _, want := range wantContains {
		if !strings.Contains(page.HTML, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}
