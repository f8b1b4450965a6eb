package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - In-memory environment
// ---------------------------------------------------------------------------

func newTestEnv(t *testing.T, files map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
			t.Fatalf("setup %s: %v", name, err)
		}
	}

	var stdout, stderr bytes.Buffer
	return &Environment{Stdout: &stdout, Stderr: &stderr, Fs: fsys}, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestIsCommand - Subcommand matching
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"serve", true},
		{"render", true},
		{"version", true},
		{"help", true},
		{"foo", false},
		{"", false},
		{"Serve", false}, // case sensitive
		{"doc.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"documents/about.md":         "---\ntitle: About\n---\nHello.\n",
		"documents/resources/faq.md": "---\ntitle: FAQ\n---\nAnswers.\n",
		"documents/tour.md":          "---\ntitle: Tour\n---\nSteps.\n",
		"site.yaml":                  "content:\n  documentsDir: documents\nscripts: []\n",
		"broken.yaml":                "server: [\n",
		"unknown-key.yaml":           "nope: true\n",
		"bad-style.yaml":             "markdown:\n  highlight: true\n  highlightStyle: neon\n",
		"documents/widget.md":        "<fancyWidget/>\n",
	}

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no command shows usage",
			args:         []string{"mdpage"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: mdpage"},
		},
		{
			name:         "version",
			args:         []string{"mdpage", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"mdpage " + Version},
		},
		{
			name:         "help",
			args:         []string{"mdpage", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdpage", "Commands:"},
		},
		{
			name:         "help render",
			args:         []string{"mdpage", "help", "render"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdpage render"},
		},
		{
			name:         "--help flag",
			args:         []string{"mdpage", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdpage"},
		},
		{
			name:         "unknown command",
			args:         []string{"mdpage", "publish"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: publish"},
		},
		{
			name:         "render page",
			args:         []string{"mdpage", "render", "about", "-c", "site"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{">About</h1>", "<p>Hello.</p>"},
		},
		{
			name:         "render resource",
			args:         []string{"mdpage", "render", "--resources", "faq", "-c", "site"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{">FAQ</h1>"},
		},
		{
			name:         "render with layout",
			args:         []string{"mdpage", "render", "about", "--layout", "-d", "documents", "-c", "site"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"<!DOCTYPE html>", "<title>About</title>"},
		},
		{
			name:         "render missing page",
			args:         []string{"mdpage", "render", "nowhere", "-c", "site"},
			wantCode:     ExitIO,
			wantInStderr: []string{"document not found", "hint: expected"},
		},
		{
			name:         "render missing page script",
			args:         []string{"mdpage", "render", "tour", "-d", "documents"},
			wantCode:     ExitIO,
			wantInStderr: []string{"tour-scripts.js", "hint: scripts are read from"},
		},
		{
			name:         "render without path",
			args:         []string{"mdpage", "render"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"missing document path"},
		},
		{
			name:         "render help",
			args:         []string{"mdpage", "render", "--help"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: mdpage render"},
		},
		{
			name:         "unknown flag",
			args:         []string{"mdpage", "render", "about", "--bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid flags"},
		},
		{
			name:         "missing config",
			args:         []string{"mdpage", "render", "about", "-c", "missing"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint: use --config"},
		},
		{
			name:         "broken config",
			args:         []string{"mdpage", "render", "about", "-c", "broken"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"failed to parse config"},
		},
		{
			name:         "unknown config key",
			args:         []string{"mdpage", "render", "about", "-c", "unknown-key"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"failed to parse config"},
		},
		{
			name:         "unknown highlight style",
			args:         []string{"mdpage", "render", "about", "-c", "bad-style"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown highlight style", "available:", "monokai"},
		},
		{
			name:         "strict unresolved partial",
			args:         []string{"mdpage", "render", "widget", "--strict", "-c", "site"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"<fancyWidget/>", "registered: glossary-toc"},
		},
		{
			name:         "serve rejects positional args",
			args:         []string{"mdpage", "serve", "extra"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unexpected argument"},
		},
		{
			name:         "serve rejects bad log level",
			args:         []string{"mdpage", "serve", "--log-level", "loud"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"log.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv(t, files)

			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

func TestRunMain_RenderToFile(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv(t, map[string]string{
		"documents/about.md": "---\ntitle: About\n---\nHello.\n",
	})

	code := runMain([]string{"mdpage", "render", "about", "-o", "out/about.html", "--scripts", "none"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}

	data, err := afero.ReadFile(env.Fs, "out/about.html")
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), ">About</h1>") {
		t.Errorf("output missing title: %s", data)
	}
}
