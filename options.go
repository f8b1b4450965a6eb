package mdpage

import (
	"log/slog"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds construction-time settings.
type rendererConfig struct {
	fs            afero.Fs
	documentsDir  string
	scriptsDir    string
	componentsDir string
	assetPath     string
	glossaryPath  string
	pageScripts   []PageScript
	markdown      MarkdownOptions
	strict        bool
}

// Defaults.
const (
	DefaultDocumentsDir = "./documents"
	DefaultScriptsDir   = "./app/components/client"
	DefaultGlossaryPath = "glossary"
)

// WithFs sets the filesystem all directories are resolved on
// (default: the OS filesystem).
func WithFs(fsys afero.Fs) Option {
	return func(r *Renderer) {
		r.cfg.fs = fsys
	}
}

// WithDocumentsDir sets the directory holding <path>.md documents.
func WithDocumentsDir(dir string) Option {
	return func(r *Renderer) {
		r.cfg.documentsDir = dir
	}
}

// WithScriptsDir sets the directory holding page scripts.
func WithScriptsDir(dir string) Option {
	return func(r *Renderer) {
		r.cfg.scriptsDir = dir
	}
}

// WithComponentsDir registers every <name>.html file in dir as a component.
func WithComponentsDir(dir string) Option {
	return func(r *Renderer) {
		r.cfg.componentsDir = dir
	}
}

// WithAssetPath overrides embedded templates and styles with files under path.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithGlossaryPath sets the document the glossary-toc component indexes.
func WithGlossaryPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.glossaryPath = path
	}
}

// WithPageScripts replaces the path to script bindings. Nil or empty
// disables page scripts.
func WithPageScripts(scripts []PageScript) Option {
	return func(r *Renderer) {
		r.cfg.pageScripts = append([]PageScript{}, scripts...)
	}
}

// WithMarkdownOptions configures the markdown converter.
func WithMarkdownOptions(opts MarkdownOptions) Option {
	return func(r *Renderer) {
		r.cfg.markdown = opts
	}
}

// WithStrictPartials makes an unresolved placeholder fail the render with
// ErrUnresolvedPartial instead of being left in place.
func WithStrictPartials(strict bool) Option {
	return func(r *Renderer) {
		r.cfg.strict = strict
	}
}

// WithRegistry sets the component registry. Built-in and file-backed
// components are added to it during New.
func WithRegistry(reg *Registry) Option {
	return func(r *Renderer) {
		r.registry = reg
	}
}

// WithLogger sets the structured logger (default: discard).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithTracerProvider sets the provider render spans are created from
// (default: the global provider).
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Renderer) {
		r.tracer = tp.Tracer(tracerName)
	}
}
