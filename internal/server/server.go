// Package server exposes rendered pages over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alnah/go-mdpage"
)

// Stylesheet routes referenced from the page layout.
const (
	PageStylePath      = "/assets/page.css"
	HighlightStylePath = "/assets/highlight.css"
)

// PageRenderer is the subset of *mdpage.Renderer the handlers use.
type PageRenderer interface {
	Render(ctx context.Context, req mdpage.Request) (*mdpage.Page, error)
	Layout(page *mdpage.Page, links mdpage.StyleLinks) (string, error)
	Stylesheet() (string, error)
	HighlightStylesheet() (css string, ok bool, err error)
	Highlighting() bool
}

// Handler serves pages from a PageRenderer.
type Handler struct {
	renderer PageRenderer
	logger   *slog.Logger
	links    mdpage.StyleLinks
}

// New returns the router with middleware and routes wired up.
// A nil logger discards output.
func New(renderer PageRenderer, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	h := &Handler{
		renderer: renderer,
		logger:   logger,
		links:    mdpage.StyleLinks{Page: PageStylePath},
	}
	if renderer.Highlighting() {
		h.links.Highlight = HighlightStylePath
	}

	r := chi.NewRouter()

	r.Use(Recoverer(logger))
	r.Use(Logger(logger))
	r.Use(SecureHeaders)

	r.Get("/health", healthHandler)
	r.Get(PageStylePath, h.pageStyle)
	r.Get(HighlightStylePath, h.highlightStyle)

	r.Get("/"+mdpage.ResourcesRoute, h.page(mdpage.ResourcesRoute))
	r.Get("/*", h.page("*"))

	return r
}

// page renders the document matched by route. The wildcard is chi's "*"
// URL parameter.
func (h *Handler) page(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := mdpage.Request{Route: route, Wildcard: chi.URLParam(r, "*")}

		page, err := h.renderer.Render(r.Context(), req)
		if err != nil {
			h.fail(w, r, "render failed", err)
			return
		}

		doc, err := h.renderer.Layout(page, h.links)
		if err != nil {
			h.fail(w, r, "layout failed", err)
			return
		}

		status := http.StatusOK
		if !page.Found {
			status = http.StatusNotFound
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(doc))
	}
}

func (h *Handler) pageStyle(w http.ResponseWriter, r *http.Request) {
	css, err := h.renderer.Stylesheet()
	if err != nil {
		h.fail(w, r, "stylesheet failed", err)
		return
	}
	writeCSS(w, css)
}

func (h *Handler) highlightStyle(w http.ResponseWriter, r *http.Request) {
	css, ok, err := h.renderer.HighlightStylesheet()
	if err != nil {
		h.fail(w, r, "highlight stylesheet failed", err)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeCSS(w, css)
}

// fail logs err and answers 500. Cancelled requests are logged at debug
// level since the client is gone.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	level := slog.LevelError
	if errors.Is(err, context.Canceled) {
		level = slog.LevelDebug
	}
	h.logger.Log(r.Context(), level, msg, "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeCSS(w http.ResponseWriter, css string) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(css))
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
