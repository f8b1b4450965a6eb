package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/goldmark/anchor"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used when highlighting is on and
// no style is named. Classes are emitted, so the style only matters for
// generated stylesheets.
const DefaultHighlightStyle = "github"

// Options configures the Goldmark converter. The zero value gives the base
// feature set: raw HTML passthrough, typographer, superscript, wiki links to
// DefaultWikiBaseURL and slugified heading ids.
type Options struct {
	WikiBaseURL    string // Base for [[Term]] links (default: DefaultWikiBaseURL)
	GFM            bool   // Tables, strikethrough and autolinks
	Highlight      bool   // Syntax highlighting for fenced code blocks
	HighlightStyle string // Chroma style name (default: DefaultHighlightStyle)
	Permalinks     bool   // Append a "#" permalink to every heading
	Sanitize       bool   // Run the fragment through a UGC policy
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML fragments using goldmark.
// It is immutable after construction and safe for concurrent use.
type GoldmarkConverter struct {
	md        goldmark.Markdown
	sanitizer *Sanitizer
}

// NewGoldmarkConverter creates a GoldmarkConverter for the given options.
func NewGoldmarkConverter(opts Options) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.Typographer,
		SuperscriptExtension,
		NewWikiLinkExtension(opts.WikiBaseURL),
	}
	if opts.GFM {
		extensions = append(extensions, extension.Table, extension.Strikethrough, extension.Linkify)
	}
	if opts.Highlight {
		style := opts.HighlightStyle
		if style == "" {
			style = DefaultHighlightStyle
		}
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes instead of inline styles
			),
		))
	}
	if opts.Permalinks {
		extensions = append(extensions, &anchor.Extender{
			Texter:     anchor.Text("#"),
			Position:   anchor.After,
			Attributer: anchor.Attributes{"class": "heading-anchor"},
		})
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			// Runs before the permalink transformer so anchors see final ids.
			parser.WithASTTransformers(util.Prioritized(&headingIDTransformer{}, 0)),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // Raw HTML and partial placeholders pass through
		),
	)

	c := &GoldmarkConverter{md: md}
	if opts.Sanitize {
		c.sanitizer = NewSanitizer()
	}
	return c
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(NormalizeMarkdown(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		out := buf.String()
		if c.sanitizer != nil {
			out = c.sanitizer.Sanitize(out)
		}
		done <- result{html: out}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
