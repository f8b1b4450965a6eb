package partial

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-mdpage/internal/pipeline"
)

// GlossaryTOCName is the identifier of the glossary table of contents,
// embedded in pages as <glossaryToc/>.
const GlossaryTOCName = "glossary-toc"

// SourceFunc returns the rendered HTML a component derives its output from.
type SourceFunc func(ctx context.Context) (string, error)

// GlossaryTOC lists the h2 and h3 entries of the glossary page as links to
// their anchors.
type GlossaryTOC struct {
	source SourceFunc
}

// NewGlossaryTOC creates a GlossaryTOC reading headings from source.
func NewGlossaryTOC(source SourceFunc) *GlossaryTOC {
	return &GlossaryTOC{source: source}
}

// RenderPartial builds the list. Headings without an id are skipped.
func (g *GlossaryTOC) RenderPartial(ctx context.Context) (string, error) {
	src, err := g.source(ctx)
	if err != nil {
		return "", fmt.Errorf("glossary source: %w", err)
	}
	headings, err := pipeline.ExtractHeadings(src, 2, 3)
	if err != nil {
		return "", fmt.Errorf("glossary headings: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`<ul class="glossary-toc">`)
	for _, h := range headings {
		if h.ID == "" {
			continue
		}
		fmt.Fprintf(&sb, `<li class="glossary-toc__item glossary-toc__item--h%d"><a href="#%s">%s</a></li>`,
			h.Level, template.HTMLEscapeString(h.ID), template.HTMLEscapeString(h.Text))
	}
	sb.WriteString(`</ul>`)
	return sb.String(), nil
}

var _ Component = (*GlossaryTOC)(nil)
