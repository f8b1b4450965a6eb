package partial

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-mdpage/internal/pipeline"
)

// The spliced fragment closes the page markup wrapper and reopens it after
// itself, so components render outside the prose styling.
const (
	MarkupClose = `</div>`
	MarkupOpen  = `<div class="page__markup">`
)

// Result describes one splice pass.
type Result struct {
	HTML       string
	Resolved   []string // Identifiers that were replaced, in document order
	Unresolved []string // Identifiers left as literal tags
}

// Splicer replaces partial placeholders with component output.
type Splicer struct {
	lookup Lookup
	strict bool
}

// NewSplicer creates a Splicer. In strict mode an unregistered placeholder
// is an error; otherwise it is left in place.
func NewSplicer(lookup Lookup, strict bool) *Splicer {
	return &Splicer{lookup: lookup, strict: strict}
}

// Splice scans html for <name/> placeholders. For each one, in document
// order, the first remaining occurrence of the tag is replaced with the
// output of the matching component, wrapped in MarkupClose/MarkupOpen.
func (s *Splicer) Splice(ctx context.Context, html string) (Result, error) {
	res := Result{HTML: html}

	tags := pipeline.PartialTagPattern.FindAllString(html, -1)
	for _, tag := range tags {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		name := TagName(tag)
		var component Component
		var ok bool
		if s.lookup != nil {
			component, ok = s.lookup.Lookup(name)
		}
		if !ok {
			if s.strict {
				return Result{}, fmt.Errorf("%w: %s (%s)", ErrUnresolvedPartial, tag, name)
			}
			res.Unresolved = append(res.Unresolved, name)
			continue
		}

		fragment, err := component.RenderPartial(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %s: %v", ErrRender, name, err)
		}

		res.HTML = strings.Replace(res.HTML, tag, MarkupClose+fragment+MarkupOpen, 1)
		res.Resolved = append(res.Resolved, name)
	}

	return res, nil
}
