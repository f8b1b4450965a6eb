package mdpage

import (
	"github.com/alnah/go-mdpage/internal/partial"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

// ResourcesRoute is the route whose wildcard resolves under resources/.
const ResourcesRoute = "resources/*"

// Request identifies the page to render: the matched route pattern and the
// value of its wildcard parameter.
type Request struct {
	Route    string
	Wildcard string
}

// MetaTag is one entry of a document's meta list.
type MetaTag struct {
	Name    string
	Content string
}

// Page is the result of rendering one request.
type Page struct {
	Path       string    // Resolved document path, without extension
	Found      bool      // False when no document exists at Path
	Title      string    // Front-matter title
	Meta       []MetaTag // Front-matter meta list, in document order
	Body       string    // Rendered markdown with partials spliced in
	Script     string    // Inline page script element, may be empty
	MetaScript string    // Metadata update script element, may be empty
	HTML       string    // Assembled fragment
}

// Description returns the content of the first "description" meta tag.
func (p *Page) Description() string {
	for _, m := range p.Meta {
		if m.Name == "description" {
			return m.Content
		}
	}
	return ""
}

// PageScript binds a document path to a client script file.
type PageScript struct {
	Path string // Document path, e.g. "glossary"
	File string // File name inside the scripts directory
}

// DefaultPageScripts returns the built-in bindings.
func DefaultPageScripts() []PageScript {
	return []PageScript{
		{Path: "glossary", File: "glossary-scripts.js"},
		{Path: "overview", File: "ecosystem-scripts.js"},
		{Path: "tour", File: "tour-scripts.js"},
	}
}

// MarkdownOptions configures the markdown converter.
type MarkdownOptions = pipeline.Options

// Component renders an HTML fragment spliced in place of a placeholder.
type Component = partial.Component

// ComponentFunc adapts a function to Component.
type ComponentFunc = partial.ComponentFunc

// StaticComponent is a Component with fixed output.
type StaticComponent = partial.Static

// Registry maps component identifiers to Components.
type Registry = partial.Registry

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return partial.NewRegistry()
}

// GlossaryTOCName is the identifier of the built-in glossary index.
const GlossaryTOCName = partial.GlossaryTOCName
