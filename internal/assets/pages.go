package assets

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template and style names.
const (
	ArticleTemplate  = "article"
	NotFoundTemplate = "notfound"
	LayoutTemplate   = "layout"
	PageStyle        = "page"
)

// ArticleData fills the article template.
type ArticleData struct {
	Title      string
	Body       template.HTML // Rendered, spliced markdown
	Script     template.HTML // Page script element, may be empty
	MetaScript template.HTML // Metadata update script element, may be empty
}

// LayoutData fills the layout template.
type LayoutData struct {
	Title         string
	Description   string
	StylePath     string
	HighlightPath string // Empty when highlighting is off
	Content       template.HTML
}

// PageTemplates holds the parsed page templates.
type PageTemplates struct {
	article  *template.Template
	notFound *template.Template
	layout   *template.Template
}

// LoadPageTemplates loads and parses the article, not-found and layout
// templates from loader.
func LoadPageTemplates(loader AssetLoader) (*PageTemplates, error) {
	parse := func(name string) (*template.Template, error) {
		src, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
		}
		return tmpl, nil
	}

	article, err := parse(ArticleTemplate)
	if err != nil {
		return nil, err
	}
	notFound, err := parse(NotFoundTemplate)
	if err != nil {
		return nil, err
	}
	layout, err := parse(LayoutTemplate)
	if err != nil {
		return nil, err
	}

	return &PageTemplates{article: article, notFound: notFound, layout: layout}, nil
}

// DefaultPageTemplates parses the embedded templates.
func DefaultPageTemplates() (*PageTemplates, error) {
	return LoadPageTemplates(NewEmbeddedLoader())
}

// Article renders the page fragment for a found document.
func (p *PageTemplates) Article(data ArticleData) (string, error) {
	return execute(p.article, data)
}

// NotFound renders the fragment for a missing document.
func (p *PageTemplates) NotFound() (string, error) {
	return execute(p.notFound, nil)
}

// Layout wraps a fragment in a full HTML document.
func (p *PageTemplates) Layout(data LayoutData) (string, error) {
	return execute(p.layout, data)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
