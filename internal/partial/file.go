package partial

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// componentExt is the extension of file-backed components.
const componentExt = ".html"

// TemplateComponent renders an html/template parsed from a component file.
type TemplateComponent struct {
	name string
	tmpl *template.Template
}

// TemplateData is passed to file-backed component templates.
type TemplateData struct {
	Name string
}

// NewTemplateComponent parses src as the template for component name.
func NewTemplateComponent(name, src string) (*TemplateComponent, error) {
	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrComponentDir, name, err)
	}
	return &TemplateComponent{name: name, tmpl: tmpl}, nil
}

// RenderPartial executes the template.
func (c *TemplateComponent) RenderPartial(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := c.tmpl.Execute(&buf, TemplateData{Name: c.name}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// LoadDir registers every <name>.html file directly under dir as a template
// component named <name>. A missing directory loads nothing.
// Returns the number of components registered.
func LoadDir(fsys afero.Fs, dir string, reg *Registry) (int, error) {
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrComponentDir, err)
	}
	if !exists {
		return 0, nil
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrComponentDir, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != componentExt {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), componentExt)

		src, err := afero.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return loaded, fmt.Errorf("%w: reading %q: %v", ErrComponentDir, entry.Name(), err)
		}
		component, err := NewTemplateComponent(name, string(src))
		if err != nil {
			return loaded, err
		}
		if err := reg.Register(name, component); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}
