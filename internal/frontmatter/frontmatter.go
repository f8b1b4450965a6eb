// Package frontmatter splits a markdown document into its YAML front-matter
// block and body.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	fm "github.com/adrg/frontmatter"

	"github.com/alnah/go-mdpage/internal/yamlutil"
)

// ErrMalformed indicates a front-matter block that could not be decoded.
var ErrMalformed = errors.New("malformed front-matter")

// Matter holds the attributes a page reads from its front-matter.
type Matter struct {
	Title string         `yaml:"title"`
	Meta  yamlutil.Pairs `yaml:"meta"`
}

// Document is a parsed markdown file.
type Document struct {
	Matter
	Body []byte
}

// yamlFormat decodes "---" delimited blocks with the module's YAML library.
// Unknown keys are ignored and an empty block yields zero attributes.
var yamlFormat = fm.NewFormat("---", "---", func(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
})

// Parse splits source into attributes and body. A document without a
// front-matter block is all body.
//
// On ErrMalformed the returned Document still carries the whole source as
// its Body, so callers can choose to render it anyway.
func Parse(source []byte) (Document, error) {
	var m Matter
	body, err := fm.Parse(bytes.NewReader(source), &m, yamlFormat)
	if err != nil {
		return Document{Body: source}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Document{Matter: m, Body: body}, nil
}
