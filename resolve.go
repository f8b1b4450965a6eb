package mdpage

import (
	"path"
	"strings"
)

// ResolvePath maps a route and its wildcard value to a document path without
// extension. The resources route resolves under "resources/"; any other
// route uses the wildcard as is.
//
// The result is cleaned so it cannot climb out of the documents directory:
// "../x" resolves to "x" and a trailing ".md" is dropped.
func ResolvePath(route, wildcard string) string {
	p := wildcard
	if route == ResourcesRoute {
		p = "resources/" + wildcard
	}

	p = path.Clean("/" + p)
	p = strings.TrimPrefix(p, "/")
	return strings.TrimSuffix(p, ".md")
}
