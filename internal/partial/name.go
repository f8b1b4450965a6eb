package partial

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	lowerThenUpper = regexp.MustCompile(`([a-z\d])([A-Z])`)
	upperRunWord   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z\d]+)`)
	validName      = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)
)

// Decamelize converts a camelCase tag name to its hyphenated component
// identifier: "glossaryToc" becomes "glossary-toc", "HTMLBlock" becomes
// "html-block".
func Decamelize(name string) string {
	name = lowerThenUpper.ReplaceAllString(name, "$1-$2")
	name = upperRunWord.ReplaceAllString(name, "$1-$2")
	return strings.ToLower(name)
}

// TagName returns the component identifier for a placeholder tag such as
// "<glossaryToc/>".
func TagName(tag string) string {
	tag = strings.TrimPrefix(tag, "<")
	tag = strings.TrimSuffix(tag, "/>")
	return Decamelize(tag)
}

// ValidateName checks that name is a hyphenated lowercase identifier, the
// only form Decamelize can produce.
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
