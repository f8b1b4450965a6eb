package pipeline

import (
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates a chroma style name that is not registered.
var ErrUnknownStyle = errors.New("unknown highlight style")

// ValidateHighlightStyle reports whether name is a registered chroma style.
func ValidateHighlightStyle(name string) error {
	if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return nil
}

// HighlightCSS returns the stylesheet matching the classes emitted for
// highlighted code blocks.
func HighlightCSS(name string) (string, error) {
	if name == "" {
		name = DefaultHighlightStyle
	}
	if err := ValidateHighlightStyle(name); err != nil {
		return "", err
	}

	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, styles.Get(name)); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", name, err)
	}
	return sb.String(), nil
}

// HighlightStyles lists the registered chroma style names, sorted.
func HighlightStyles() []string {
	return styles.Names()
}
