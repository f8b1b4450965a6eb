package pipeline

import (
	"regexp"
	"strings"
)

// Placeholder delimiters use Unicode Private Use Area characters.
// They survive sanitizing unchanged, so partial tags can be hidden from the
// policy and restored afterwards.
const (
	PlaceholderStart = "\uE000" // U+E000: Private Use Area start
	PlaceholderEnd   = "\uE001" // U+E001: Private Use Area end
)

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// PartialTagPattern matches self-closing partial placeholders such as
	// <glossaryToc/>.
	PartialTagPattern = regexp.MustCompile(`<\w+/>`)

	protectedTagPattern = regexp.MustCompile(PlaceholderStart + `(\w+)` + PlaceholderEnd)
)

// NormalizeMarkdown converts \r\n and \r line endings to \n.
func NormalizeMarkdown(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ProtectPartialTags swaps every <name/> placeholder for a marker that HTML
// policies leave alone.
func ProtectPartialTags(html string) string {
	return PartialTagPattern.ReplaceAllStringFunc(html, func(tag string) string {
		return PlaceholderStart + strings.TrimSuffix(strings.TrimPrefix(tag, "<"), "/>") + PlaceholderEnd
	})
}

// RestorePartialTags reverses ProtectPartialTags.
func RestorePartialTags(html string) string {
	return protectedTagPattern.ReplaceAllString(html, "<$1/>")
}
