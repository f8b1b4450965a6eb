package pipeline

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from converted fragments while keeping what
// page rendering relies on: heading ids, wiki link classes, superscripts and
// partial placeholders.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a Sanitizer on top of the bluemonday UGC policy.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^\S+$`)).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^(wikilink|heading-anchor|chroma)$`)).OnElements("a", "pre")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span", "code")
	p.AllowElements("sup")
	return &Sanitizer{policy: p}
}

// Sanitize applies the policy to an HTML fragment.
func (s *Sanitizer) Sanitize(html string) string {
	return RestorePartialTags(s.policy.Sanitize(ProtectPartialTags(html)))
}
