package pipeline

import (
	"bytes"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// space matches the characters browsers treat as whitespace in scripts,
// which is wider than RE2's ASCII-only \s.
const space = `[\s\x{0B}\p{Z}\x{FEFF}]`

var (
	spacedSlash   = regexp.MustCompile(space + `/` + space)
	anySpace      = regexp.MustCompile(space)
	slugStripper  = strings.NewReplacer("%", "", "(", "", ")", "", ",", "")
	leadingNumber = regexp.MustCompile(`^[0-9]`)
)

// Slugify turns heading text into an anchor identifier.
//
// The text is lowercased, " / " becomes "-", every whitespace character
// becomes "-", and the characters % ( ) , are removed. A result starting
// with a digit is prefixed with "_" so it stays a valid CSS selector.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = spacedSlash.ReplaceAllString(slug, "-")
	slug = anySpace.ReplaceAllString(slug, "-")
	slug = slugStripper.Replace(slug)

	if leadingNumber.MatchString(slug) {
		slug = "_" + slug
	}
	return slug
}

// headingIDTransformer assigns Slugify ids to every heading in a document.
// Slugs repeated within one document get -1, -2, ... suffixes.
type headingIDTransformer struct{}

// Transform implements parser.ASTTransformer.
func (t *headingIDTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	seen := make(map[string]struct{})

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		slug := Slugify(headingText(heading, source))
		if slug == "" {
			return ast.WalkSkipChildren, nil
		}
		heading.SetAttributeString("id", []byte(uniqueSlug(slug, seen)))
		return ast.WalkSkipChildren, nil
	})
}

// uniqueSlug returns slug, or slug with the first free numeric suffix.
func uniqueSlug(slug string, seen map[string]struct{}) string {
	candidate := slug
	for i := 1; ; i++ {
		if _, taken := seen[candidate]; !taken {
			break
		}
		candidate = slug + "-" + strconv.Itoa(i)
	}
	seen[candidate] = struct{}{}
	return candidate
}

// headingText collects the visible text of a heading, the way a reader sees
// it after typographic substitution. Raw inline HTML is ignored.
func headingText(heading *ast.Heading, source []byte) string {
	var buf bytes.Buffer

	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			if node.IsCode() {
				// Typographer emits entities such as &rsquo; as code strings.
				buf.WriteString(html.UnescapeString(string(node.Value)))
			} else {
				buf.Write(node.Value)
			}
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}
