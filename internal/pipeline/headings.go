package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Heading is a heading element found in a rendered fragment.
type Heading struct {
	Level int    // 1 for h1 through 6 for h6
	ID    string // Anchor id, empty if the heading has none
	Text  string // Visible text, whitespace collapsed
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3,
	atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

// ExtractHeadings returns the headings of an HTML fragment in document order,
// keeping only those whose level lies in [minLevel, maxLevel].
func ExtractHeadings(fragment string, minLevel, maxLevel int) ([]Heading, error) {
	root, err := parseFragment(fragment)
	if err != nil {
		return nil, err
	}

	var headings []Heading
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level, ok := headingLevels[n.DataAtom]; ok {
				if level >= minLevel && level <= maxLevel {
					headings = append(headings, Heading{
						Level: level,
						ID:    attr(n, "id"),
						Text:  strings.Join(strings.Fields(textContent(n)), " "),
					})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return headings, nil
}

// parseFragment parses HTML in a body context and hangs the resulting nodes
// off a synthetic document node for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates the text nodes below n. Permalink anchors added
// by the converter are skipped.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.A && attr(n, "class") == "heading-anchor" {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}
