package pipeline

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultWikiBaseURL is where [[Term]] links point when no base is configured.
const DefaultWikiBaseURL = "/glossary#"

// wikiLinkPattern accepts word characters, hyphens, slashes and whitespace in
// both the page name and the optional label.
var wikiLinkPattern = regexp.MustCompile(`^\[\[([-\w\s/]+)(\|([-\w\s/]+))?\]\]`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// KindWikiLink is the ast.NodeKind of WikiLink nodes.
var KindWikiLink = ast.NewNodeKind("WikiLink")

// WikiLink is an inline node for [[Page]] and [[Page|Label]] links.
type WikiLink struct {
	ast.BaseInline

	// Destination is the resolved href.
	Destination []byte
}

// Kind implements ast.Node.
func (n *WikiLink) Kind() ast.NodeKind {
	return KindWikiLink
}

// Dump implements ast.Node.
func (n *WikiLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Destination": string(n.Destination),
	}, nil)
}

// WikiPageName normalizes a wiki page name: surrounding whitespace is
// trimmed and inner whitespace runs become "_".
func WikiPageName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "_")
}

type wikiLinkParser struct {
	baseURL string
}

func (p *wikiLinkParser) Trigger() []byte {
	return []byte{'['}
}

func (p *wikiLinkParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	m := wikiLinkPattern.FindSubmatch(line)
	if m == nil {
		return nil
	}

	target := string(m[1])
	label := target
	if len(m[3]) > 0 {
		label = string(m[3])
	}
	page := strings.TrimLeft(WikiPageName(target), "/")
	label = strings.TrimSpace(label)
	if page == "" || label == "" {
		return nil
	}

	block.Advance(len(m[0]))

	node := &WikiLink{Destination: []byte(p.baseURL + page)}
	node.AppendChild(node, ast.NewString([]byte(label)))
	return node
}

type wikiLinkRenderer struct{}

func (r *wikiLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindWikiLink, r.renderWikiLink)
}

func (r *wikiLinkRenderer) renderWikiLink(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	link := n.(*WikiLink)
	if entering {
		_, _ = w.WriteString(`<a href="`)
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(link.Destination, true)))
		_, _ = w.WriteString(`" class="wikilink">`)
	} else {
		_, _ = w.WriteString("</a>")
	}
	return ast.WalkContinue, nil
}

type wikiLinks struct {
	baseURL string
}

// NewWikiLinkExtension resolves [[Term]] links to baseURL+Term. An empty
// baseURL means DefaultWikiBaseURL.
func NewWikiLinkExtension(baseURL string) goldmark.Extender {
	if baseURL == "" {
		baseURL = DefaultWikiBaseURL
	}
	return &wikiLinks{baseURL: baseURL}
}

func (e *wikiLinks) Extend(m goldmark.Markdown) {
	// Ahead of the link parser (200), which shares the '[' trigger.
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&wikiLinkParser{baseURL: e.baseURL}, 199),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&wikiLinkRenderer{}, 199),
	))
}
