package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindSuperscript is the ast.NodeKind of Superscript nodes.
var KindSuperscript = ast.NewNodeKind("Superscript")

// Superscript is an inline node for ^text^ spans.
type Superscript struct {
	ast.BaseInline
}

// Kind implements ast.Node.
func (n *Superscript) Kind() ast.NodeKind {
	return KindSuperscript
}

// Dump implements ast.Node.
func (n *Superscript) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// superscriptParser recognizes ^text^ where text holds no unescaped
// whitespace. Backslash escapes inside the span are resolved.
type superscriptParser struct{}

func (p *superscriptParser) Trigger() []byte {
	return []byte{'^'}
}

func (p *superscriptParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 3 || line[0] != '^' {
		return nil
	}

	closing := -1
	for i := 1; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) {
			i++
			continue
		}
		if util.IsSpace(c) {
			return nil
		}
		if c == '^' {
			closing = i
			break
		}
	}
	if closing < 2 {
		return nil
	}

	content := unescapeSpaces(line[1:closing])
	block.Advance(closing + 1)

	node := &Superscript{}
	node.AppendChild(node, ast.NewString(content))
	return node
}

// unescapeSpaces turns an escaped space into a plain one. Punctuation escapes are resolved by
// the HTML writer when the String child is rendered.
func unescapeSpaces(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte(`\ `), []byte(" "))
}

// superscriptRenderer writes Superscript nodes as <sup> elements.
type superscriptRenderer struct{}

func (r *superscriptRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSuperscript, r.renderSuperscript)
}

func (r *superscriptRenderer) renderSuperscript(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<sup")
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, nil)
		}
		_ = w.WriteByte('>')
	} else {
		_, _ = w.WriteString("</sup>")
	}
	return ast.WalkContinue, nil
}

type superscript struct{}

// SuperscriptExtension renders ^text^ as <sup>text</sup>.
var SuperscriptExtension goldmark.Extender = &superscript{}

func (e *superscript) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&superscriptParser{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&superscriptRenderer{}, 500),
	))
}
