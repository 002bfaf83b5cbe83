package pipeline

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Class names shared with KaTeX's stylesheet and auto-render script.
// MathMLClass marks the accessibility twin of a formula; plaintext
// extraction drops it so formulas are not read twice.
const (
	MathMLClass   = "katex-mathml"
	mathHTMLClass = "katex-html"
)

var mathDelimiter = []byte("$$")

// KindMath is the NodeKind of inline and display formulas.
var KindMath = ast.NewNodeKind("Math")

// Math is a TeX formula written inside a paragraph.
// Display is true for $$...$$ formulas.
type Math struct {
	ast.BaseInline
	TeX     []byte
	Display bool
}

// Kind implements ast.Node.
func (n *Math) Kind() ast.NodeKind { return KindMath }

// Dump implements ast.Node.
func (n *Math) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"TeX":     string(n.TeX),
		"Display": strconv.FormatBool(n.Display),
	}, nil)
}

// KindMathBlock is the NodeKind of fenced display formulas.
var KindMathBlock = ast.NewNodeKind("MathBlock")

// MathBlock is a display formula fenced by "$$" lines.
type MathBlock struct {
	ast.BaseBlock
}

// Kind implements ast.Node.
func (n *MathBlock) Kind() ast.NodeKind { return KindMathBlock }

// IsRaw implements ast.Node. Formula lines are never inline-parsed.
func (n *MathBlock) IsRaw() bool { return true }

// Dump implements ast.Node.
func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type mathInlineParser struct{}

func (p *mathInlineParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *mathInlineParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()

	if bytes.HasPrefix(line, mathDelimiter) {
		end := bytes.Index(line[2:], mathDelimiter)
		if end < 0 {
			return nil
		}
		tex := bytes.TrimSpace(line[2 : 2+end])
		if len(tex) == 0 {
			return nil
		}
		block.Advance(2 + end + 2)
		return &Math{TeX: bytes.Clone(tex), Display: true}
	}

	end := closingDollar(line)
	if end < 0 {
		return nil
	}
	block.Advance(end + 1)
	return &Math{TeX: bytes.Clone(line[1:end])}
}

// closingDollar returns the index of the "$" closing the inline formula that
// opens at line[0], or -1. The opening "$" must not be followed by
// whitespace; the closing one must not follow whitespace nor precede a digit,
// so prices like "$5 and $10" stay text.
func closingDollar(line []byte) int {
	if len(line) < 3 || isSpace(line[1]) {
		return -1
	}
	for i := 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '$':
			if isSpace(line[i-1]) {
				return -1
			}
			if i+1 < len(line) && line[i+1] >= '0' && line[i+1] <= '9' {
				return -1
			}
			return i
		}
	}
	return -1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

type mathBlockParser struct{}

func (b *mathBlockParser) Trigger() []byte {
	return []byte{'$'}
}

func (b *mathBlockParser) Open(_ ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || !isMathFence(line[pos:]) {
		return nil, parser.NoChildren
	}
	return &MathBlock{}, parser.NoChildren
}

func (b *mathBlockParser) Continue(node ast.Node, reader text.Reader, _ parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if isMathFence(line) {
		reader.Advance(lenWithoutNewline(line))
		return parser.Close
	}
	node.Lines().Append(segment)
	reader.Advance(lenWithoutNewline(line))
	return parser.Continue | parser.NoChildren
}

func (b *mathBlockParser) Close(_ ast.Node, _ text.Reader, _ parser.Context) {}

func (b *mathBlockParser) CanInterruptParagraph() bool { return true }

func (b *mathBlockParser) CanAcceptIndentedLine() bool { return false }

func isMathFence(line []byte) bool {
	return bytes.Equal(bytes.TrimSpace(line), mathDelimiter)
}

// lenWithoutNewline keeps the trailing newline unread so the block parser
// advances to the next line itself.
func lenWithoutNewline(line []byte) int {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		return n - 1
	}
	return len(line)
}

type mathHTMLRenderer struct{}

func (r *mathHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMath, r.renderMath)
	reg.Register(KindMathBlock, r.renderMathBlock)
}

func (r *mathHTMLRenderer) renderMath(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*Math)
		writeFormula(w, n.TeX, n.Display)
	}
	return ast.WalkSkipChildren, nil
}

func (r *mathHTMLRenderer) renderMathBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}

	var tex bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		tex.Write(seg.Value(source))
	}

	_, _ = w.WriteString("<p>")
	writeFormula(w, bytes.TrimSpace(tex.Bytes()), true)
	_, _ = w.WriteString("</p>\n")
	return ast.WalkSkipChildren, nil
}

// writeFormula emits KaTeX's markup shape: a MathML twin carrying the TeX as
// an annotation, and a visible node holding the delimited TeX that KaTeX's
// auto-render script typesets in the browser.
func writeFormula(w util.BufWriter, tex []byte, display bool) {
	escaped := util.EscapeHTML(tex)
	open, closing := inlineMathOpen, inlineMathClose
	if display {
		open, closing = displayMathOpen, displayMathClose
	}

	if display {
		_, _ = w.WriteString(`<span class="katex-display">`)
	}
	_, _ = w.WriteString(`<span class="katex"><span class="` + MathMLClass + `">`)
	_, _ = w.WriteString(`<math xmlns="http://www.w3.org/1998/Math/MathML"`)
	if display {
		_, _ = w.WriteString(` display="block"`)
	}
	_, _ = w.WriteString(`><semantics><annotation encoding="application/x-tex">`)
	_, _ = w.Write(escaped)
	_, _ = w.WriteString(`</annotation></semantics></math></span>`)
	_, _ = w.WriteString(`<span class="` + mathHTMLClass + `" aria-hidden="true">` + open)
	_, _ = w.Write(escaped)
	_, _ = w.WriteString(closing + `</span></span>`)
	if display {
		_, _ = w.WriteString(`</span>`)
	}
}

type mathExtension struct {
	blocks bool
}

// NewMath returns a goldmark extension for $...$ and $$...$$ formulas.
// When blocks is false only formulas inside paragraphs are recognized.
func NewMath(blocks bool) goldmark.Extender {
	return &mathExtension{blocks: blocks}
}

func (e *mathExtension) Extend(m goldmark.Markdown) {
	if e.blocks {
		m.Parser().AddOptions(parser.WithBlockParsers(
			util.Prioritized(&mathBlockParser{}, 750),
		))
	}
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&mathInlineParser{}, 150),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&mathHTMLRenderer{}, 500),
	))
}
