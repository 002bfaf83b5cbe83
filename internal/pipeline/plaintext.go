package pipeline

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlainText returns the text content of an HTML fragment, with entities
// decoded. Formulas read once, as text: elements classed MathMLClass are
// skipped and the visible formula is converted with TeXText.
func PlainText(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	// Parse with div context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nodes {
		writeText(&sb, n)
	}
	return sb.String(), nil
}

// writeText appends the text nodes below n in document order.
func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if hasClass(n, MathMLClass) {
			return
		}
		if hasClass(n, mathHTMLClass) {
			var tex strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				writeText(&tex, c)
			}
			sb.WriteString(TeXText(tex.String()))
			return
		}
	case html.CommentNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
}

// hasClass reports whether the class attribute of n lists name.
func hasClass(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return slices.Contains(strings.Fields(attr.Val), name)
		}
	}
	return false
}
