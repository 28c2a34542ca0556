package composer

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/mention"
	"github.com/oxhq/composer/ustring"
)

var htmlBlockTags = map[atom.Atom]dom.ContainerKind{
	atom.P:          dom.KindParagraph,
	atom.Ol:         dom.KindListOrdered,
	atom.Ul:         dom.KindListUnordered,
	atom.Li:         dom.KindListItem,
	atom.Blockquote: dom.KindQuote,
}

var htmlInlineFormatTags = map[atom.Atom]dom.ContainerKind{
	atom.Strong: dom.KindFormatBold,
	atom.B:      dom.KindFormatBold,
	atom.Em:     dom.KindFormatItalic,
	atom.I:      dom.KindFormatItalic,
	atom.U:      dom.KindFormatUnderline,
	atom.Del:    dom.KindFormatStrikeThrough,
	atom.S:      dom.KindFormatStrikeThrough,
	atom.Strike: dom.KindFormatStrikeThrough,
	atom.Code:   dom.KindFormatInlineCode,
}

// htmlConverter turns parsed markup into document nodes, the inverse of
// serialize.HTML. Every tag or structure it cannot map onto the document
// model is kept (its content flattened into the surrounding run) and
// recorded as a warning instead of aborting the whole parse (§7.2).
type htmlConverter struct {
	width      ustring.Width
	classifier mention.Classifier
	warnings   []string
}

func (c *htmlConverter) warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *htmlConverter) convertChildren(n *html.Node) []dom.Node {
	var out []dom.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, c.convertNode(child)...)
	}
	return out
}

func (c *htmlConverter) convertNode(n *html.Node) []dom.Node {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		return []dom.Node{dom.NewText(c.width, n.Data)}
	case html.ElementNode:
		return c.convertElement(n)
	default:
		return nil
	}
}

func (c *htmlConverter) convertElement(n *html.Node) []dom.Node {
	switch n.DataAtom {
	case atom.Br:
		return []dom.Node{dom.NewLineBreak()}
	case atom.Pre:
		return []dom.Node{c.convertCodeBlock(n)}
	case atom.A:
		return []dom.Node{c.convertLink(n)}
	case atom.Html, atom.Head, atom.Body, atom.Span, atom.Div:
		return c.convertChildren(n)
	}
	if kind, ok := htmlBlockTags[n.DataAtom]; ok {
		block := dom.NewContainer(kind)
		block.Children = c.convertChildren(n)
		return []dom.Node{block}
	}
	if kind, ok := htmlInlineFormatTags[n.DataAtom]; ok {
		wrap := dom.NewContainer(kind)
		wrap.Children = c.convertChildren(n)
		return []dom.Node{wrap}
	}
	c.warn("unsupported tag <%s>: kept its content, dropped the wrapper", n.Data)
	return c.convertChildren(n)
}

// convertLink resolves an <a href="..."> into a Mention when the classifier
// recognizes the URI, or a plain Link otherwise (§4.J: a host round-trips
// mentions through the same href a classifier assigned them originally).
func (c *htmlConverter) convertLink(n *html.Node) dom.Node {
	href := htmlAttr(n, "href")
	if kind, display, ok := c.classifier.Classify(href); ok {
		if display == "" {
			display = htmlTextContent(n)
		}
		return dom.NewMention(kind, href, display)
	}
	link := dom.NewContainer(dom.KindLink)
	link.LinkURL = href
	link.Children = c.convertChildren(n)
	return link
}

// convertCodeBlock reconstructs a CodeBlock's children from <pre><code>'s
// text content, splitting literal newlines back into LineBreak nodes, the
// inverse of writeCodeBlockChild.
func (c *htmlConverter) convertCodeBlock(n *html.Node) dom.Node {
	code := n
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == atom.Code {
			code = child
			break
		}
	}
	text := htmlTextContent(code)
	block := dom.NewContainer(dom.KindCodeBlock)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			block.Children = append(block.Children, dom.NewText(c.width, line))
		}
		if i < len(lines)-1 {
			block.Children = append(block.Children, dom.NewLineBreak())
		}
	}
	return block
}

func htmlTextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

func htmlAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// wrapInlineRuns groups consecutive inline top-level nodes into Paragraphs
// (invariant 4: a container's children are either all block or all inline),
// dropping whitespace-only text nodes the parser leaves between block tags
// in pretty-printed source.
func wrapInlineRuns(nodes []dom.Node) []dom.Node {
	var out []dom.Node
	var run []dom.Node
	flush := func() {
		if len(run) == 0 {
			return
		}
		p := dom.NewContainer(dom.KindParagraph)
		p.Children = run
		out = append(out, p)
		run = nil
	}
	for _, n := range nodes {
		if dom.IsBlockNode(n) {
			flush()
			out = append(out, n)
			continue
		}
		if t, ok := n.(*dom.Text); ok && strings.TrimSpace(t.Content.String()) == "" {
			continue
		}
		run = append(run, n)
	}
	flush()
	return out
}

// parseHTMLFragment parses htmlSrc into document-level nodes plus any
// conversion warnings. html.ParseFragment implements the lenient HTML5
// parsing algorithm and very rarely returns a Go error for malformed
// markup; warnings instead surface the tags/structures the conversion
// pass itself could not map onto the document model.
func parseHTMLFragment(htmlSrc string, classifier mention.Classifier, width ustring.Width) ([]dom.Node, []string) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(htmlSrc), body)
	c := &htmlConverter{width: width, classifier: classifier}
	if err != nil {
		c.warn("HTML parse error: %v", err)
	}
	var out []dom.Node
	for _, n := range nodes {
		out = append(out, c.convertNode(n)...)
	}
	return wrapInlineRuns(out), c.warnings
}

// SetContentFromHTML replaces the entire document with the result of
// parsing htmlSrc (§7.2). A malformed fragment never fails outright: the
// parser's best-effort tree is kept, and every tag or structure the
// conversion pass had to drop or flatten is reported back in
// Update.ParseErrors. History is cleared, since the new document has no
// relationship to whatever undo/redo state preceded it.
func (e *Engine) SetContentFromHTML(htmlSrc string) Update {
	s := e.State
	nodes, warnings := parseHTMLFragment(htmlSrc, e.Mentions, s.Dom.Width)

	newDom := dom.New(s.Dom.Width)
	newDom.Root.SetChildrenRestamped(nodes)
	dom.NormalizeAfterEdit(newDom)

	s.Dom = newDom
	s.Select(0, 0)
	e.History = NewHistory(e.History.limit)
	e.lastMenu = nil

	upd := e.changedUpdate(0, newDom.TextLen())
	upd.ParseErrors = warnings
	return upd
}
