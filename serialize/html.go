package serialize

import (
	"html"
	"strings"

	"github.com/oxhq/composer/dom"
)

// HTML renders the document as round-trippable HTML: the inverse of a host
// application's own HTML-to-tree parser (§4.E.1). Mentions render with
// their internal URI as href.
func HTML(d *dom.Dom) string {
	return renderHTML(d, false)
}

// HTMLAsMessage renders the document the way it should look once sent:
// Mentions get a canonical matrix.to permalink instead of an internal URI,
// so the rendered message is meaningful to a client that never saw the
// original reference (§4.E.1, §4.J).
func HTMLAsMessage(d *dom.Dom) string {
	return renderHTML(d, true)
}

func renderHTML(d *dom.Dom, asMessage bool) string {
	var sb strings.Builder
	for _, child := range d.Root.Children {
		writeHTMLNode(&sb, child, asMessage)
	}
	return sb.String()
}

var containerTags = map[dom.ContainerKind]string{
	dom.KindParagraph:           "p",
	dom.KindListOrdered:         "ol",
	dom.KindListUnordered:       "ul",
	dom.KindListItem:            "li",
	dom.KindQuote:               "blockquote",
	dom.KindFormatBold:          "strong",
	dom.KindFormatItalic:        "em",
	dom.KindFormatUnderline:     "u",
	dom.KindFormatStrikeThrough: "del",
	dom.KindFormatInlineCode:    "code",
}

func writeHTMLNode(sb *strings.Builder, n dom.Node, asMessage bool) {
	switch v := n.(type) {
	case *dom.Text:
		sb.WriteString(html.EscapeString(v.Content.String()))
	case *dom.LineBreak:
		sb.WriteString("<br/>")
	case *dom.Mention:
		href := v.URI
		if asMessage {
			href = messageHref(v)
		}
		sb.WriteString(`<a href="`)
		sb.WriteString(html.EscapeString(href))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(v.Display))
		sb.WriteString(`</a>`)
	case *dom.Container:
		writeHTMLContainer(sb, v, asMessage)
	}
}

func writeHTMLContainer(sb *strings.Builder, c *dom.Container, asMessage bool) {
	switch c.Kind {
	case dom.KindCodeBlock:
		sb.WriteString("<pre><code>")
		for _, child := range c.Children {
			writeCodeBlockChild(sb, child)
		}
		sb.WriteString("</code></pre>")
		return
	case dom.KindLink:
		sb.WriteString(`<a href="`)
		sb.WriteString(html.EscapeString(c.LinkURL))
		sb.WriteString(`">`)
		for _, child := range c.Children {
			writeHTMLNode(sb, child, asMessage)
		}
		sb.WriteString(`</a>`)
		return
	}

	tag, wrapped := containerTags[c.Kind]
	if wrapped {
		sb.WriteByte('<')
		sb.WriteString(tag)
		sb.WriteByte('>')
	}
	for _, child := range c.Children {
		writeHTMLNode(sb, child, asMessage)
	}
	if wrapped {
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')
	}
}

func writeCodeBlockChild(sb *strings.Builder, n dom.Node) {
	switch v := n.(type) {
	case *dom.Text:
		sb.WriteString(html.EscapeString(v.Content.String()))
	case *dom.LineBreak:
		sb.WriteByte('\n')
	}
}

// messageHref builds a canonical matrix.to permalink for a mention, used
// only when rendering "as message" (§4.J).
func messageHref(m *dom.Mention) string {
	if m.MentionKind == dom.MentionAtRoom {
		return "#"
	}
	if strings.HasPrefix(m.URI, "https://") {
		return m.URI
	}
	for prefix, sigil := range map[string]string{"matrix:u/": "@", "matrix:r/": "#", "matrix:roomid/": "!"} {
		if strings.HasPrefix(m.URI, prefix) {
			return "https://matrix.to/#/" + sigil + strings.TrimPrefix(m.URI, prefix)
		}
	}
	return "https://matrix.to/#/" + m.URI
}
