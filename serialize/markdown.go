package serialize

import (
	"strconv"
	"strings"

	"github.com/oxhq/composer/dom"
)

// Markdown renders the document as CommonMark-flavored text (§4.E.3): *, **,
// ~~, and backtick delimiters for inline formatting, "- "/"1. " list
// markers, "> " quote prefixes, and fenced code blocks.
func Markdown(d *dom.Dom) string {
	var sb strings.Builder
	writeMarkdownBlocks(&sb, d.Root.Children, "")
	return strings.TrimSuffix(sb.String(), "\n")
}

var markdownDelim = map[dom.ContainerKind]string{
	dom.KindFormatBold:          "**",
	dom.KindFormatItalic:        "*",
	dom.KindFormatStrikeThrough: "~~",
	dom.KindFormatInlineCode:    "`",
}

// writeMarkdownBlocks renders a sequence of block-level siblings, each
// followed by a blank line, with prefix prepended to every line (used for
// quote nesting).
func writeMarkdownBlocks(sb *strings.Builder, blocks []dom.Node, prefix string) {
	for _, n := range blocks {
		c, ok := n.(*dom.Container)
		if !ok {
			continue
		}
		writeMarkdownBlock(sb, c, prefix)
		sb.WriteString("\n")
	}
}

func writeMarkdownBlock(sb *strings.Builder, c *dom.Container, prefix string) {
	switch c.Kind {
	case dom.KindParagraph:
		sb.WriteString(prefix)
		writeMarkdownInline(sb, c.Children)
		sb.WriteString("\n")

	case dom.KindQuote:
		var inner strings.Builder
		writeMarkdownBlocks(&inner, c.Children, prefix+"> ")
		sb.WriteString(strings.TrimSuffix(inner.String(), "\n"))
		sb.WriteString("\n")

	case dom.KindCodeBlock:
		sb.WriteString(prefix)
		sb.WriteString("```\n")
		sb.WriteString(prefix)
		writeCodeBlockLines(sb, c.Children, prefix)
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteString("```\n")

	case dom.KindListOrdered, dom.KindListUnordered:
		for i, item := range c.Children {
			li, ok := item.(*dom.Container)
			if !ok {
				continue
			}
			marker := "- "
			if c.Kind == dom.KindListOrdered {
				marker = strconv.Itoa(i+1) + ". "
			}
			writeMarkdownListItem(sb, li, prefix, marker)
		}

	default:
		sb.WriteString(prefix)
		writeMarkdownInline(sb, c.Children)
		sb.WriteString("\n")
	}
}

func writeMarkdownListItem(sb *strings.Builder, li *dom.Container, prefix, marker string) {
	contPrefix := prefix + strings.Repeat(" ", len(marker))
	first := true
	for _, child := range li.Children {
		c, ok := child.(*dom.Container)
		if ok && c.Kind.IsList() {
			var inner strings.Builder
			writeMarkdownBlock(&inner, c, contPrefix)
			sb.WriteString(inner.String())
			continue
		}
		if first {
			sb.WriteString(prefix)
			sb.WriteString(marker)
			first = false
		} else {
			sb.WriteString(contPrefix)
		}
		writeMarkdownInline(sb, []dom.Node{child})
		sb.WriteString("\n")
	}
	if first {
		sb.WriteString(prefix)
		sb.WriteString(marker)
		sb.WriteString("\n")
	}
}

func writeCodeBlockLines(sb *strings.Builder, children []dom.Node, prefix string) {
	for _, child := range children {
		switch v := child.(type) {
		case *dom.Text:
			sb.WriteString(v.Content.String())
		case *dom.LineBreak:
			sb.WriteString("\n")
			sb.WriteString(prefix)
		}
	}
}

func writeMarkdownInline(sb *strings.Builder, nodes []dom.Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *dom.Text:
			sb.WriteString(v.Content.String())
		case *dom.LineBreak:
			sb.WriteString("  \n")
		case *dom.Mention:
			sb.WriteString(v.Display)
		case *dom.Container:
			if v.Kind == dom.KindLink {
				sb.WriteString("[")
				writeMarkdownInline(sb, v.Children)
				sb.WriteString("](")
				sb.WriteString(v.LinkURL)
				sb.WriteString(")")
				continue
			}
			if delim, ok := markdownDelim[v.Kind]; ok {
				sb.WriteString(delim)
				writeMarkdownInline(sb, v.Children)
				sb.WriteString(delim)
				continue
			}
			writeMarkdownInline(sb, v.Children)
		}
	}
}
