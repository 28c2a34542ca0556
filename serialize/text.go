// Package serialize renders a document tree to HTML, Markdown, plain text,
// and an ASCII tree dump (§4.E).
package serialize

import (
	"strings"

	"github.com/oxhq/composer/dom"
)

// PlainText renders the document as flat text: block boundaries become
// newlines, Mentions render as their display string (§4.E.2).
func PlainText(d *dom.Dom) string {
	var sb strings.Builder
	writePlainText(&sb, d.Root, true)
	return sb.String()
}

func writePlainText(sb *strings.Builder, n dom.Node, isRoot bool) {
	switch v := n.(type) {
	case *dom.Text:
		sb.WriteString(v.Content.String())
	case *dom.LineBreak:
		sb.WriteByte('\n')
	case *dom.Mention:
		sb.WriteString(v.Display)
	case *dom.Container:
		blockChildren := v.ChildrenAreBlock()
		for i, child := range v.Children {
			if blockChildren && i > 0 {
				sb.WriteByte('\n')
			}
			writePlainText(sb, child, false)
		}
	}
}
