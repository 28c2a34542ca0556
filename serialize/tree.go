package serialize

import (
	"fmt"
	"strings"

	"github.com/oxhq/composer/dom"
)

// Tree renders an indented ASCII dump of the document for debugging and
// snapshot tests (§4.E.4): one line per node, its kind, handle, and a short
// content preview.
func Tree(d *dom.Dom) string {
	var sb strings.Builder
	writeTreeNode(&sb, d.Root, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeTreeNode(sb *strings.Builder, n dom.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	switch v := n.(type) {
	case *dom.Text:
		fmt.Fprintf(sb, "Text %s %q\n", v.Handle(), v.Content.String())
	case *dom.LineBreak:
		fmt.Fprintf(sb, "LineBreak %s\n", v.Handle())
	case *dom.Mention:
		fmt.Fprintf(sb, "Mention %s %s %q -> %s\n", v.Handle(), mentionKindName(v.MentionKind), v.Display, v.URI)
	case *dom.Container:
		if v.Kind == dom.KindLink {
			fmt.Fprintf(sb, "Link %s -> %s\n", v.Handle(), v.LinkURL)
		} else {
			fmt.Fprintf(sb, "%s %s\n", v.Kind, v.Handle())
		}
		for _, child := range v.Children {
			writeTreeNode(sb, child, depth+1)
		}
	}
}

func mentionKindName(k dom.MentionKind) string {
	switch k {
	case dom.MentionUser:
		return "user"
	case dom.MentionRoomID:
		return "room-id"
	case dom.MentionRoomAlias:
		return "room-alias"
	case dom.MentionAtRoom:
		return "at-room"
	default:
		return "unknown"
	}
}
