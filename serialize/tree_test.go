package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/ustring"
)

func TestTreeDumpsNestedStructure(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	p.Children = []dom.Node{dom.NewText(ustring.U16, "hi")}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	out := Tree(d)
	assert.Contains(t, out, "Paragraph")
	assert.Contains(t, out, `Text`)
	assert.Contains(t, out, `"hi"`)
}

func TestTreeShowsLinkURL(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	p.Children = []dom.Node{dom.NewLink("https://example.com", dom.NewText(ustring.U16, "example"))}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	out := Tree(d)
	assert.Contains(t, out, "Link")
	assert.Contains(t, out, "-> https://example.com")
}

func TestTreeShowsMentionKindName(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	p.Children = []dom.Node{dom.NewMention(dom.MentionAtRoom, "", "@room")}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	out := Tree(d)
	assert.Contains(t, out, "Mention")
	assert.Contains(t, out, "at-room")
	assert.Contains(t, out, `"@room"`)
}
