package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/ustring"
)

func TestHTMLEscapesAndWrapsFormatting(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	bold := dom.NewContainer(dom.KindFormatBold)
	bold.Children = []dom.Node{dom.NewText(ustring.U16, "<b>&")}
	p.Children = []dom.Node{bold}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	assert.Equal(t, "<p><strong>&lt;b&gt;&amp;</strong></p>", HTML(d))
}

func TestHTMLCodeBlockUsesLiteralNewlines(t *testing.T) {
	d := dom.New(ustring.U16)
	cb := dom.NewContainer(dom.KindCodeBlock)
	cb.Children = []dom.Node{
		dom.NewText(ustring.U16, "a := 1"),
		dom.NewLineBreak(),
		dom.NewText(ustring.U16, "b := 2"),
	}
	require.NoError(t, d.AppendAtEndOfDocument(cb))

	assert.Equal(t, "<pre><code>a := 1\nb := 2</code></pre>", HTML(d))
}

func TestHTMLLinkContainerRendersHref(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	p.Children = []dom.Node{dom.NewLink("https://example.com", dom.NewText(ustring.U16, "example"))}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	assert.Equal(t, `<p><a href="https://example.com">example</a></p>`, HTML(d))
}

func TestHTMLAsMessageRendersMatrixPermalinkForMention(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	p.Children = []dom.Node{dom.NewMention(dom.MentionUser, "@alice:example.org", "Alice")}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	assert.Equal(t, `<p><a href="@alice:example.org">Alice</a></p>`, HTML(d))
	assert.Equal(t, `<p><a href="https://matrix.to/#/@alice:example.org">Alice</a></p>`, HTMLAsMessage(d))
}

func TestHTMLAsMessageAtRoomMentionUsesHashHref(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	p.Children = []dom.Node{dom.NewMention(dom.MentionAtRoom, "", "@room")}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	assert.Equal(t, `<p><a href="#">@room</a></p>`, HTMLAsMessage(d))
}
