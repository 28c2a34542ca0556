package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/ustring"
)

func TestPlainTextJoinsBlocksWithNewline(t *testing.T) {
	d := dom.New(ustring.U16)
	p1 := dom.NewContainer(dom.KindParagraph)
	p1.Children = []dom.Node{dom.NewText(ustring.U16, "Hello")}
	p2 := dom.NewContainer(dom.KindParagraph)
	p2.Children = []dom.Node{dom.NewText(ustring.U16, "World")}
	require.NoError(t, d.AppendAtEndOfDocument(p1))
	require.NoError(t, d.AppendAtEndOfDocument(p2))

	assert.Equal(t, "Hello\nWorld", PlainText(d))
}

func TestPlainTextRendersMentionAsDisplay(t *testing.T) {
	d := dom.New(ustring.U16)
	p := dom.NewContainer(dom.KindParagraph)
	p.Children = []dom.Node{
		dom.NewText(ustring.U16, "hi "),
		dom.NewMention(dom.MentionUser, "@alice:example.org", "Alice"),
	}
	require.NoError(t, d.AppendAtEndOfDocument(p))

	assert.Equal(t, "hi Alice", PlainText(d))
}
