package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/serialize"
	"github.com/oxhq/composer/testcodec"
	"github.com/oxhq/composer/ustring"
)

func TestQuoteWrapsAndUnwrapsParagraph(t *testing.T) {
	e := NewEngine(ustring.U16, 10, nil)
	d, start, end := testcodec.Decode("|Hello", ustring.U16)
	e.State.Dom = d
	e.State.Select(start, end)

	upd := e.Quote()
	require.True(t, upd.Changed)
	assert.Equal(t, "<blockquote><p>Hello</p></blockquote>", serialize.HTML(e.State.Dom))

	upd = e.Quote()
	require.True(t, upd.Changed)
	assert.Equal(t, "<p>Hello</p>", serialize.HTML(e.State.Dom))
}
