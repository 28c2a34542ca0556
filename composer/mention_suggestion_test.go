package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/mention"
	"github.com/oxhq/composer/serialize"
	"github.com/oxhq/composer/testcodec"
	"github.com/oxhq/composer/ustring"
)

func engineWithMatrixClassifier(t *testing.T, fixture string) *Engine {
	t.Helper()
	d, start, end := testcodec.Decode(fixture, ustring.U16)
	e := NewEngine(ustring.U16, 50, mention.MatrixClassifier{})
	e.State.Dom = d
	e.State.Select(start, end)
	return e
}

func TestSetMentionFromSuggestionResolvesClassifiedURI(t *testing.T) {
	e := engineWithMatrixClassifier(t, "hi @alice|")
	sug, ok := DetectSuggestion(e.State)
	require.True(t, ok)
	require.Equal(t, "@", sug.Pattern)
	require.Equal(t, "alice", sug.Text)

	upd := e.SetMentionFromSuggestion(sug, "matrix:u/alice:example.org")
	require.True(t, upd.Changed)
	assert.Equal(t, `<p>hi <a href="matrix:u/alice:example.org">@alice:example.org</a></p>`, serialize.HTML(e.State.Dom))
}

func TestSetMentionFromSuggestionFallsBackToLinkWhenUnclassified(t *testing.T) {
	e := engineWithMatrixClassifier(t, "hi @alice|")
	sug, ok := DetectSuggestion(e.State)
	require.True(t, ok)

	upd := e.SetMentionFromSuggestion(sug, "https://example.org/unrelated")
	require.True(t, upd.Changed)
	assert.Equal(t, `<p>hi <a href="https://example.org/unrelated">@alice</a></p>`, serialize.HTML(e.State.Dom))
}
