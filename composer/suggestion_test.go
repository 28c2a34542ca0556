package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/testcodec"
	"github.com/oxhq/composer/ustring"
)

func TestDetectSuggestionFindsMentionTrigger(t *testing.T) {
	e := newEngineFromFixture(t, "hello @al|ice")
	sug, ok := DetectSuggestion(e.State)
	require.True(t, ok)
	assert.Equal(t, "@", sug.Pattern)
	assert.Equal(t, "al", sug.Text)
	assert.NotEmpty(t, sug.ID)
}

func TestDetectSuggestionNoneOnPlainCaret(t *testing.T) {
	e := newEngineFromFixture(t, "hello wo|rld")
	_, ok := DetectSuggestion(e.State)
	assert.False(t, ok)
}

func TestDetectSuggestionNoneOnSelection(t *testing.T) {
	d, _, _ := testcodec.Decode("{hello} @bob", ustring.U16)
	e := NewEngine(ustring.U16, 10, nil)
	e.State.Dom = d
	e.State.Select(0, 5)
	_, ok := DetectSuggestion(e.State)
	assert.False(t, ok)
}
