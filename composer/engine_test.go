package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/composer/serialize"
	"github.com/oxhq/composer/testcodec"
	"github.com/oxhq/composer/ustring"
)

func newEngineFromFixture(t *testing.T, fixture string) *Engine {
	t.Helper()
	d, start, end := testcodec.Decode(fixture, ustring.U16)
	e := NewEngine(ustring.U16, 50, nil)
	e.State.Dom = d
	e.State.Select(start, end)
	return e
}

func TestReplaceTextInsertsAtCollapsedCaret(t *testing.T) {
	e := newEngineFromFixture(t, "Hello| world")
	upd := e.ReplaceText(" there")
	require.True(t, upd.Changed)
	assert.Equal(t, "Hello there world", serialize.PlainText(e.State.Dom))
}

func TestReplaceTextOverwritesSelection(t *testing.T) {
	e := newEngineFromFixture(t, "Hello {world}!")
	upd := e.ReplaceText("there")
	require.True(t, upd.Changed)
	assert.Equal(t, "Hello there!", serialize.PlainText(e.State.Dom))
}

func TestBackspaceJoinsBlocksAcrossGap(t *testing.T) {
	e := newEngineFromFixture(t, "Hello\n|World")
	upd := e.Backspace()
	require.True(t, upd.Changed)
	assert.Equal(t, "HelloWorld", serialize.PlainText(e.State.Dom))
}

func TestBackspaceAtDocumentStartIsNoOp(t *testing.T) {
	e := newEngineFromFixture(t, "|Hello")
	upd := e.Backspace()
	assert.False(t, upd.Changed)
	assert.False(t, e.History.CanUndo())
}

func TestDeleteAtDocumentEndIsNoOp(t *testing.T) {
	e := newEngineFromFixture(t, "Hello|")
	upd := e.Delete()
	assert.False(t, upd.Changed)
	assert.False(t, e.History.CanUndo())
}

func TestBoldTogglesWrapperOnSelection(t *testing.T) {
	e := newEngineFromFixture(t, "{Hello}")
	upd := e.Bold()
	require.True(t, upd.Changed)
	assert.Equal(t, "<p><strong>Hello</strong></p>", serialize.HTML(e.State.Dom))

	upd = e.Bold()
	require.True(t, upd.Changed)
	assert.Equal(t, "<p>Hello</p>", serialize.HTML(e.State.Dom))
}

func TestSetLinkWrapsSelection(t *testing.T) {
	e := newEngineFromFixture(t, "visit {example.com} now")
	upd := e.SetLink("example.com")
	require.True(t, upd.Changed)
	assert.Equal(t, `<p>visit <a href="https://example.com">example.com</a> now</p>`, serialize.HTML(e.State.Dom))
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := newEngineFromFixture(t, "Hello|")
	e.ReplaceText(" world")
	assert.Equal(t, "Hello world", serialize.PlainText(e.State.Dom))

	upd := e.Undo()
	require.True(t, e.History.CanRedo())
	_ = upd
	assert.Equal(t, "Hello", serialize.PlainText(e.State.Dom))

	e.Redo()
	assert.Equal(t, "Hello world", serialize.PlainText(e.State.Dom))
}

func TestEnterSplitsParagraph(t *testing.T) {
	e := newEngineFromFixture(t, "Hello| world")
	upd := e.Enter()
	require.True(t, upd.Changed)
	assert.Equal(t, "Hello\n world", serialize.PlainText(e.State.Dom))
}

func TestOrderedListWrapsSelectedBlock(t *testing.T) {
	e := newEngineFromFixture(t, "{Hello}")
	upd := e.OrderedList()
	require.True(t, upd.Changed)
	assert.Equal(t, "<ol><li>Hello</li></ol>", serialize.HTML(e.State.Dom))
}
