package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrentStateSnapshotsHTMLSelectionAndMenu(t *testing.T) {
	e := newEngineFromFixture(t, "Hello {world}")
	e.Bold()

	cs := e.GetCurrentState()
	assert.Equal(t, "<p>Hello <strong>world</strong></p>", cs.HTML)
	assert.Equal(t, len("Hello "), cs.SelectionStart)
	assert.Equal(t, len("Hello world"), cs.SelectionEnd)
	assert.Equal(t, Reversed, cs.Menu[ActionBold])
}
