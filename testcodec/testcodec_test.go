package testcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/composer/ustring"
)

func TestDecodeCollapsedCursor(t *testing.T) {
	d, start, end := Decode("Hello| world", ustring.U16)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
	assert.Equal(t, 11, d.Root.TextLen())
}

func TestDecodeSelection(t *testing.T) {
	_, start, end := Decode("Hello {there} now", ustring.U16)
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)
}

func TestDecodeMultilineBuildsSeparateParagraphs(t *testing.T) {
	d, _, _ := Decode("Hello\nWorld", ustring.U16)
	assert.Len(t, d.Root.Children, 2)
	assert.Equal(t, 11, d.Root.TextLen())
}

func TestDecodeZeroWidthMarker(t *testing.T) {
	d, start, end := Decode("~|", ustring.U16)
	assert.Equal(t, 1, start)
	assert.Equal(t, 1, end)
	assert.Equal(t, 1, d.Root.TextLen())
}

func TestEncodeRoundTripsCollapsedCursor(t *testing.T) {
	d, start, end := Decode("Hello| world", ustring.U16)
	assert.Equal(t, "Hello| world", Encode(d, start, end))
}

func TestEncodeRoundTripsSelection(t *testing.T) {
	d, start, end := Decode("Hello {there} now", ustring.U16)
	assert.Equal(t, "Hello {there} now", Encode(d, start, end))
}

func TestEncodeRoundTripsMultiline(t *testing.T) {
	d, start, end := Decode("Hello|\nWorld", ustring.U16)
	assert.Equal(t, "Hello|\nWorld", Encode(d, start, end))
}
