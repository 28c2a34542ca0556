package ustring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenAndSliceU16(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width Width
		want  int
	}{
		{"ascii", "hello", U16, 5},
		{"astral_emoji_is_two_units", "😮", U16, 2},
		{"astral_emoji_is_one_unit_u32", "😮", U32, 1},
		{"empty", "", U16, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.width, tt.input)
			assert.Equal(t, tt.want, s.Len())
		})
	}
}

func TestSliceRoundTrip(t *testing.T) {
	s := New(U16, "hello world")
	sub := s.Slice(0, 5)
	assert.Equal(t, "hello", sub.String())
	sub2 := s.Slice(6, 11)
	assert.Equal(t, "world", sub2.String())
}

func TestInsertAndAppend(t *testing.T) {
	s := New(U16, "ac")
	out := s.Insert(1, New(U16, "b"))
	assert.Equal(t, "abc", out.String())

	joined := New(U16, "foo").Append(New(U16, "bar"))
	assert.Equal(t, "foobar", joined.String())
}

func TestGraphemeZWJSequenceSingleBackspaceStep(t *testing.T) {
	// U+1F62E (face exhaling) U+200D U+1F4A8 (dashing away) forms a single
	// emoji grapheme cluster: backspace must remove it in one step.
	text := "Test😮‍💨"
	s := New(U16, text)

	// Whole grapheme before end.
	g := s.GraphemeBefore(s.Len())
	require.Equal(t, "😮‍💨", g.String())

	remaining := s.Slice(0, s.Len()-utf16Units(g.Runes()))
	assert.Equal(t, "Test", remaining.String())
}

func TestGraphemeAfterAtStart(t *testing.T) {
	s := New(U16, "abc")
	g := s.GraphemeAfter(0)
	assert.Equal(t, "a", g.String())
}

func TestGraphemeBoundaryEmpty(t *testing.T) {
	s := New(U16, "")
	assert.True(t, s.IsEmpty())
	assert.Equal(t, "", s.GraphemeBefore(0).String())
	assert.Equal(t, "", s.GraphemeAfter(0).String())
}

func TestCombiningMarkGlued(t *testing.T) {
	// "e" + combining acute accent (U+0301) is one grapheme.
	s := New(U16, "éx")
	g := s.GraphemeBefore(s.Len() - 1) // before the trailing 'x'
	assert.Equal(t, "é", g.String())
}

func TestRegionalIndicatorFlagPair(t *testing.T) {
	// US flag: U+1F1FA U+1F1F8, each astral (2 units in UTF-16).
	s := New(U16, "\U0001F1FA\U0001F1F8")
	require.Equal(t, 4, s.Len())
	g := s.GraphemeBefore(s.Len())
	assert.Equal(t, "\U0001F1FA\U0001F1F8", g.String())
}
