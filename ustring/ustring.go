// Package ustring abstracts over the code-unit width used for linear document
// offsets. The editing core never hands out byte offsets directly; it hands
// out offsets in whatever code unit the host binding chose, so that a cursor
// position computed by the engine lines up with the offsets the host UI
// reports back (JS string indices, UTF-16 surrogate pairs, etc).
package ustring

// Width selects the code-unit encoding used for public offsets.
type Width int

const (
	// U16 counts UTF-16 code units (one per BMP rune, two for astral
	// runes). This is the default: it matches a JS/contentEditable host.
	U16 Width = iota
	// U32 counts runes (one code unit per Unicode scalar value).
	U32
)

// String is a Unicode string addressed in a fixed code-unit width. All
// offsets passed to and returned from its methods are in that width.
type String interface {
	// Len returns the length in code units.
	Len() int
	// String returns the underlying Go (UTF-8) string.
	String() string
	// Slice returns the code-unit range [start,end) as a new String.
	Slice(start, end int) String
	// Append returns a new String with other appended.
	Append(other String) String
	// Insert returns a new String with other inserted at offset pos.
	Insert(pos int, other String) String
	// Runes iterates the Unicode scalar values in order.
	Runes() []rune
	// GraphemeBefore returns the grapheme cluster immediately before the
	// given code-unit offset, which must sit on a grapheme boundary. Returns
	// the empty string at offset 0.
	GraphemeBefore(offset int) String
	// GraphemeAfter returns the grapheme cluster immediately after the given
	// code-unit offset. Returns the empty string at the end of the string.
	GraphemeAfter(offset int) String
	// IsEmpty reports whether the string has zero code units.
	IsEmpty() bool
}

// New builds a String of the given width from Go (UTF-8) source text.
func New(w Width, s string) String {
	switch w {
	case U32:
		return newU32(s)
	default:
		return newU16(s)
	}
}

// Empty returns a zero-length String of the given width.
func Empty(w Width) String {
	return New(w, "")
}
