package ustring

import "unicode/utf16"

// u16String is a String whose offsets are counted in UTF-16 code units.
type u16String struct {
	runes []rune
}

func newU16(s string) *u16String {
	return &u16String{runes: []rune(s)}
}

func (s *u16String) String() string {
	return string(s.runes)
}

func (s *u16String) Runes() []rune {
	out := make([]rune, len(s.runes))
	copy(out, s.runes)
	return out
}

func (s *u16String) IsEmpty() bool {
	return len(s.runes) == 0
}

// unitWidth returns the number of UTF-16 code units rune r occupies.
func unitWidth(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

func (s *u16String) Len() int {
	n := 0
	for _, r := range s.runes {
		n += unitWidth(r)
	}
	return n
}

// runeIndexForUnit maps a code-unit offset to a rune index, clamped into
// [0,len(runes)]. Offsets that fall inside a surrogate pair are rounded down
// to the start of that rune.
func (s *u16String) runeIndexForUnit(unit int) int {
	if unit <= 0 {
		return 0
	}
	u := 0
	for i, r := range s.runes {
		w := unitWidth(r)
		if unit < u+w {
			return i
		}
		u += w
	}
	return len(s.runes)
}

func (s *u16String) Slice(start, end int) String {
	ri := s.runeIndexForUnit(start)
	rj := s.runeIndexForUnit(end)
	if rj < ri {
		rj = ri
	}
	out := make([]rune, rj-ri)
	copy(out, s.runes[ri:rj])
	return &u16String{runes: out}
}

func (s *u16String) Append(other String) String {
	o := other.(*u16String)
	out := make([]rune, 0, len(s.runes)+len(o.runes))
	out = append(out, s.runes...)
	out = append(out, o.runes...)
	return &u16String{runes: out}
}

func (s *u16String) Insert(pos int, other String) String {
	o := other.(*u16String)
	ri := s.runeIndexForUnit(pos)
	out := make([]rune, 0, len(s.runes)+len(o.runes))
	out = append(out, s.runes[:ri]...)
	out = append(out, o.runes...)
	out = append(out, s.runes[ri:]...)
	return &u16String{runes: out}
}

func (s *u16String) GraphemeBefore(offset int) String {
	ri := s.runeIndexForUnit(offset)
	from, to := clusterBefore(s.runes, ri)
	out := make([]rune, to-from)
	copy(out, s.runes[from:to])
	return &u16String{runes: out}
}

func (s *u16String) GraphemeAfter(offset int) String {
	ri := s.runeIndexForUnit(offset)
	from, to := clusterAfter(s.runes, ri)
	out := make([]rune, to-from)
	copy(out, s.runes[from:to])
	return &u16String{runes: out}
}

// utf16Units is exposed for tests that want to assert exact code-unit counts
// independent of unitWidth's internal accounting.
func utf16Units(runes []rune) int {
	return len(utf16.Encode(runes))
}
