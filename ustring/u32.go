package ustring

// u32String is a String whose offsets are counted in Unicode scalar values
// (runes) — one code unit per rune, regardless of plane.
type u32String struct {
	runes []rune
}

func newU32(s string) *u32String {
	return &u32String{runes: []rune(s)}
}

func (s *u32String) String() string {
	return string(s.runes)
}

func (s *u32String) Runes() []rune {
	out := make([]rune, len(s.runes))
	copy(out, s.runes)
	return out
}

func (s *u32String) IsEmpty() bool {
	return len(s.runes) == 0
}

func (s *u32String) Len() int {
	return len(s.runes)
}

func (s *u32String) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(s.runes) {
		return len(s.runes)
	}
	return i
}

func (s *u32String) Slice(start, end int) String {
	start, end = s.clamp(start), s.clamp(end)
	if end < start {
		end = start
	}
	out := make([]rune, end-start)
	copy(out, s.runes[start:end])
	return &u32String{runes: out}
}

func (s *u32String) Append(other String) String {
	o := other.(*u32String)
	out := make([]rune, 0, len(s.runes)+len(o.runes))
	out = append(out, s.runes...)
	out = append(out, o.runes...)
	return &u32String{runes: out}
}

func (s *u32String) Insert(pos int, other String) String {
	o := other.(*u32String)
	pos = s.clamp(pos)
	out := make([]rune, 0, len(s.runes)+len(o.runes))
	out = append(out, s.runes[:pos]...)
	out = append(out, o.runes...)
	out = append(out, s.runes[pos:]...)
	return &u32String{runes: out}
}

func (s *u32String) GraphemeBefore(offset int) String {
	offset = s.clamp(offset)
	from, to := clusterBefore(s.runes, offset)
	out := make([]rune, to-from)
	copy(out, s.runes[from:to])
	return &u32String{runes: out}
}

func (s *u32String) GraphemeAfter(offset int) String {
	offset = s.clamp(offset)
	from, to := clusterAfter(s.runes, offset)
	out := make([]rune, to-from)
	copy(out, s.runes[from:to])
	return &u32String{runes: out}
}
