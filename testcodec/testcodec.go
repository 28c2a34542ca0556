// Package testcodec implements the compact ASCII fixture format used by
// this module's own tests: "{" and "}" bracket a selection, "|" marks a
// collapsed cursor, and a literal newline denotes a paragraph boundary.
// "~" (ZERO WIDTH SPACE, U+200B) marks a position inside an otherwise-empty
// element so a fixture can still pin a cursor there.
package testcodec

import (
	"strings"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/ustring"
)

// ZeroWidthSpace is the literal rune "~" decodes to and "​" encodes
// from, giving an otherwise-empty position something to anchor a marker to.
const ZeroWidthSpace = '​'

// Encode renders the document's linear content as ASCII text with
// selection markers spliced in at the given code-unit positions. Each
// marker is written once, at the first place its position is reached in
// document order, so a position shared by the end of a leaf and the block
// gap after it carries a single marker. Zero-width spaces are written as
// "~".
func Encode(d *dom.Dom, start, end int) string {
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	var sb strings.Builder
	written := map[byte]bool{}
	mark := func(b byte) {
		if !written[b] {
			written[b] = true
			sb.WriteByte(b)
		}
	}
	emit := func(pos int) {
		if lo == hi && pos == lo {
			mark('|')
		}
		if lo != hi {
			if pos == lo {
				mark('{')
			}
			if pos == hi {
				mark('}')
			}
		}
	}
	var walk func(n dom.Node, pos int) int
	walk = func(n dom.Node, pos int) int {
		switch v := n.(type) {
		case *dom.Text:
			writeTextWithMarkers(&sb, v.Content, pos, lo, hi, mark)
			return v.Content.Len()
		case *dom.LineBreak:
			emit(pos)
			sb.WriteByte('\n')
			return 1
		case *dom.Mention:
			emit(pos)
			sb.WriteString(v.Display)
			return 1
		case *dom.Container:
			blockChildren := v.ChildrenAreBlock()
			cur := pos
			total := 0
			if len(v.Children) == 0 {
				emit(pos)
			}
			for i, child := range v.Children {
				if blockChildren && i > 0 {
					emit(cur)
					sb.WriteByte('\n')
					cur++
					total++
				}
				l := walk(child, cur)
				cur += l
				total += l
			}
			return total
		default:
			return 0
		}
	}
	walk(d.Root, 0)
	emit(d.Root.TextLen())
	return sb.String()
}

func writeTextWithMarkers(sb *strings.Builder, content ustring.String, basePos, lo, hi int, mark func(byte)) {
	n := content.Len()
	localLo, localHi := lo-basePos, hi-basePos
	cursor := 0
	write := func(to int) {
		if to > cursor && to <= n {
			sb.WriteString(strings.ReplaceAll(content.Slice(cursor, to).String(), string(ZeroWidthSpace), "~"))
			cursor = to
		}
	}
	if lo == hi {
		if localLo >= 0 && localLo <= n {
			write(localLo)
			mark('|')
		}
	} else {
		if localLo >= 0 && localLo <= n {
			write(localLo)
			mark('{')
		}
		if localHi >= 0 && localHi <= n {
			write(localHi)
			mark('}')
		}
	}
	write(n)
}

// Decode parses the ASCII fixture format back into a document, a selection
// start, and a selection end (start == end for a collapsed cursor). Each
// line becomes one Paragraph; "~" becomes a literal zero-width space.
func Decode(raw string, w ustring.Width) (*dom.Dom, int, int) {
	runes := []rune(raw)
	var cleaned []rune
	markerIdx := map[byte]int{}
	for _, r := range runes {
		switch r {
		case '|', '{', '}':
			markerIdx[byte(r)] = len(cleaned)
		case '~':
			cleaned = append(cleaned, ZeroWidthSpace)
		default:
			cleaned = append(cleaned, r)
		}
	}

	codeUnitPos := func(runeIdx int) int {
		return ustring.New(w, string(cleaned[:runeIdx])).Len()
	}

	var start, end int
	if idx, ok := markerIdx['|']; ok {
		p := codeUnitPos(idx)
		start, end = p, p
	} else if lo, ok := markerIdx['{']; ok {
		if hi, ok := markerIdx['}']; ok {
			start, end = codeUnitPos(lo), codeUnitPos(hi)
		}
	}

	d := dom.New(w)
	for _, seg := range strings.Split(string(cleaned), "\n") {
		p := dom.NewContainer(dom.KindParagraph)
		if seg != "" {
			p.Children = []dom.Node{dom.NewText(w, seg)}
		}
		_ = d.AppendAtEndOfDocument(p)
	}
	return d, start, end
}
