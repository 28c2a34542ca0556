package composer

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/ustring"
)

// suggestionPattern matches a mention trigger ("@", "#", or "/") followed
// by a run of non-whitespace, anchored at the end of the text before the
// caret (§4.J).
var suggestionPattern = regexp.MustCompile(`[@#/]\S*$`)

// Suggestion describes an in-progress mention/slash-command trigger the
// caret currently sits inside, for a host to show a picker against.
type Suggestion struct {
	ID      string
	Pattern string // "@", "#", or "/"
	Text    string // the characters typed after the trigger
}

// DetectSuggestion reports the active suggestion trigger at the current
// collapsed selection, if any.
func DetectSuggestion(s *State) (Suggestion, bool) {
	start, end := s.SafeSelection()
	if start != end {
		return Suggestion{}, false
	}
	text := plainTextBeforeCaret(s.Dom, start)
	match := suggestionPattern.FindString(text)
	if match == "" {
		return Suggestion{}, false
	}
	return Suggestion{ID: uuid.NewString(), Pattern: match[:1], Text: match[1:]}, true
}

// SetMentionFromSuggestion resolves an in-progress suggestion trigger
// (§4.J) into a concrete node: replacing the trigger span ("@alice", "#room",
// "/command") with a Mention when uri classifies as one, or with a plain
// Link over the originally typed text when it does not (§7: a mention URI
// that fails to resolve degrades to a link rather than being dropped).
func (e *Engine) SetMentionFromSuggestion(suggestion Suggestion, uri string) Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if start != end {
			return noChange(s)
		}
		spanLen := ustring.New(s.Dom.Width, suggestion.Pattern+suggestion.Text).Len()
		spanStart := start - spanLen
		if spanStart < 0 {
			return noChange(s)
		}
		e.snapshot()
		if err := deleteRange(s.Dom, spanStart, start); err != nil {
			return noChange(s)
		}
		var node dom.Node
		if kind, display, ok := e.Mentions.Classify(uri); ok {
			node = dom.NewMention(kind, uri, display)
		} else {
			text := dom.NewText(s.Dom.Width, suggestion.Pattern+suggestion.Text)
			node = dom.NewLink(uri, text)
		}
		if err := insertNodeAt(s.Dom, spanStart, node); err != nil {
			return noChange(s)
		}
		newEnd := spanStart + node.TextLen()
		s.Select(newEnd, newEnd)
		return e.changedUpdate(spanStart, newEnd)
	})
}

// plainTextBeforeCaret concatenates the run of Text leaf content ending at
// pos, stopping at the first non-text leaf (a Mention or LineBreak acts as
// a hard boundary a trigger cannot cross).
func plainTextBeforeCaret(d *dom.Dom, pos int) string {
	r := dom.FindRange(d, 0, pos)
	leaves := r.Leaves()
	var parts []string
	for i := len(leaves) - 1; i >= 0; i-- {
		loc := leaves[i]
		if loc.Type != dom.NodeText {
			break
		}
		node, err := d.Lookup(loc.NodeHandle)
		if err != nil {
			break
		}
		t := node.(*dom.Text)
		parts = append([]string{t.Content.Slice(0, loc.EndOffset).String()}, parts...)
	}
	return strings.Join(parts, "")
}
