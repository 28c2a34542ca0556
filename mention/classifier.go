// Package mention classifies mention reference URIs (matrix: URIs,
// matrix.to links, and client permalinks) into the dom package's
// MentionKind plus a display string, the contract a host application
// implements to plug in its own addressing scheme (§4.J).
package mention

import (
	"strings"

	"github.com/oxhq/composer/dom"
)

// Classifier recognizes a raw mention URI and reports how it should be
// rendered as a dom.Mention. Returns ok=false for any URI it does not
// recognize, leaving the caller to fall back to a plain link.
type Classifier interface {
	Classify(uri string) (kind dom.MentionKind, display string, ok bool)
}

// MatrixClassifier is the default Classifier: it understands canonical
// "matrix:" URIs, "https://matrix.to/#/..." links, and Element-style
// client permalinks of the same shape.
type MatrixClassifier struct{}

// Classify implements Classifier.
func (MatrixClassifier) Classify(uri string) (dom.MentionKind, string, bool) {
	if uri == "#" {
		return dom.MentionAtRoom, "@room", true
	}
	switch {
	case strings.HasPrefix(uri, "matrix:u/"):
		id := "@" + strings.TrimPrefix(uri, "matrix:u/")
		return dom.MentionUser, id, true
	case strings.HasPrefix(uri, "matrix:roomid/"):
		return dom.MentionRoomID, strings.TrimPrefix(uri, "matrix:roomid/"), true
	case strings.HasPrefix(uri, "matrix:r/"):
		id := "#" + strings.TrimPrefix(uri, "matrix:r/")
		return dom.MentionRoomAlias, id, true
	}

	frag, ok := permalinkFragment(uri)
	if !ok {
		return 0, "", false
	}
	frag = strings.SplitN(frag, "?", 2)[0]
	switch {
	case strings.HasPrefix(frag, "@"):
		return dom.MentionUser, frag, true
	case strings.HasPrefix(frag, "!"):
		return dom.MentionRoomID, frag, true
	case strings.HasPrefix(frag, "#"):
		return dom.MentionRoomAlias, frag, true
	default:
		return 0, "", false
	}
}

// permalinkFragment extracts the identifier portion of a matrix.to or
// client-permalink style URL: everything after the first "matrix.to/#/",
// or else after the first "/#/room/" or "/#/user/" path segment used by
// common clients.
func permalinkFragment(uri string) (string, bool) {
	if i := strings.Index(uri, "matrix.to/#/"); i >= 0 {
		return uri[i+len("matrix.to/#/"):], true
	}
	if i := strings.Index(uri, "/#/room/"); i >= 0 {
		return uri[i+len("/#/room/"):], true
	}
	if i := strings.Index(uri, "/#/user/"); i >= 0 {
		return uri[i+len("/#/user/"):], true
	}
	return "", false
}
