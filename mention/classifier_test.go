package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/composer/dom"
)

func TestMatrixClassifierURIForms(t *testing.T) {
	c := MatrixClassifier{}

	cases := []struct {
		name    string
		uri     string
		wantOK  bool
		wantKnd dom.MentionKind
		wantDsp string
	}{
		{"canonical user", "matrix:u/alice:example.org", true, dom.MentionUser, "@alice:example.org"},
		{"canonical room alias", "matrix:r/general:example.org", true, dom.MentionRoomAlias, "#general:example.org"},
		{"canonical room id", "matrix:roomid/abc123", true, dom.MentionRoomID, "abc123"},
		{"matrix.to user", "https://matrix.to/#/@bob:example.org", true, dom.MentionUser, "@bob:example.org"},
		{"matrix.to room id", "https://matrix.to/#/!room:example.org", true, dom.MentionRoomID, "!room:example.org"},
		{"at-room", "#", true, dom.MentionAtRoom, "@room"},
		{"unrecognized", "https://example.org/page", false, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, display, ok := c.Classify(tc.uri)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantKnd, kind)
				assert.Equal(t, tc.wantDsp, display)
			}
		})
	}
}
