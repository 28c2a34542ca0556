package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChildParentRoundTrip(t *testing.T) {
	root := Root()
	child := root.Child(2).Child(0)
	assert.Equal(t, []int{2, 0}, child.Path())
	assert.Equal(t, 2, child.Depth())
	assert.True(t, child.Parent().Equal(root.Child(2)))
}

func TestTotalOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b Handle
		want int // sign expected
	}{
		{"equal", FromPath(1, 2), FromPath(1, 2), 0},
		{"sibling_order", FromPath(0, 1), FromPath(0, 2), -1},
		{"ancestor_before_descendant", FromPath(0), FromPath(0, 5), -1},
		{"different_branch", FromPath(1), FromPath(0, 9), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestStartsWithAndIsAncestorOf(t *testing.T) {
	a := FromPath(0, 1)
	b := FromPath(0, 1, 2)
	assert.True(t, a.IsAncestorOf(b))
	assert.False(t, b.IsAncestorOf(a))
	assert.True(t, b.StartsWith(a))
	assert.False(t, a.StartsWith(b))
}

func TestNextPrevSibling(t *testing.T) {
	h := FromPath(0, 2)
	assert.Equal(t, []int{0, 3}, h.NextSibling().Path())
	assert.Equal(t, []int{0, 1}, h.PrevSibling().Path())

	first := FromPath(0, 0)
	assert.True(t, first.PrevSibling().Equal(first), "prev of index 0 is a no-op")
}

func TestSubHandleUpToDepth(t *testing.T) {
	h := FromPath(3, 1, 4, 1, 5)
	assert.Equal(t, []int{3, 1, 4}, h.SubHandleUpToDepth(3).Path())
	assert.Equal(t, []int{}, h.SubHandleUpToDepth(0).Path())
	assert.Equal(t, h.Path(), h.SubHandleUpToDepth(100).Path())
}

func TestUnsetHandle(t *testing.T) {
	var h Handle
	assert.False(t, h.IsSet())
	assert.Equal(t, "<unset>", h.String())
	assert.Equal(t, "<root>", Root().String())
}
