// Package handle implements node handles: paths from the document root to a
// node, expressed as a sequence of child indices. Handles give every node a
// stable, pointer-free identity and a total order, per the "tree with stable
// identity without cycles" design note: a handle is a path, never a back-edge.
package handle

import "strings"

// Handle is a value type identifying a node by the sequence of child indices
// from the root. The zero value is the (unset) root handle.
type Handle struct {
	path []int
	set  bool
}

// Unset returns a handle with no path assigned yet.
func Unset() Handle {
	return Handle{}
}

// Root returns the handle of the document root (the empty path, but marked
// as attached).
func Root() Handle {
	return Handle{path: nil, set: true}
}

// FromPath builds a handle from an explicit sequence of child indices.
func FromPath(path ...int) Handle {
	p := make([]int, len(path))
	copy(p, path)
	return Handle{path: p, set: true}
}

// IsSet reports whether this handle has been attached to a tree position.
func (h Handle) IsSet() bool {
	return h.set
}

// Depth returns len(path); the root has depth 0.
func (h Handle) Depth() int {
	return len(h.path)
}

// Path returns a copy of the underlying index sequence.
func (h Handle) Path() []int {
	out := make([]int, len(h.path))
	copy(out, h.path)
	return out
}

// IsRoot reports whether this is the (set) root handle.
func (h Handle) IsRoot() bool {
	return h.set && len(h.path) == 0
}

// Child returns the handle of the i-th child of this node.
func (h Handle) Child(i int) Handle {
	p := make([]int, len(h.path)+1)
	copy(p, h.path)
	p[len(h.path)] = i
	return Handle{path: p, set: true}
}

// Parent returns the handle of this node's parent. Calling Parent on the
// root handle is a host-contract violation and returns the root unchanged.
func (h Handle) Parent() Handle {
	if len(h.path) == 0 {
		return h
	}
	p := make([]int, len(h.path)-1)
	copy(p, h.path[:len(h.path)-1])
	return Handle{path: p, set: true}
}

// Index returns this node's index among its siblings, and true — or (0,
// false) for the root, which has no siblings.
func (h Handle) Index() (int, bool) {
	if len(h.path) == 0 {
		return 0, false
	}
	return h.path[len(h.path)-1], true
}

// NextSibling returns the handle one position to the right among siblings.
func (h Handle) NextSibling() Handle {
	if len(h.path) == 0 {
		return h
	}
	p := h.Path()
	p[len(p)-1]++
	return Handle{path: p, set: true}
}

// PrevSibling returns the handle one position to the left among siblings.
// Calling this on index 0 is a host-contract violation; it returns the same
// handle unchanged (the caller is expected to check Index() first).
func (h Handle) PrevSibling() Handle {
	if len(h.path) == 0 || h.path[len(h.path)-1] == 0 {
		return h
	}
	p := h.Path()
	p[len(p)-1]--
	return Handle{path: p, set: true}
}

// SubHandleUpToDepth truncates the path to at most depth entries.
func (h Handle) SubHandleUpToDepth(depth int) Handle {
	if depth >= len(h.path) {
		return h
	}
	if depth < 0 {
		depth = 0
	}
	p := make([]int, depth)
	copy(p, h.path[:depth])
	return Handle{path: p, set: true}
}

// IsAncestorOf reports whether h is a strict ancestor of other (other's path
// starts with h's path and is strictly longer).
func (h Handle) IsAncestorOf(other Handle) bool {
	if len(other.path) <= len(h.path) {
		return false
	}
	return h.StartsWith(other.SubHandleUpToDepth(len(h.path)))
}

// StartsWith reports whether h's path begins with prefix's path.
func (h Handle) StartsWith(prefix Handle) bool {
	if len(prefix.path) > len(h.path) {
		return false
	}
	for i, v := range prefix.path {
		if h.path[i] != v {
			return false
		}
	}
	return true
}

// Equal reports structural equality of two handles.
func (h Handle) Equal(other Handle) bool {
	if h.set != other.set || len(h.path) != len(other.path) {
		return false
	}
	for i, v := range h.path {
		if other.path[i] != v {
			return false
		}
	}
	return true
}

// Compare implements the handles' total (lexicographic) order: negative if h
// sorts before other, 0 if equal, positive if after. A handle whose path is a
// strict prefix of another's sorts before it (an ancestor precedes its
// descendants in pre-order).
func (h Handle) Compare(other Handle) int {
	for i := 0; i < len(h.path) && i < len(other.path); i++ {
		if h.path[i] != other.path[i] {
			return h.path[i] - other.path[i]
		}
	}
	return len(h.path) - len(other.path)
}

// Less reports whether h sorts strictly before other.
func (h Handle) Less(other Handle) bool {
	return h.Compare(other) < 0
}

// String renders a handle as dotted indices, e.g. "0.2.1", or "<root>" /
// "<unset>".
func (h Handle) String() string {
	if !h.set {
		return "<unset>"
	}
	if len(h.path) == 0 {
		return "<root>"
	}
	parts := make([]string, len(h.path))
	for i, v := range h.path {
		parts[i] = itoa(v)
	}
	return strings.Join(parts, ".")
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
