package dom

import "github.com/oxhq/composer/handle"

// Location describes one node visited while resolving a (start,end) range
// (§4.D): its handle, its position in document coordinates, and the portion
// of its own text interval the range covers.
type Location struct {
	NodeHandle  handle.Handle
	Node        Node // valid for the lifetime of the current command only
	Position    int
	StartOffset int
	EndOffset   int
	Type        NodeType
	Container   ContainerKind // meaningful only when Type == NodeContainer
	IsLeafNode  bool
}

// Range is the ordered (pre-order) list of Locations touched by a
// (start,end) selection, component D's output.
type Range struct {
	Locations []Location
	Start     int // min(start,end)
	End       int // max(start,end)
}

// FindRange resolves a linear (start,end) position pair against the tree.
func FindRange(d *Dom, start, end int) *Range {
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	r := &Range{Start: lo, End: hi}
	d.WalkPositions(func(n Node, pos int) {
		length := n.TextLen()
		nodeStart, nodeEnd := pos, pos+length
		var overlaps bool
		if lo == hi {
			overlaps = nodeStart <= lo && lo <= nodeEnd
		} else {
			overlaps = nodeStart < hi && nodeEnd > lo
		}
		if !overlaps {
			return
		}
		startOffset := lo - nodeStart
		if startOffset < 0 {
			startOffset = 0
		}
		endOffset := hi - nodeStart
		if endOffset > length {
			endOffset = length
		}
		if endOffset < startOffset {
			endOffset = startOffset
		}
		loc := Location{
			NodeHandle:  n.Handle(),
			Node:        n,
			Position:    nodeStart,
			StartOffset: startOffset,
			EndOffset:   endOffset,
			Type:        n.Type(),
			IsLeafNode:  IsLeaf(n),
		}
		if c, ok := n.(*Container); ok {
			loc.Container = c.Kind
		}
		r.Locations = append(r.Locations, loc)
	})
	return r
}

// IsSelection reports whether the range is non-empty (start != end).
func (r *Range) IsSelection() bool {
	return r.Start != r.End
}

// Leaves returns the Locations for leaf nodes only (Text, LineBreak,
// Mention, or an empty Container).
func (r *Range) Leaves() []Location {
	var out []Location
	for _, loc := range r.Locations {
		if loc.IsLeafNode {
			out = append(out, loc)
		}
	}
	return out
}

// Contains reports whether h identifies one of the visited nodes.
func (r *Range) Contains(h handle.Handle) bool {
	for _, loc := range r.Locations {
		if loc.NodeHandle.Equal(h) {
			return true
		}
	}
	return false
}

// DeepestBlockNode returns the handle of the most deeply nested block
// Location whose interval contains pos, or the zero Handle if none.
func (r *Range) DeepestBlockNode(pos int) (handle.Handle, bool) {
	var found handle.Handle
	ok := false
	for _, loc := range r.Locations {
		if loc.Type != NodeContainer || !loc.Container.IsBlock() {
			continue
		}
		if loc.Position <= pos && pos <= loc.Position+nodeLenFromLocation(loc) {
			found = loc.NodeHandle
			ok = true
		}
	}
	return found, ok
}

func nodeLenFromLocation(loc Location) int {
	if loc.Node != nil {
		return loc.Node.TextLen()
	}
	return loc.EndOffset
}

// SharedParentOutside returns the deepest ancestor handle that fully
// contains the whole range (the longest common handle-path prefix across
// every visited Location).
func (r *Range) SharedParentOutside() handle.Handle {
	if len(r.Locations) == 0 {
		return handle.Root()
	}
	prefix := r.Locations[0].NodeHandle.Path()
	for _, loc := range r.Locations[1:] {
		p := loc.NodeHandle.Path()
		n := len(prefix)
		if len(p) < n {
			n = len(p)
		}
		i := 0
		for i < n && prefix[i] == p[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return handle.FromPath(prefix...)
}

// PreferredCaretLeaf implements the boundary policy of §4.D: when the
// selection is empty, prefer the end of the previous leaf over the start of
// the next one (so a toggled format at "text|" extends with further
// typing); for a non-empty selection ending at its End, the inverse applies
// implicitly by callers using EndOffset on the last leaf.
func (r *Range) PreferredCaretLeaf() (Location, bool) {
	leaves := r.Leaves()
	if len(leaves) == 0 {
		return Location{}, false
	}
	if r.IsSelection() {
		return leaves[len(leaves)-1], true
	}
	// Prefer a leaf whose interval ends exactly at the caret (the
	// "previous leaf") over one that only starts there.
	for i := len(leaves) - 1; i >= 0; i-- {
		if leaves[i].Position+nodeLenFromLocation(leaves[i]) == r.Start && nodeLenFromLocation(leaves[i]) > 0 {
			return leaves[i], true
		}
	}
	return leaves[0], true
}
