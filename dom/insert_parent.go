package dom

// InsertParentOverRange wraps every leaf touched by r in a freshly-built
// parent container (one makeParent() call per leaf), splitting any leaf
// that is only partially covered into up to three pieces so only the
// covered middle piece is wrapped (§4.G: the generic basis for formatting
// toggles and set_link). Leaves are processed in reverse document order so
// that splitting one leaf never invalidates the sibling indices of a leaf
// not yet processed. A normalization pass merges adjacent same-kind
// wrappers afterward.
func InsertParentOverRange(d *Dom, r *Range, makeParent func() *Container) error {
	leaves := r.Leaves()
	for i := len(leaves) - 1; i >= 0; i-- {
		if err := wrapLeaf(d, leaves[i], makeParent); err != nil {
			return err
		}
	}
	NormalizeAfterEdit(d)
	return nil
}

func wrapLeaf(d *Dom, loc Location, makeParent func() *Container) error {
	node, err := d.Lookup(loc.NodeHandle)
	if err != nil {
		return err
	}
	length := node.TextLen()
	start, end := loc.StartOffset, loc.EndOffset

	if length == 0 || (start == 0 && end == length) {
		wrapper := makeParent()
		wrapper.Children = []Node{node}
		return d.Replace(loc.NodeHandle, []Node{wrapper})
	}

	before, mid := splitNodeAt(node, start)
	var wrapped, after Node
	if mid != nil {
		wrapped, after = splitNodeAt(mid, end-start)
	}

	var parts []Node
	if before != nil {
		parts = append(parts, before)
	}
	if wrapped != nil {
		wrapper := makeParent()
		wrapper.Children = []Node{wrapped}
		parts = append(parts, wrapper)
	}
	if after != nil {
		parts = append(parts, after)
	}
	if len(parts) == 0 {
		return nil
	}
	return d.Replace(loc.NodeHandle, parts)
}
