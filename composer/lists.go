package composer

import (
	"sort"

	"github.com/oxhq/composer/dom"
	"github.com/oxhq/composer/handle"
)

// OrderedList toggles the selected blocks between ordered-list items and
// plain paragraphs.
func (e *Engine) OrderedList() Update { return e.toggleList(dom.KindListOrdered) }

// UnorderedList toggles the selected blocks between unordered-list items
// and plain paragraphs.
func (e *Engine) UnorderedList() Update { return e.toggleList(dom.KindListUnordered) }

func (e *Engine) toggleList(kind dom.ContainerKind) Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		r := dom.FindRange(s.Dom, start, end)
		blocks := containingBlocks(s.Dom, r)
		if len(blocks) == 0 {
			return noChange(s)
		}
		e.snapshot()
		var err error
		if allListItemsOfKind(s.Dom, blocks, kind) {
			err = unwrapListBlocks(s.Dom, blocks)
		} else {
			err = wrapBlocksAsList(s.Dom, blocks, kind)
		}
		if err != nil {
			return noChange(s)
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

// containingBlocks returns, in document order with duplicates removed, the
// handle of the innermost Paragraph/ListItem/CodeBlock/Quote ancestor of
// every leaf r touches (§4.G: lists, indent/unindent, and codeblock/quote
// all operate on this "containing block" unit rather than on leaves
// directly). Indent/Unindent nest arbitrarily deep: a ListItem's own
// children can include another list, and indentListItem/unindentListItem
// walk one level at a time regardless of current depth.
func containingBlocks(d *dom.Dom, r *dom.Range) []handle.Handle {
	seen := map[string]bool{}
	var out []handle.Handle
	for _, loc := range r.Leaves() {
		b := containingBlock(d, loc.NodeHandle)
		key := b.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

func containingBlock(d *dom.Dom, h handle.Handle) handle.Handle {
	cur := h
	for {
		if n, err := d.Lookup(cur); err == nil {
			if c, ok := n.(*dom.Container); ok {
				switch c.Kind {
				case dom.KindParagraph, dom.KindListItem, dom.KindCodeBlock, dom.KindQuote:
					return cur
				}
			}
		}
		if cur.Depth() == 0 {
			return cur
		}
		cur = cur.Parent()
	}
}

func allListItemsOfKind(d *dom.Dom, blocks []handle.Handle, kind dom.ContainerKind) bool {
	for _, b := range blocks {
		n, err := d.Lookup(b)
		if err != nil {
			return false
		}
		c, ok := n.(*dom.Container)
		if !ok || c.Kind != dom.KindListItem {
			return false
		}
		listNode, err := d.Lookup(b.Parent())
		if err != nil {
			return false
		}
		list, ok := listNode.(*dom.Container)
		if !ok || list.Kind != kind {
			return false
		}
	}
	return true
}

// wrapBlocksAsList converts each block into a one-item List of kind,
// merging it into an adjacent List of the same kind if one ends up next to
// it. Processed in reverse document order so replacing one block never
// invalidates the handle of a block not yet processed.
func wrapBlocksAsList(d *dom.Dom, blocks []handle.Handle, kind dom.ContainerKind) error {
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		n, err := d.Lookup(b)
		if err != nil {
			return err
		}
		c, ok := n.(*dom.Container)
		if !ok {
			continue
		}
		children := c.Children
		item := dom.NewContainer(dom.KindListItem)
		item.Children = children
		list := dom.NewContainer(kind)
		list.Children = []dom.Node{item}
		if err := d.Replace(b, []dom.Node{list}); err != nil {
			return err
		}
		_ = dom.JoinNodeWithSiblings(d, b)
	}
	return nil
}

// unwrapListBlocks converts each ListItem block back into a plain
// Paragraph, removing its now-empty parent List if nothing else is left in
// it.
func unwrapListBlocks(d *dom.Dom, blocks []handle.Handle) error {
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		n, err := d.Lookup(b)
		if err != nil {
			return err
		}
		c, ok := n.(*dom.Container)
		if !ok {
			continue
		}
		listHandle := b.Parent()
		para := dom.NewContainer(dom.KindParagraph)
		para.Children = c.Children
		if err := d.Replace(b, []dom.Node{para}); err != nil {
			return err
		}
		if err := moveOutOfList(d, listHandle, b); err != nil {
			return err
		}
	}
	return nil
}

// moveOutOfList relocates the just-converted paragraph (now living at
// itemHandle, still inside its old list) out to be a sibling of the list
// itself, splitting the list in two around it if it had other items.
func moveOutOfList(d *dom.Dom, listHandle, itemHandle handle.Handle) error {
	list, err := d.LookupContainer(listHandle)
	if err != nil {
		return err
	}
	idx, _ := itemHandle.Index()
	para := list.Children[idx]

	before := append([]dom.Node{}, list.Children[:idx]...)
	after := append([]dom.Node{}, list.Children[idx+1:]...)

	var replacement []dom.Node
	if len(before) > 0 {
		b := dom.NewContainer(list.Kind)
		b.Children = before
		replacement = append(replacement, b)
	}
	replacement = append(replacement, para)
	if len(after) > 0 {
		a := dom.NewContainer(list.Kind)
		a.Children = after
		replacement = append(replacement, a)
	}
	return d.Replace(listHandle, replacement)
}

// CanIndent reports whether the selection's containing block(s) are all
// ListItems that are not already the first item of their list.
func CanIndent(s *State) bool {
	start, end := s.SafeSelection()
	r := dom.FindRange(s.Dom, start, end)
	blocks := containingBlocks(s.Dom, r)
	if len(blocks) == 0 {
		return false
	}
	for _, b := range blocks {
		n, err := s.Dom.Lookup(b)
		if err != nil {
			return false
		}
		c, ok := n.(*dom.Container)
		if !ok || c.Kind != dom.KindListItem {
			return false
		}
		idx, _ := b.Index()
		if idx == 0 {
			return false
		}
	}
	return true
}

// CanUnindent reports whether the selection's containing block(s) are all
// ListItems.
func CanUnindent(s *State) bool {
	start, end := s.SafeSelection()
	r := dom.FindRange(s.Dom, start, end)
	blocks := containingBlocks(s.Dom, r)
	if len(blocks) == 0 {
		return false
	}
	for _, b := range blocks {
		n, err := s.Dom.Lookup(b)
		if err != nil {
			return false
		}
		c, ok := n.(*dom.Container)
		if !ok || c.Kind != dom.KindListItem {
			return false
		}
	}
	return true
}

// listGroup is every selected ListItem that shares the same parent list,
// identified by their index within it at the time the selection was
// resolved.
type listGroup struct {
	listHandle handle.Handle
	indices    []int
}

// groupByParentList partitions blocks (assumed all ListItems) by parent
// list, in first-seen order, deepest lists first — so indenting or
// unindenting a group nested inside another selected item's list is
// resolved before the outer group restructures that item (§4.G.7: "each
// leaf in the selection grouped by its parent list").
func groupByParentList(blocks []handle.Handle) []listGroup {
	var groups []listGroup
	index := map[string]int{}
	for _, b := range blocks {
		listHandle := b.Parent()
		key := listHandle.String()
		idx, _ := b.Index()
		if gi, ok := index[key]; ok {
			groups[gi].indices = append(groups[gi].indices, idx)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, listGroup{listHandle: listHandle, indices: []int{idx}})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].listHandle.Depth() > groups[j].listHandle.Depth()
	})
	return groups
}

// Indent nests every selected ListItem one level deeper, grouped by each
// item's parent list (§4.G.7). Within a group, items are indented in
// ascending document order so a contiguous run nests together as one new
// sub-list under their shared preceding sibling.
func (e *Engine) Indent() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if !CanIndent(s) {
			return noChange(s)
		}
		e.snapshot()
		r := dom.FindRange(s.Dom, start, end)
		blocks := containingBlocks(s.Dom, r)
		for _, g := range groupByParentList(blocks) {
			if err := indentListItems(s.Dom, g.listHandle, g.indices); err != nil {
				return noChange(s)
			}
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

// Unindent moves every selected ListItem one level shallower: out of a
// nested list into its parent list, or out of a top-level list into a
// plain Paragraph. Within a group, items are unindented in descending
// document order so their indices in the shrinking list stay valid.
func (e *Engine) Unindent() Update {
	return e.run(func() Update {
		s := e.State
		start, end := s.SafeSelection()
		if !CanUnindent(s) {
			return noChange(s)
		}
		e.snapshot()
		r := dom.FindRange(s.Dom, start, end)
		blocks := containingBlocks(s.Dom, r)
		for _, g := range groupByParentList(blocks) {
			if err := unindentListItems(s.Dom, g.listHandle, g.indices); err != nil {
				return noChange(s)
			}
		}
		s.Select(start, end)
		return e.changedUpdate(start, end)
	})
}

// indentListItems indents the items at indices (original, pre-mutation
// positions within listHandle) in ascending order, tracking how many have
// already been removed so later indices are translated to their current
// position in the shrinking list.
func indentListItems(d *dom.Dom, listHandle handle.Handle, indices []int) error {
	sorted := append([]int{}, indices...)
	sort.Ints(sorted)
	shift := 0
	for _, orig := range sorted {
		cur := orig - shift
		if cur <= 0 {
			continue
		}
		if err := indentListItem(d, listHandle.Child(cur)); err != nil {
			return err
		}
		shift++
	}
	return nil
}

// unindentListItems unindents the items at indices in descending order:
// each call only ever removes items at or above the one being processed,
// so earlier (lower) indices stay valid without translation.
func unindentListItems(d *dom.Dom, listHandle handle.Handle, indices []int) error {
	sorted := append([]int{}, indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		if err := unindentListItem(d, listHandle.Child(idx)); err != nil {
			return err
		}
	}
	return nil
}

func indentListItem(d *dom.Dom, itemHandle handle.Handle) error {
	listHandle := itemHandle.Parent()
	list, err := d.LookupContainer(listHandle)
	if err != nil {
		return err
	}
	idx, _ := itemHandle.Index()
	if idx == 0 {
		return dom.ErrChildIndexOutOfRange
	}
	removed, err := d.Remove(itemHandle)
	if err != nil {
		return err
	}
	removedItem, ok := removed.(*dom.Container)
	if !ok {
		return dom.ErrNotAContainer
	}

	prevHandle := listHandle.Child(idx - 1)
	prevNode, err := d.Lookup(prevHandle)
	if err != nil {
		return err
	}
	prevItem, ok := prevNode.(*dom.Container)
	if !ok {
		return dom.ErrNotAContainer
	}

	var nested *dom.Container
	if n := len(prevItem.Children); n > 0 {
		if c, ok := prevItem.Children[n-1].(*dom.Container); ok && c.Kind == list.Kind {
			nested = c
		}
	}
	if nested == nil {
		nested = dom.NewContainer(list.Kind)
		prevItem.Children = append(prevItem.Children, nested)
	}
	nested.Children = append(nested.Children, removedItem)
	return d.Replace(prevHandle, []dom.Node{prevItem})
}

// unindentListItem moves itemHandle up one level: out of a nested list into
// its parent ListItem's outer list, or out of a top-level list into a plain
// Paragraph. Any siblings that followed itemHandle in its original list are
// carried along as a new nested list attached to the promoted item, rather
// than left behind detached from it (§4.G.7).
func unindentListItem(d *dom.Dom, itemHandle handle.Handle) error {
	listHandle := itemHandle.Parent()
	list, err := d.LookupContainer(listHandle)
	if err != nil {
		return err
	}
	idx, _ := itemHandle.Index()

	outerNode, outerErr := d.Lookup(listHandle.Parent())
	nestedInItem := outerErr == nil
	if nestedInItem {
		c, ok := outerNode.(*dom.Container)
		nestedInItem = ok && c.Kind == dom.KindListItem
	}

	before := append([]dom.Node{}, list.Children[:idx]...)
	after := append([]dom.Node{}, list.Children[idx+1:]...)

	removed, err := d.Remove(itemHandle)
	if err != nil {
		return err
	}
	itemNode, ok := removed.(*dom.Container)
	if !ok {
		return dom.ErrNotAContainer
	}

	if len(after) > 0 {
		trailing := dom.NewContainer(list.Kind)
		trailing.Children = after
		itemNode.Children = append(append([]dom.Node{}, itemNode.Children...), trailing)
	}

	var listReplacement []dom.Node
	if len(before) > 0 {
		b := dom.NewContainer(list.Kind)
		b.Children = before
		listReplacement = []dom.Node{b}
	}

	if nestedInItem {
		if err := d.Replace(listHandle, listReplacement); err != nil {
			return err
		}
		outerItemHandle := listHandle.Parent()
		return d.InsertAt(outerItemHandle.NextSibling(), itemNode)
	}

	// listHandle.NextSibling() would be stale once the list shrinks to zero
	// children (the slot it occupied disappears, shifting later siblings
	// down), so splice the shrunk-or-gone list and the promoted paragraph in
	// as one replacement instead of two separate edits.
	para := dom.NewContainer(dom.KindParagraph)
	para.Children = itemNode.Children
	replacement := append(append([]dom.Node{}, listReplacement...), para)
	return d.Replace(listHandle, replacement)
}
