package dom

import (
	"errors"
	"fmt"

	"github.com/oxhq/composer/handle"
)

// Invariant violations (§3.4), surfaced by AssertInvariants for tests and
// debug builds of the command engine. Production code never returns these
// from normal operation; they exist to catch bugs in command
// implementations before they corrupt a live document.
var (
	ErrEmptyTextNode        = errors.New("dom: empty text node")
	ErrAdjacentTextNodes    = errors.New("dom: adjacent text siblings")
	ErrMultipleGenericRoots = errors.New("dom: more than one Generic container")
	ErrMixedChildKinds      = errors.New("dom: container mixes block and inline children")
	ErrHandleMismatch       = errors.New("dom: node handle does not match tree position")
)

// AssertInvariants walks the whole tree and reports the first invariant
// violation found, or nil if the tree is well-formed.
func AssertInvariants(d *Dom) error {
	return checkSubtree(d.Root, handle.Root())
}

func checkSubtree(n Node, want handle.Handle) error {
	if !n.Handle().Equal(want) {
		return fmt.Errorf("%w: at %s, node reports %s", ErrHandleMismatch, want, n.Handle())
	}
	switch v := n.(type) {
	case *Text:
		if v.IsEmpty() {
			return fmt.Errorf("%w: at %s", ErrEmptyTextNode, want)
		}
	case *Container:
		if v.Kind == KindGeneric && !want.IsRoot() {
			return fmt.Errorf("%w: at %s", ErrMultipleGenericRoots, want)
		}
		if err := checkChildKindsUniform(v, want); err != nil {
			return err
		}
		var prevText bool
		for i, child := range v.Children {
			_, isText := child.(*Text)
			if isText && prevText {
				return fmt.Errorf("%w: at %s child %d", ErrAdjacentTextNodes, want, i)
			}
			prevText = isText
			if err := checkSubtree(child, want.Child(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkChildKindsUniform(c *Container, at handle.Handle) error {
	if len(c.Children) < 2 {
		return nil
	}
	block := IsBlockNode(c.Children[0])
	for i, child := range c.Children[1:] {
		if IsBlockNode(child) != block {
			return fmt.Errorf("%w: at %s child %d", ErrMixedChildKinds, at, i+1)
		}
	}
	return nil
}
