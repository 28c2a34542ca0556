package dom

import "errors"

// Host-contract violations (§7.1): calling the tree API with a handle or
// range that no longer matches the live tree. These are not expected to
// occur from command code that resolves handles freshly on every call, but
// they guard against stale handles ever escaping a command boundary
// ("never store a handle for longer than one command", §9).
var (
	ErrInvalidHandle    = errors.New("dom: invalid handle")
	ErrNotAContainer    = errors.New("dom: expected a container node")
	ErrRootHasNoParent  = errors.New("dom: root has no parent")
	ErrChildIndexOutOfRange = errors.New("dom: child index out of range")
)
