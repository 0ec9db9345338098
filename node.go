package skiplist

import "sync/atomic"

// Node is the intrusive header a caller-owned record is linked through.
// The list never copies or allocates the record itself: Node stores a
// pointer to it and threads forward pointers through its own header.
//
// A Node must be constructed with NewNode and is safe to pass to Insert
// exactly once. After a successful EraseNode/Erase it may be reused with
// NewNode once the caller is certain no concurrent reader can still reach
// it (see List).
type Node[T any] struct {
	item *T

	next []atomic.Pointer[Node[T]]

	topLayer int

	// isFullyLinked is true once next[0..topLayer] are all spliced in and
	// the node is reachable from head. It is cleared during removal after
	// the node is unlinked from every layer.
	isFullyLinked atomic.Bool

	// beingModified is the CAS-acquired predecessor lock: a writer sets it
	// on a node it is about to mutate as a predecessor, or on itself
	// during removal. Exactly one writer may hold it at a time.
	beingModified atomic.Bool

	// removed is the tombstone. Once true, nextLive skips this node.
	removed atomic.Bool
}

// NewNode wraps item in a fresh, unlinked node ready to be passed to
// List.Insert. item is stored by pointer; the list never dereferences or
// copies *item except through the caller-supplied comparator.
func NewNode[T any](item *T) *Node[T] {
	return &Node[T]{item: item}
}

// Item returns the caller-owned record this node wraps.
func (n *Node[T]) Item() *T {
	if n == nil {
		return nil
	}
	return n.item
}

// init resets n's flags and sizes its forward array for a fresh insertion
// cycle at the given top layer. Mirrors _sl_node_init: the array is only
// reallocated when its length actually changes.
func (n *Node[T]) init(topLayer int) {
	n.isFullyLinked.Store(false)
	n.beingModified.Store(false)
	n.removed.Store(false)

	if n.topLayer != topLayer || n.next == nil {
		n.topLayer = topLayer
		n.next = make([]atomic.Pointer[Node[T]], topLayer+1)
	} else {
		for i := range n.next {
			n.next[i].Store(nil)
		}
	}
}

// lock attempts to acquire the predecessor lock via CAS.
func (n *Node[T]) lock() bool {
	return n.beingModified.CompareAndSwap(false, true)
}

// unlock releases the predecessor lock.
func (n *Node[T]) unlock() {
	n.beingModified.Store(false)
}

// live reports whether n currently satisfies the visibility predicate:
// fully linked and not tombstoned.
func (n *Node[T]) live() bool {
	return n.isFullyLinked.Load() && !n.removed.Load()
}

func newSentinels[T any](maxLayer int) (head, tail *Node[T]) {
	head = &Node[T]{next: make([]atomic.Pointer[Node[T]], maxLayer), topLayer: maxLayer - 1}
	tail = &Node[T]{}
	for i := range head.next {
		head.next[i].Store(tail)
	}
	head.isFullyLinked.Store(true)
	tail.isFullyLinked.Store(true)
	return head, tail
}
