package skiplist

// nextLive follows cur.next[layer], skipping over nodes that fail the
// visibility predicate (isFullyLinked && !removed), and returns the first
// live node encountered, or tail. It never blocks and never allocates:
// a removed node's forward pointers still point to valid, possibly
// further-ahead nodes (invariant 5), so walking past one is always safe.
func (l *List[T]) nextLive(cur *Node[T], layer int) *Node[T] {
	next := cur.next[layer].Load()
	if next == nil {
		return l.tail
	}
	for !next.live() {
		n := next.next[layer].Load()
		if n == nil {
			return l.tail
		}
		next = n
	}
	return next
}
