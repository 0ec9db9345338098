package skiplist

// EraseNode removes node from the list. It returns:
//   - nil on success.
//   - ErrAlreadyRemoved if node's tombstone was already set.
//   - ErrBusy if another writer currently holds node's predecessor lock;
//     the caller decides whether to retry (Erase retries automatically).
//   - ErrAlreadyUnlinked if, after acquiring the lock, another remover had
//     already finished unlinking node.
func (l *List[T]) EraseNode(node *Node[T]) error {
	if node.removed.Load() {
		return ErrAlreadyRemoved
	}
	if !node.lock() {
		return ErrBusy
	}
	// From this point, removed=true means live-traversal skips node even
	// though it may still be physically linked.
	node.removed.Store(true)

	s := l.acquireScratch()
	defer l.releaseScratch(s)
	prevs, nexts := s.prevs, s.nexts

	topLayer := node.topLayer
	for {
		if !node.isFullyLinked.Load() {
			node.unlock()
			return ErrAlreadyUnlinked
		}
		if l.tryFindPredecessors(node, topLayer, prevs, nexts) {
			break
		}
		l.sink.IncEraseRetry()
	}

	for layer := 0; layer <= topLayer; layer++ {
		prevs[layer].next[layer].Store(nexts[layer])
	}
	node.isFullyLinked.Store(false)
	l.releaseLocks(prevs, 0, topLayer)
	node.unlock()
	l.sink.AddLen(-1)
	return nil
}

// tryFindPredecessors locates node's current predecessors/successors at
// every layer 0..topLayer and locks each distinct predecessor, the same
// top-down descent Insert uses. removed is already set on node, so
// nextLive transparently skips it; next_node observed here is therefore
// always strictly greater than node. Returns false (with all acquired
// locks released) if the neighborhood must be re-searched.
func (l *List[T]) tryFindPredecessors(node *Node[T], topLayer int, prevs, nexts []*Node[T]) bool {
	cur := l.head
	for layer := l.maxLayer - 1; layer >= 0; layer-- {
		for {
			next := l.nextLive(cur, layer)
			if l.cmp(node, next) > 0 {
				cur = next
				continue
			}

			if layer <= topLayer {
				prevs[layer] = cur
				nexts[layer] = next

				lockedFrom := layer + 1
				stale := false

				if layer < topLayer && prevs[layer] == prevs[layer+1] {
					// Lock already held from the layer above.
				} else if cur.lock() {
					lockedFrom = layer
				} else {
					if eraseLockFailHook != nil {
						eraseLockFailHook(layer, cur)
					}
					stale = true
				}

				if !stale && !(prevs[layer].live() && nexts[layer].live()) {
					stale = true
				}
				if stale {
					l.releaseLocks(prevs, lockedFrom, topLayer)
					return false
				}

				if l.nextLive(cur, layer) != next {
					if eraseStaleHook != nil {
						eraseStaleHook(layer, cur, next)
					}
					l.releaseLocks(prevs, layer, topLayer)
					return false
				}
			}

			if layer > 0 {
				break
			}
			return true
		}
	}
	return true
}

// Erase finds the node whose item compares equal to query and removes
// it, retrying internally while EraseNode reports ErrBusy. It returns
// ErrNotFound if no equal node exists.
func (l *List[T]) Erase(query *T) error {
	node := l.Find(query)
	if node == nil {
		return ErrNotFound
	}
	for {
		err := l.EraseNode(node)
		if err == ErrBusy {
			l.sink.IncEraseBusy()
			continue
		}
		return err
	}
}
