package skiplist

// Insert links node into the list. node must have been constructed with
// NewNode and must not currently belong to any list. Insert retries
// internally until it succeeds; it never reports failure to the caller
// (spec §7) and never blocks beyond bounded CAS spins.
//
// Inserting a node whose item compares equal to an existing node's item
// is undefined at this layer (spec §3/§9): the resulting order between
// the two is unspecified. Callers needing duplicate rejection or
// multimap semantics must check with Find before calling Insert.
func (l *List[T]) Insert(node *Node[T]) {
	topLayer := l.rng.sampleTopLayer(l.fanout, l.maxLayer)
	node.init(topLayer)

	s := l.acquireScratch()
	defer l.releaseScratch(s)
	prevs, nexts := s.prevs, s.nexts

	for !l.tryInsert(node, topLayer, prevs, nexts) {
		l.sink.IncInsertRetry()
	}
	l.sink.IncInsertSuccess()
	l.sink.AddLen(1)
}

// tryInsert performs one top-down descent-lock-splice attempt. It returns
// true once node is fully linked, false if the attempt must restart from
// head (some predecessor lock was contended or the neighborhood changed
// underneath it). All locks acquired during a failed attempt are released
// before returning false.
func (l *List[T]) tryInsert(node *Node[T], topLayer int, prevs, nexts []*Node[T]) bool {
	cur := l.head
	for layer := l.maxLayer - 1; layer >= 0; layer-- {
		for {
			next := l.nextLive(cur, layer)
			if l.cmp(node, next) > 0 {
				cur = next
				continue
			}
			// node <= next: this is the splice point for this layer.

			if layer <= topLayer {
				prevs[layer] = cur
				nexts[layer] = next

				lockedFrom := layer + 1
				stale := false

				if layer < topLayer && prevs[layer] == prevs[layer+1] {
					// Already held from the layer above; reusing the lock
					// is required, not just an optimization — acquiring it
					// twice would deadlock against ourselves.
				} else if cur.lock() {
					lockedFrom = layer
				} else {
					if insertLockFailHook != nil {
						insertLockFailHook(layer, cur)
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

				node.next[layer].Store(next)

				if l.nextLive(cur, layer) != next {
					if insertStaleHook != nil {
						insertStaleHook(layer, cur, next)
					}
					l.releaseLocks(prevs, layer, topLayer)
					return false
				}
			}

			if layer > 0 {
				break // descend to the next layer from cur
			}

			// layer == 0: every layer 0..topLayer is locked and validated.
			for lv := 0; lv <= topLayer; lv++ {
				prevs[lv].next[lv].Store(node)
			}
			node.isFullyLinked.Store(true)
			l.releaseLocks(prevs, 0, topLayer)
			return true
		}
	}
	return true
}

// releaseLocks unlocks each distinct predecessor in prevs[start..topLayer]
// exactly once, mirroring the acquisition dedup rule: a layer's lock is
// released iff it's the top layer or its predecessor differs from the
// layer above's.
func (l *List[T]) releaseLocks(prevs []*Node[T], start, topLayer int) {
	for layer := start; layer <= topLayer; layer++ {
		if layer == topLayer || prevs[layer] != prevs[layer+1] {
			prevs[layer].unlock()
		}
	}
}
