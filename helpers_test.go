package skiplist

// intItem is the record type every test wraps in a Node. The list never
// copies or reallocates it; Insert/Find only ever see *intItem.
type intItem struct {
	key int
}

func intCmp(a, b *intItem, _ any) int {
	switch {
	case a.key < b.key:
		return -1
	case a.key > b.key:
		return 1
	default:
		return 0
	}
}

func newIntList(opts ...Option) *List[intItem] {
	return New[intItem](intCmp, opts...)
}

func insertInt(l *List[intItem], key int) *Node[intItem] {
	n := NewNode(&intItem{key: key})
	l.Insert(n)
	return n
}

func findInt(l *List[intItem], key int) *Node[intItem] {
	return l.Find(&intItem{key: key})
}

// collect walks the bottom layer from Begin to End and returns the keys
// in traversal order.
func collect(l *List[intItem]) []int {
	var keys []int
	for n := l.Begin(); n != nil; n = l.Next(n) {
		keys = append(keys, n.Item().key)
	}
	return keys
}
