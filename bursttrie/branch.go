package bursttrie

import "bytes"

// branch dispatches on the next key byte.
type branch[V any] struct {
	children table[V]
	val      V
	hasVal   bool
}

func (b *branch[V]) insert(key []byte, ins *inserter[V]) (V, bool) {
	if len(key) == 0 {
		// the key ends here
		return ins.swap(&b.val, &b.hasVal)
	}

	if slot := b.children.slot(key[0]); slot != nil {
		return insertAt(slot, key[1:], ins)
	}

	// unseen byte - the rest of the key becomes a single chain
	b.children.set(key[0], newChain[V](bytes.Clone(key[1:]), ins.fresh(), true, nil))

	var zero V
	return zero, false
}

func (b *branch[V]) lookup(key []byte) *V {
	if len(key) == 0 {
		if b.hasVal {
			return &b.val
		}
		return nil
	}

	if child := b.children.get(key[0]); child != nil {
		return child.lookup(key[1:])
	}

	return nil
}
