package bursttrie

import "bytes"

// chain is a compressed run of key bytes with no branching.
//
// A chain always has a value, a child or both.
type chain[V any] struct {
	key    []byte
	val    V
	hasVal bool
	child  node[V]
}

func newChain[V any](key []byte, val V, hasVal bool, child node[V]) *chain[V] {
	if !hasVal && child == nil {
		panic("bursttrie: chain without a value and a child")
	}

	return &chain[V]{
		key:    key,
		val:    val,
		hasVal: hasVal,
		child:  child,
	}
}

// insert adds the key to the chain. A non-nil branch is returned when the chain
// burst at its first byte, the caller must replace the chain with that branch.
//
// Possible scenarios:
// ------------------
//
// 1) the key differs from the run at some byte (burst):
//
//	|....run....!.....|
//	            * diff byte
//	|....key....!...|
//
// 2) the key equals the run (replace the value)
//
// 3) the run is a prefix of the key (descend into the child):
//
//	|....run....|
//	|....key....|...rest...|
//
// 4) the key is a prefix of the run (split):
//
//	|....run....|...tail...|
//	|....key....|
func (c *chain[V]) insert(key []byte, ins *inserter[V]) (prev V, ok bool, burst *branch[V]) {
	if i := mismatch(key, c.key); i >= 0 {
		b := c.burst(i, key, ins)

		if i == 0 {
			// nothing in common - the branch replaces the chain
			return prev, false, b
		}

		// keep the common prefix in the chain
		var zero V

		c.key = c.key[:i:i]
		c.val, c.hasVal = zero, false
		c.child = b

		return prev, false, nil
	}

	switch num := len(c.key); {
	case len(key) == num:
		prev, ok = ins.swap(&c.val, &c.hasVal)

	case len(key) > num:
		if c.child != nil {
			prev, ok = insertAt(&c.child, key[num:], ins)
		} else {
			c.child = newChain[V](bytes.Clone(key[num:]), ins.fresh(), true, nil)
		}

	default:
		num = len(key)

		ins.trace("split", "at", num, "run", len(c.key))

		// move the run's tail with its value and continuation one level deeper
		tail := newChain(c.key[num:], c.val, c.hasVal, c.child)

		c.key = c.key[:num:num]
		c.val, c.hasVal = ins.fresh(), true
		c.child = tail
	}

	return prev, ok, nil
}

// burst creates a branch holding both the run's and the key's continuations
// right after the differing byte at i.
func (c *chain[V]) burst(i int, key []byte, ins *inserter[V]) *branch[V] {
	ins.trace("burst", "at", i, "run", len(c.key), "old", c.key[i], "new", key[i])

	b := &branch[V]{}

	b.children.set(c.key[i], newChain(c.key[i+1:], c.val, c.hasVal, c.child))
	b.children.set(key[i], newChain[V](bytes.Clone(key[i+1:]), ins.fresh(), true, nil))

	return b
}

func (c *chain[V]) lookup(key []byte) *V {
	if !bytes.HasPrefix(key, c.key) {
		return nil
	}

	if len(key) == len(c.key) {
		if c.hasVal {
			return &c.val
		}
		return nil
	}

	if c.child == nil {
		return nil
	}

	return c.child.lookup(key[len(c.key):])
}
