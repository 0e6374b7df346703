package bursttrie

import (
	"fmt"
	"log/slog"
)

// node is either a *branch[V] or a *chain[V].
type node[V any] interface {
	lookup(key []byte) *V
}

// inserter carries a single insert operation down the trie.
type inserter[V any] struct {
	fn  func(prev V, ok bool) V
	log *slog.Logger
}

// swap stores a new value into the given slot and returns the previous one.
func (ins *inserter[V]) swap(val *V, has *bool) (V, bool) {
	prev, ok := *val, *has
	*val, *has = ins.fn(prev, ok), true
	return prev, ok
}

// fresh returns a value for a key that did not exist before.
func (ins *inserter[V]) fresh() V {
	var zero V
	return ins.fn(zero, false)
}

func (ins *inserter[V]) trace(msg string, args ...any) {
	if ins.log != nil {
		ins.log.Debug(msg, args...)
	}
}

// insertAt inserts the key into a node stored at the slot. If the node is a chain
// that had to burst at its very first byte the slot gets the replacing branch.
func insertAt[V any](slot *node[V], key []byte, ins *inserter[V]) (V, bool) {
	switch n := (*slot).(type) {
	case *branch[V]:
		return n.insert(key, ins)

	case *chain[V]:
		prev, ok, burst := n.insert(key, ins)
		if burst != nil {
			*slot = burst
		}
		return prev, ok

	default:
		panic(fmt.Sprintf("bursttrie: unexpected node type %T", n))
	}
}

// mismatch returns the first index within the common length where a and b differ
// or -1 if one of them is a prefix of the other.
func mismatch(a, b []byte) int {
	num := len(a)
	if len(b) < num {
		num = len(b)
	}

	for i := 0; i < num; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return -1
}
