package bursttrie

import "log/slog"

// KV represents a key-value pair.
type KV[V any] struct {
	Key []byte
	Val V
}

// Map is a burst trie map from byte strings to values of type V.
//
// The zero value is an empty map ready to use.
type Map[V any] struct {
	root branch[V]
	size int
	log  *slog.Logger
}

// New returns a new Map optionally initialized with the given key-value pairs.
// Later pairs overwrite earlier ones having the same key.
func New[V any](init ...KV[V]) *Map[V] {
	m := &Map[V]{}

	for _, kv := range init {
		m.Set(kv.Key, kv.Val)
	}

	return m
}

// SetLogger enables debug records of burst and split events. A nil logger turns
// them off.
func (m *Map[V]) SetLogger(log *slog.Logger) {
	m.log = log
}

// Len returns the number of keys in the map.
func (m *Map[V]) Len() int {
	return m.size
}

func (m *Map[V]) Empty() bool {
	return m.size == 0
}

// Get returns a value associated with the key.
func (m *Map[V]) Get(key []byte) (V, bool) {
	if ref := m.root.lookup(key); ref != nil {
		return *ref, true
	}

	var zero V
	return zero, false
}

// Ref returns a reference to the value associated with the key or nil if there is
// none. The reference is only valid until the next Set or Replace.
func (m *Map[V]) Ref(key []byte) *V {
	return m.root.lookup(key)
}

// Set associates a value with the key. Returns the previous value (if any).
func (m *Map[V]) Set(key []byte, val V) (V, bool) {
	return m.Replace(key, func(V, bool) V { return val })
}

// Replace applies a func to a previous value of the key and stores the result.
// Returns the previous value (if any).
//
// The key bytes are copied, the caller is free to reuse the slice.
func (m *Map[V]) Replace(key []byte, fn func(prev V, ok bool) V) (V, bool) {
	ins := inserter[V]{fn: fn, log: m.log}

	prev, ok := m.root.insert(key, &ins)
	if !ok {
		m.size++
	}

	return prev, ok
}

func (m *Map[V]) GetString(key string) (V, bool) {
	return m.Get([]byte(key))
}

func (m *Map[V]) SetString(key string, val V) (V, bool) {
	return m.Set([]byte(key), val)
}
