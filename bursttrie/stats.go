package bursttrie

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by all errors reported by Verify.
var ErrCorrupt = errors.New("bursttrie: corrupt structure")

// Stats describes the shape of a Map.
type Stats struct {
	Branches int // number of branch nodes including the root
	Chains   int // number of chain nodes
	Values   int // number of nodes holding a value
	Bytes    int // total length of all chain runs
	Depth    int // the longest root-to-node path in nodes
}

// Stats walks the whole map and returns its shape.
func (m *Map[V]) Stats() Stats {
	var s Stats
	_ = walk[V](&m.root, &s, 1)
	return s
}

// Verify walks the whole map and checks its structural invariants.
func (m *Map[V]) Verify() error {
	var s Stats

	if err := walk[V](&m.root, &s, 1); err != nil {
		return err
	}

	if s.Values != m.size {
		return fmt.Errorf("%w: %d values reachable, size is %d", ErrCorrupt, s.Values, m.size)
	}

	return nil
}

func walk[V any](n node[V], s *Stats, depth int) error {
	if depth > s.Depth {
		s.Depth = depth
	}

	switch n := n.(type) {
	case *branch[V]:
		s.Branches++
		if n.hasVal {
			s.Values++
		}

		if cnt := n.children.count(); cnt != n.children.len() {
			return fmt.Errorf("%w: branch bitmap has %d bytes, %d children stored",
				ErrCorrupt, cnt, n.children.len())
		}

		var err error

		n.children.each(func(b byte, child node[V]) bool {
			if child == nil {
				err = fmt.Errorf("%w: branch has a nil child at %q", ErrCorrupt, b)
				return false
			}
			err = walk(child, s, depth+1)
			return err == nil
		})

		return err

	case *chain[V]:
		s.Chains++
		s.Bytes += len(n.key)
		if n.hasVal {
			s.Values++
		}

		if !n.hasVal && n.child == nil {
			return fmt.Errorf("%w: chain %q has neither a value nor a child", ErrCorrupt, n.key)
		}

		if n.child != nil {
			return walk(n.child, s, depth+1)
		}

		return nil

	default:
		return fmt.Errorf("%w: unexpected node type %T", ErrCorrupt, n)
	}
}
