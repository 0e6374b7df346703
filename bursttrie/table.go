package bursttrie

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// table is an ordered byte -> node mapping of a branch.
//
// Every present byte has its bit set in the 256-bit bitmap, the nodes slice is dense
// and sorted by byte, so a node index equals the number of set bits below its byte.
type table[V any] struct {
	bitmap [4]uint64 // 256 bits representing 2**8 entries
	nodes  []node[V]
}

// index returns a position of the byte in the nodes slice and whether it is present.
func (t *table[V]) index(b byte) (int, bool) {
	var (
		ofs = b >> 6
		bit = uint64(1) << (b & 0x3F) // the lowest 6 bits (2**6 == 64)
		bmp = t.bitmap[ofs]
		cnt = popcount.Count(bmp & (bit - 1))
	)

	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(t.bitmap[j])
	}

	return int(cnt), bmp&bit != 0
}

func (t *table[V]) get(b byte) node[V] {
	if idx, ok := t.index(b); ok {
		return t.nodes[idx]
	}
	return nil
}

// slot returns an address of the node stored at the byte (nil if there is none).
// The address is only valid until the next set of a new byte.
func (t *table[V]) slot(b byte) *node[V] {
	if idx, ok := t.index(b); ok {
		return &t.nodes[idx]
	}
	return nil
}

// set stores the node at the byte replacing a previous one if any.
func (t *table[V]) set(b byte, n node[V]) {
	idx, ok := t.index(b)
	if ok {
		t.nodes[idx] = n
		return
	}

	t.bitmap[b>>6] |= uint64(1) << (b & 0x3F)

	num := len(t.nodes)
	t.nodes = append(t.nodes, nil)
	copy(t.nodes[idx+1:], t.nodes[idx:num])
	t.nodes[idx] = n
}

func (t *table[V]) len() int {
	return len(t.nodes)
}

// count returns the number of bytes marked in the bitmap.
func (t *table[V]) count() int {
	var cnt uint64
	for _, bmp := range t.bitmap {
		cnt += popcount.Count(bmp)
	}
	return int(cnt)
}

// each calls fn for every stored node in ascending byte order until fn returns false.
func (t *table[V]) each(fn func(b byte, n node[V]) bool) bool {
	idx := 0

	for ofs, bmp := range t.bitmap {
		for ; bmp != 0 && idx < len(t.nodes); bmp &= bmp - 1 {
			b := byte(ofs<<6 | bits.TrailingZeros64(bmp))
			if !fn(b, t.nodes[idx]) {
				return false
			}
			idx++
		}
	}

	return true
}
