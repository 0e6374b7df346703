// Package bursttrie defines an in-memory map keyed by arbitrary byte strings and
// implemented as a burst trie.
//
// A burst trie consists of two kinds of nodes:
//
//   - branch - dispatches on a single key byte (up to 256 children kept in ascending
//     byte order) and optionally holds the value of a key ending right there;
//   - chain  - holds a compressed run of key bytes with no branching, an optional value
//     of a key ending at the end of the run and an optional single continuation.
//
// The root is always a branch. Its own value belongs to the empty key.
//
// Inserting a key that diverges from a chain somewhere inside its run "bursts" the
// chain: the common part stays in the chain (or vanishes if there is none) and a new
// branch takes over at the differing byte:
//
//	before:  chain"abcd"=1
//	insert:  "abxy"=2
//
//	after:   chain"ab" -> branch -+- 'c' -> chain"d"=1
//	                              `- 'x' -> chain"y"=2
//
// A key ending strictly inside a run splits the chain instead:
//
//	before:  chain"abcd"=1
//	insert:  "ab"=2
//
//	after:   chain"ab"=2 -> chain"cd"=1
//
// A Map is not safe for concurrent use. Callers wanting concurrent access must
// guard the whole Map with their own lock.
package bursttrie
