// Package uf implements a disjoint-set (union-find) structure over the
// small-integer domain [0, n), with union-by-rank and path compression.
//
// Each slot packs a parent index and a rank into a single uint64 word
// (RankBits low bits for rank, the rest for the parent index), matching
// the memory-saving encoding described for union-find structures that
// back Kruskal-style MST construction (see prim_kruskal.Kruskal for the
// unpacked, map-based ancestor of this structure). Packing trades a
// little bit-twiddling for half the memory of two parallel slices.
package uf
