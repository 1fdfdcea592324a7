// Package froidurepin implements the Froidure-Pin algorithm: given a
// finite set of generators of an Element type and a product operation,
// it enumerates every distinct element, discovering the left and right
// Cayley graphs and the defining relations collision reveals along the
// way.
//
// Grounded on core.Graph's "grow an adjacency structure by discovery"
// style (core/adjacency_list.go's AddVertex/AddEdge lazily extending
// maps) and on bfs's frontier/queue traversal loop (bfs/bfs.go's walker),
// generalized from "visit a known graph" to "discover the graph by
// applying Product".
package froidurepin
