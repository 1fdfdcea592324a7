// Package word defines the Word and Alphabet value types shared by
// package presentation and package knuthbendix: a word is a finite
// ordered sequence of letters, and an alphabet is a finite, duplicate-free,
// insertion-ordered sequence of letters of size at most 256. Byte encoding
// covers the overwhelming majority of presentations in practice — see
// DESIGN.md for the wide-alphabet trade-off.
//
// Grounded on core's ID-based addressing (core.Vertex.ID as an opaque,
// user-chosen identifier resolved to an internal index) and on
// builder/letters_spec.go's alphabet bookkeeping.
package word
