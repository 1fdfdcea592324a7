// Package congruence decides membership in a finitely generated
// congruence (left, right, or two-sided) by racing the algorithms
// capable of answering it, adopting whichever finishes first.
//
// Grounded on prim_kruskal.Compute's dispatch-by-kind switch
// (prim_kruskal/types.go) generalized from "pick one algorithm up front"
// to "start every algorithm applicable to this kind and race them" via
// package race, the same pattern package race's own doc comment credits
// prim_kruskal with.
package congruence
