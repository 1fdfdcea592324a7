// Package rewriter maintains a set of word-rewriting rules (LHS -> RHS,
// LHS strictly greater under some reduction order) and reduces words to
// normal form by repeatedly applying the first applicable rule.
//
// Active rules live in an intrusive doubly-linked list over a slice
// arena, the way dfs's dfsWalker threads Parent/Depth maps alongside a
// plain slice rather than building a pointer-heavy tree (dfs/dfs.go);
// deactivated rules return to a free list instead of shrinking the
// arena, so rule IDs remain stable across a run.
package rewriter
