// Package race runs several independent algorithms concurrently against
// the same logical problem and adopts the result of whichever finishes
// first, killing and joining the rest.
//
// There is no goroutine-based production code to imitate directly in the
// teacher repo (it keeps its algorithms single-threaded
// and only uses goroutines in its own concurrency tests, e.g.
// core/concurrency_test.go), so this package follows the general
// WaitGroup-plus-channel shape used there, combined with the
// dispatch-by-kind style of prim_kruskal.Compute generalized from a
// switch statement to a concurrent race.
package race
