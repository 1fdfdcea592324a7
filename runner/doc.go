// Package runner provides a common base for long-running, possibly
// non-terminating algorithms: a thread-safe state machine, cooperative
// cancellation, and bounded-run helpers (run to completion, run for a
// duration, run until a predicate holds).
//
// The pattern mirrors how bfs.BFS and dfs.DFS thread a context.Context
// through their walkers for cooperative cancellation, generalized into a
// reusable state machine plus the time/node-budget style of tsp.Options
// (TimeLimit, NodeLimit), and the report-every/report-prefix pairing of
// libsemigroups's Reporter.
package runner
