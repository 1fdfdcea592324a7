// Package knuthbendix completes a Presentation into a confluent
// shortlex-ordered rewriting system via the Knuth-Bendix algorithm,
// answering equal_to/normal_form queries and exposing the resulting
// Gilman graph.
//
// Driven incrementally through package runner the same way package
// froidurepin is: one Step drains a bounded amount of pending work (here,
// one rule insertion or one overlap's critical pair) instead of running
// to completion in a single call, grounded on tsp.Solve's bounded-search
// style (tsp/solve.go) generalized from a fixed iteration budget to the
// Runner's cooperative-cancellation contract.
package knuthbendix
