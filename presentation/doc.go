// Package presentation implements the Presentation value type: an
// alphabet plus an ordered list of defining rules, together with
// validation and Tietze-style transformation helpers.
//
// Grounded on builder's config/validators/options trio (builder/config.go,
// builder/validators.go, builder/options.go): Presentation plays the same
// role here that builder.Config plays there — a validated value object
// mutated through small, named, independently testable operations, each
// returning a typed sentinel error rather than panicking on bad input.
package presentation
