// Package semigroups computes with finitely generated semigroups,
// monoids, and their congruences: enumerating elements via the
// Froidure-Pin algorithm (package froidurepin), completing presentations
// into confluent rewriting systems via Knuth-Bendix (package
// knuthbendix, built on package rewriter), and deciding congruence
// membership by racing the algorithms capable of answering it (package
// congruence, built on package race). Package runner supplies the
// cooperatively-cancellable bounded-step execution model every
// long-running algorithm here shares; package uf, element, word, and
// presentation supply the shared data model described in their own doc
// comments.
//
// There is no dependency-light entry point at this package's root: pick
// the subpackage matching the computation you need.
package semigroups
