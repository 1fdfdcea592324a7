package knuthbendix

import (
	"bytes"
	"errors"

	"github.com/katalvlaran/semigroups/presentation"
	"github.com/katalvlaran/semigroups/rewriter"
	"github.com/katalvlaran/semigroups/runner"
	"github.com/katalvlaran/semigroups/word"
)

// Kind selects which congruence a KnuthBendix instance completes a
// presentation for: two-sided (the default, an ordinary semigroup
// presentation), or one of the one-sided variants. Left is handled by
// reversing every word on the way in and out; Right is completed exactly
// like TwoSided.
type Kind int

const (
	TwoSided Kind = iota
	Left
	Right
)

// OverlapPolicy controls how the overlap between two active rules is
// measured against Tuneables.MaxOverlapLength. Every policy still
// examines every valid overlap length between two active rules; only the
// measure used to decide whether an overlap is too large to pursue
// differs.
type OverlapPolicy int

const (
	// ABC measures an overlap by the length of the combined word ABC
	// (A and C the non-overlapping parts of each rule's LHS, B the
	// shared middle): len(a.LHS) + len(b.LHS) - k.
	ABC OverlapPolicy = iota
	// AB_BC measures an overlap by len(AB) + len(BC), i.e.
	// len(a.LHS) + len(b.LHS), independent of k.
	AB_BC
	// MAX_AB_BC measures an overlap by max(len(AB), len(BC)), i.e.
	// max(len(a.LHS), len(b.LHS)), independent of k.
	MAX_AB_BC
)

// Sentinel errors.
var (
	// ErrMaxRulesExceeded is returned by Step once the active rule count
	// would exceed MaxRules; the run stops without reaching confluence.
	ErrMaxRulesExceeded = errors.New("knuthbendix: max rules exceeded")
)

// Stats reports the rule-lifecycle counters spec's ambient reporting
// contract names: active, inactive, and total-ever-defined rules.
type Stats struct {
	ActiveRules   int
	InactiveRules int
	DefinedRules  int
}

// Tuneables bounds and biases the completion search.
type Tuneables struct {
	MaxRules                int
	MaxOverlapLength        int
	CheckConfluenceInterval int
	OverlapPolicy           OverlapPolicy
}

// DefaultTuneables returns the tuneables used when Init is not given any.
func DefaultTuneables() Tuneables {
	return Tuneables{
		MaxRules:                4096,
		MaxOverlapLength:        1 << 20,
		CheckConfluenceInterval: 4096,
		OverlapPolicy:           ABC,
	}
}

type overlapPair struct {
	a, b int // rule IDs
}

// KnuthBendix completes pres into a confluent rewriting system.
//
// Grounded on the Rewriter's active-rule arena (package rewriter) for
// rule storage, and driven through a runner.Runner the way
// froidurepin.FroidurePin is, so that Run/RunFor/RunUntil share one
// cancellation story across the module.
type KnuthBendix struct {
	kind Kind
	tune Tuneables

	rw *rewriter.Rewriter

	overlapWork []overlapPair
	definedSeen int // count of defined rules, for Stats

	runner *runner.Runner
}

// Init builds a KnuthBendix from pres, seeding one pending rule per
// presentation rule (reversed first if kind is Left).
func Init(kind Kind, pres *presentation.Presentation, tune ...Tuneables) *KnuthBendix {
	t := DefaultTuneables()
	if len(tune) > 0 {
		t = tune[0]
	}
	kb := &KnuthBendix{kind: kind, tune: t, rw: rewriter.New(), runner: runner.New()}
	for _, r := range pres.Rules() {
		lhs, rhs := kb.toInternal(r.LHS), kb.toInternal(r.RHS)
		kb.rw.AddPending(lhs, rhs)
	}

	return kb
}

// Runner exposes the underlying Runner.
func (kb *KnuthBendix) Runner() *runner.Runner {
	return kb.runner
}

// toInternal applies the Left-kind reversal, if any.
func (kb *KnuthBendix) toInternal(w word.Word) word.Word {
	if kb.kind != Left {
		return w.Clone()
	}

	return reverse(w)
}

// fromInternal undoes toInternal.
func (kb *KnuthBendix) fromInternal(w word.Word) word.Word {
	return kb.toInternal(w) // reversal is its own inverse
}

func reverse(w word.Word) word.Word {
	out := make(word.Word, len(w))
	for i, l := range w {
		out[len(w)-1-i] = l
	}

	return out
}

// Stats returns the current rule-lifecycle counters.
func (kb *KnuthBendix) Stats() Stats {
	return Stats{
		ActiveRules:   kb.rw.NumberOfActiveRules(),
		InactiveRules: kb.rw.NumberOfInactiveRules(),
		DefinedRules:  kb.definedSeen,
	}
}

// Confluent reports whether the last completed run reached a confluent
// rewriting system (no pending rules and no unexamined overlaps).
func (kb *KnuthBendix) Confluent() bool {
	c, known := kb.rw.ConfluenceKnown()

	return known && c
}

// shortlexLess orders by length first, then lexicographically, matching
// the "LHS strictly reduces" convention rules must satisfy.
func shortlexLess(a, b word.Word) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return bytes.Compare(a, b) < 0
}

// orient returns (lhs, rhs) such that lhs is the shortlex-greater of u, v
// (the side that always gets rewritten away).
func orient(u, v word.Word) (lhs, rhs word.Word) {
	if shortlexLess(u, v) {
		return v, u
	}

	return u, v
}
