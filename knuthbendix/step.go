package knuthbendix

import (
	"github.com/katalvlaran/semigroups/runner"
	"github.com/katalvlaran/semigroups/word"
)

// Step implements runner.Algorithm: it drains one unit of pending work
// (a pending rule's insertion, or one queued overlap's critical pair),
// offering a progress record to the Runner's MaybeReport after every
// step (the Runner throttles it to its report interval). It
// reports finished == true exactly when both the pending queue and the
// overlap worklist are empty, at which point the rewriting system is
// confluent.
func (kb *KnuthBendix) Step(r *runner.Runner) (bool, error) {
	switch {
	case len(kb.rw.Pending()) > 0:
		if err := kb.processOnePending(); err != nil {
			return false, err
		}
	case len(kb.overlapWork) > 0:
		kb.processOneOverlap()
	default:
		kb.rw.SetConfluenceKnown(true)
		r.MaybeReport(runner.ReportFields{
			ActiveRules:   kb.rw.NumberOfActiveRules(),
			InactiveRules: kb.rw.NumberOfInactiveRules(),
			DefinedRules:  kb.definedSeen,
		})

		return true, nil
	}
	r.MaybeReport(runner.ReportFields{
		ActiveRules:   kb.rw.NumberOfActiveRules(),
		InactiveRules: kb.rw.NumberOfInactiveRules(),
		DefinedRules:  kb.definedSeen,
	})

	return false, nil
}

// processOnePending pops the next pending rule, reduces both sides under
// the current active set, discards it if it has become trivial,
// otherwise orients and activates it, simplifies any active rule it
// makes reducible, and enqueues its overlaps with every other active
// rule.
func (kb *KnuthBendix) processOnePending() error {
	p, ok := kb.rw.PopPending()
	if !ok {
		return nil
	}
	lhs := kb.rw.RewriteTrie(p.LHS)
	rhs := kb.rw.RewriteTrie(p.RHS)
	if word.Word(lhs).Equal(rhs) {
		return nil // trivial once reduced; nothing to add
	}
	lhs, rhs = orient(lhs, rhs)

	if kb.rw.NumberOfActiveRules() >= kb.tune.MaxRules {
		return ErrMaxRulesExceeded
	}

	newID := kb.rw.AddActiveRule(lhs, rhs)
	kb.definedSeen++
	kb.simplifyActiveRulesAgainst(newID)
	kb.enqueueOverlapsWith(newID)

	return nil
}

// simplifyActiveRulesAgainst deactivates and re-queues, as pending, every
// active rule (other than newID) whose LHS contains newID's LHS as a
// subword: the new rule makes it reducible, so it can no longer stand as
// an independent active rule.
func (kb *KnuthBendix) simplifyActiveRulesAgainst(newID int) {
	newRule, ok := kb.rw.RuleByID(newID)
	if !ok {
		return
	}
	for _, r := range kb.rw.ActiveRules() {
		if r.ID == newID {
			continue
		}
		if containsSubword(r.LHS, newRule.LHS) {
			kb.rw.DeactivateRule(r.ID)
			kb.rw.AddPending(r.LHS, r.RHS)
		}
	}
}

func containsSubword(w, sub word.Word) bool {
	if len(sub) == 0 || len(sub) > len(w) {
		return false
	}
	for pos := 0; pos+len(sub) <= len(w); pos++ {
		match := true
		for i, l := range sub {
			if w[pos+i] != l {
				match = false

				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// enqueueOverlapsWith schedules (newID, otherID) and (otherID, newID),
// for every currently active rule including newID itself, to be examined
// for critical pairs later — an explicit worklist standing in for the
// two-cursor overlap sweep of a streaming implementation; see DESIGN.md.
func (kb *KnuthBendix) enqueueOverlapsWith(newID int) {
	for _, r := range kb.rw.ActiveRules() {
		kb.overlapWork = append(kb.overlapWork, overlapPair{a: newID, b: r.ID})
		if r.ID != newID {
			kb.overlapWork = append(kb.overlapWork, overlapPair{a: r.ID, b: newID})
		}
	}
}

// processOneOverlap pops one queued overlap pair and, for every overlap
// length the configured OverlapPolicy allows, forms the critical pair
// and queues it as a pending rule; processOnePending later discards it
// if both sides reduce to the same word.
func (kb *KnuthBendix) processOneOverlap() {
	n := len(kb.overlapWork)
	if n == 0 {
		return
	}
	pair := kb.overlapWork[n-1]
	kb.overlapWork = kb.overlapWork[:n-1]

	a, aok := kb.rw.RuleByID(pair.a)
	b, bok := kb.rw.RuleByID(pair.b)
	if !aok || !bok {
		return // either rule was deactivated since this overlap was queued
	}

	maxK := len(a.LHS)
	if len(b.LHS) < maxK {
		maxK = len(b.LHS)
	}
	ks := kb.overlapLengths(maxK)
	for _, k := range ks {
		if !suffixEqualsPrefix(a.LHS, b.LHS, k) {
			continue
		}
		measure := overlapMeasure(kb.tune.OverlapPolicy, len(a.LHS), len(b.LHS), k)
		if measure > kb.tune.MaxOverlapLength {
			continue
		}
		w1 := concat(a.RHS, b.LHS[k:])
		w2 := concat(a.LHS[:len(a.LHS)-k], b.RHS)
		kb.rw.AddPending(w1, w2)
	}
}

// overlapLengths returns every candidate overlap length in [1, maxK].
// OverlapPolicy never changes which lengths are tried, only how each is
// measured against MaxOverlapLength; see overlapMeasure.
func (kb *KnuthBendix) overlapLengths(maxK int) []int {
	ks := make([]int, 0, maxK)
	for k := 1; k <= maxK; k++ {
		ks = append(ks, k)
	}

	return ks
}

// overlapMeasure computes the length used to compare an overlap of
// length k between two rules' left sides (of length lenA, lenB) against
// Tuneables.MaxOverlapLength, per the policy in effect.
func overlapMeasure(policy OverlapPolicy, lenA, lenB, k int) int {
	switch policy {
	case AB_BC:
		return lenA + lenB
	case MAX_AB_BC:
		if lenA > lenB {
			return lenA
		}

		return lenB
	default: // ABC
		return lenA + lenB - k
	}
}

func suffixEqualsPrefix(a, b word.Word, k int) bool {
	if k <= 0 || k > len(a) || k > len(b) {
		return false
	}
	for i := 0; i < k; i++ {
		if a[len(a)-k+i] != b[i] {
			return false
		}
	}

	return true
}

func concat(a, b word.Word) word.Word {
	out := make(word.Word, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}
