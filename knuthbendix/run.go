package knuthbendix

import (
	"time"

	"github.com/katalvlaran/semigroups/word"
)

// Run drives completion until the rewriting system is confluent or
// Tuneables.MaxRules is exceeded.
func (kb *KnuthBendix) Run() error {
	return kb.runner.Run(kb)
}

// RunFor drives completion for at most d.
func (kb *KnuthBendix) RunFor(d time.Duration) error {
	return kb.runner.RunFor(kb, d)
}

// RunUntil drives completion until pred returns true or it finishes. The
// parameter type is the bare func() bool so that *KnuthBendix satisfies
// race.Competitor without an adapter.
func (kb *KnuthBendix) RunUntil(pred func() bool) error {
	return kb.runner.RunUntil(kb, pred)
}

// Finished reports whether the rewriting system reached confluence,
// satisfying race.Competitor.
func (kb *KnuthBendix) Finished() bool {
	return kb.runner.Finished()
}

// Kill cooperatively cancels an in-progress run, satisfying
// race.Competitor.
func (kb *KnuthBendix) Kill() {
	kb.runner.Kill()
}

// NormalForm reduces w to its (unique, once confluent) normal form.
// Callers that have not already called Run should expect this to drive
// completion first.
func (kb *KnuthBendix) NormalForm(w word.Word) (word.Word, error) {
	if !kb.Confluent() {
		if err := kb.Run(); err != nil {
			return nil, err
		}
	}

	return kb.fromInternal(kb.rw.RewriteTrie(kb.toInternal(w))), nil
}

// EqualTo reports whether u and v denote the same element of the
// presented semigroup: their normal forms agree.
func (kb *KnuthBendix) EqualTo(u, v word.Word) (bool, error) {
	nu, err := kb.NormalForm(u)
	if err != nil {
		return false, err
	}
	nv, err := kb.NormalForm(v)
	if err != nil {
		return false, err
	}

	return nu.Equal(nv), nil
}
