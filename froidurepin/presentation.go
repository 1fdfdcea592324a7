package froidurepin

import (
	"github.com/katalvlaran/semigroups/presentation"
	"github.com/katalvlaran/semigroups/word"
)

// Presentation returns a confluent presentation for the semigroup: one
// generator per entry in the generator list, byte-encoded 0..n-1, and
// one rule per discovered defining relation I*generator[J] = K rewritten
// as a word equality via each side's minimal factorisation. Enumeration
// must have finished; callers that have not already called Run should
// expect this to drive it to completion.
func (fp *FroidurePin[T, Ops]) Presentation() (*presentation.Presentation, error) {
	if !fp.Finished() {
		if err := fp.Run(); err != nil {
			return nil, err
		}
	}
	if len(fp.generators) > 256 {
		return nil, ErrOutOfRange
	}
	letters := make([]word.Letter, len(fp.generators))
	for j := range letters {
		letters[j] = word.Letter(j)
	}
	alphabet, err := word.NewAlphabet(letters...)
	if err != nil {
		return nil, err
	}
	p := presentation.New(alphabet)
	for _, rule := range fp.rules {
		lhsFact, err := fp.Factorisation(rule.I)
		if err != nil {
			return nil, err
		}
		lhs := make(word.Word, len(lhsFact)+1)
		for i, g := range lhsFact {
			lhs[i] = word.Letter(g)
		}
		lhs[len(lhsFact)] = word.Letter(rule.J)
		rhsFact, err := fp.Factorisation(rule.K)
		if err != nil {
			return nil, err
		}
		rhs := make(word.Word, len(rhsFact))
		for i, g := range rhsFact {
			rhs[i] = word.Letter(g)
		}
		if err := p.AddRule(lhs, rhs); err != nil {
			return nil, err
		}
	}

	return p, nil
}
