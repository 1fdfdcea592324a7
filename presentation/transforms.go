package presentation

import (
	"bytes"
	"sort"

	"github.com/katalvlaran/semigroups/word"
)

// AddIdentityRules adds, for every generator g other than id itself,
// the rules id*g = g and g*id = g. id must already be a member of the
// alphabet.
func (p *Presentation) AddIdentityRules(id word.Letter) error {
	if !p.alphabet.Contains(id) {
		return ErrInvalidLetter
	}
	for _, g := range p.alphabet.Letters() {
		if g == id {
			continue
		}
		if err := p.AddRule(word.Word{id, g}, word.Word{g}); err != nil {
			return err
		}
		if err := p.AddRule(word.Word{g, id}, word.Word{g}); err != nil {
			return err
		}
	}

	return nil
}

// AddZeroRules adds, for every generator g, the rules zero*g = zero and
// g*zero = zero.
func (p *Presentation) AddZeroRules(zero word.Letter) error {
	if !p.alphabet.Contains(zero) {
		return ErrInvalidLetter
	}
	for _, g := range p.alphabet.Letters() {
		if err := p.AddRule(word.Word{zero, g}, word.Word{zero}); err != nil {
			return err
		}
		if err := p.AddRule(word.Word{g, zero}, word.Word{zero}); err != nil {
			return err
		}
	}

	return nil
}

// AddInverseRules adds, for each (a, inv) pair, the rules a*inv = id and
// inv*a = id. Returns ErrInvalidInverses-shaped errors (surfaced as
// ErrInvalidLetter here, since the offending value is always a letter) if
// the map is not an involution, i.e. inverses[inverses[a]] != a for some a.
func (p *Presentation) AddInverseRules(inverses map[word.Letter]word.Letter, id word.Letter) error {
	if !p.alphabet.Contains(id) {
		return ErrInvalidLetter
	}
	for a, b := range inverses {
		if !p.alphabet.Contains(a) || !p.alphabet.Contains(b) {
			return ErrInvalidLetter
		}
		if other, ok := inverses[b]; !ok || other != a {
			return ErrInvalidLetter
		}
	}
	for a, b := range inverses {
		if err := p.AddRule(word.Word{a, b}, word.Word{id}); err != nil {
			return err
		}
		if err := p.AddRule(word.Word{b, a}, word.Word{id}); err != nil {
			return err
		}
	}

	return nil
}

// AddCommutesRules adds, for each pair (a, b), the rule b*a = a*b.
func (p *Presentation) AddCommutesRules(pairs [][2]word.Letter) error {
	for _, pr := range pairs {
		if !p.alphabet.Contains(pr[0]) || !p.alphabet.Contains(pr[1]) {
			return ErrInvalidLetter
		}
		if err := p.AddRule(word.Word{pr[1], pr[0]}, word.Word{pr[0], pr[1]}); err != nil {
			return err
		}
	}

	return nil
}

// AddIdempotentRules adds, for each generator in gens, the rule g*g = g.
func (p *Presentation) AddIdempotentRules(gens ...word.Letter) error {
	for _, g := range gens {
		if !p.alphabet.Contains(g) {
			return ErrInvalidLetter
		}
		if err := p.AddRule(word.Word{g, g}, word.Word{g}); err != nil {
			return err
		}
	}

	return nil
}

// AddInvolutionRules adds, for each (a, identity) pair, the rule a*a = id:
// a is its own inverse.
func (p *Presentation) AddInvolutionRules(id word.Letter, gens ...word.Letter) error {
	if !p.alphabet.Contains(id) {
		return ErrInvalidLetter
	}
	for _, g := range gens {
		if !p.alphabet.Contains(g) {
			return ErrInvalidLetter
		}
		if err := p.AddRule(word.Word{g, g}, word.Word{id}); err != nil {
			return err
		}
	}

	return nil
}

// AddCyclicConjugates adds, for the rule at index i (assumed of the form
// r = empty-word, i.e. a single-relator relation rhs == Word{}), every
// cyclic rotation of lhs as an additional rule equal to rhs. Used for
// single-relation presentations where the relator is only defined up to
// cyclic permutation.
func (p *Presentation) AddCyclicConjugates(i int) error {
	if i < 0 || i >= len(p.rules) {
		return ErrInvalidRule
	}
	r := p.rules[i]
	n := len(r.LHS)
	for shift := 1; shift < n; shift++ {
		rotated := make(word.Word, n)
		copy(rotated, r.LHS[shift:])
		copy(rotated[n-shift:], r.LHS[:shift])
		if err := p.AddRule(rotated, r.RHS); err != nil {
			return err
		}
	}

	return nil
}

// RemoveDuplicateRules drops rules that are exact repeats (same LHS and
// RHS) of an earlier rule, preserving the first occurrence's position.
func (p *Presentation) RemoveDuplicateRules() {
	seen := make(map[string]struct{}, len(p.rules))
	out := p.rules[:0:0]
	for _, r := range p.rules {
		key := string(r.LHS) + "\x00" + string(r.RHS)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	p.rules = out
}

// RemoveTrivialRules drops rules whose two sides are already identical
// (they assert nothing).
func (p *Presentation) RemoveTrivialRules() {
	out := p.rules[:0:0]
	for _, r := range p.rules {
		if !r.LHS.Equal(r.RHS) {
			out = append(out, r)
		}
	}
	p.rules = out
}

// RemoveRedundantGenerators repeatedly finds a rule whose LHS (or RHS) is
// a single letter g not occurring on the other side, substitutes that
// side's word for every occurrence of g in every other rule, drops the
// now-redundant rule, and removes g from the alphabet — a standard Tietze
// transformation. It returns the number of generators eliminated.
func (p *Presentation) RemoveRedundantGenerators() int {
	eliminated := 0
	for {
		idx, letter, replacement, ok := p.findSingleLetterRule()
		if !ok {
			return eliminated
		}
		p.rules = append(p.rules[:idx], p.rules[idx+1:]...)
		for i := range p.rules {
			p.rules[i].LHS = substituteLetter(p.rules[i].LHS, letter, replacement)
			p.rules[i].RHS = substituteLetter(p.rules[i].RHS, letter, replacement)
		}
		_ = p.RemoveGenerator(letter) // now unused by construction
		eliminated++
	}
}

func (p *Presentation) findSingleLetterRule() (idx int, letter word.Letter, replacement word.Word, ok bool) {
	for i, r := range p.rules {
		if len(r.LHS) == 1 && !containsLetter(r.RHS, r.LHS[0]) {
			return i, r.LHS[0], r.RHS, true
		}
		if len(r.RHS) == 1 && !containsLetter(r.LHS, r.RHS[0]) {
			return i, r.RHS[0], r.LHS, true
		}
	}

	return 0, 0, nil, false
}

func substituteLetter(w word.Word, l word.Letter, replacement word.Word) word.Word {
	out := make(word.Word, 0, len(w))
	for _, x := range w {
		if x == l {
			out = append(out, replacement...)
		} else {
			out = append(out, x)
		}
	}

	return out
}

// ReduceComplements merges rules that share an identical LHS: if rules
// (u, v1) and (u, v2) both occur, it keeps the shorter of v1/v2 (the
// first on a tie) as the canonical RHS v for u, and turns every other
// rule (u, v') into (v', v), rewriting the longer right side to the
// shorter without losing any relation (a cheap simplification ahead of
// full Knuth-Bendix completion).
func (p *Presentation) ReduceComplements() {
	canonical := make(map[string]word.Word)
	for _, r := range p.rules {
		key := string(r.LHS)
		if existing, ok := canonical[key]; !ok || len(r.RHS) < len(existing) {
			canonical[key] = r.RHS
		}
	}
	out := make([]Rule, 0, len(p.rules))
	seen := make(map[string]struct{}, len(p.rules))
	for _, r := range p.rules {
		key := string(r.LHS)
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			out = append(out, Rule{LHS: r.LHS, RHS: canonical[key]})
		}
		if !r.RHS.Equal(canonical[key]) {
			out = append(out, Rule{LHS: r.RHS, RHS: canonical[key]})
		}
	}
	p.rules = out
}

// SortRules orders rules lexicographically by (LHS, RHS), giving a
// deterministic rule order independent of insertion history — so two
// presentations built from the same rules in different order compare
// equal once both are sorted.
func (p *Presentation) SortRules() {
	sort.SliceStable(p.rules, func(i, j int) bool {
		c := bytes.Compare(p.rules[i].LHS, p.rules[j].LHS)
		if c != 0 {
			return c < 0
		}

		return bytes.Compare(p.rules[i].RHS, p.rules[j].RHS) < 0
	})
}

// SortEachRule ensures, within every rule, that the longer side (or,
// if equal length, the lexicographically greater one) is the LHS —
// matching the reduction-ordering convention that a rule's LHS is never
// smaller than its RHS.
func (p *Presentation) SortEachRule() {
	for i, r := range p.rules {
		if len(r.RHS) > len(r.LHS) || (len(r.RHS) == len(r.LHS) && bytes.Compare(r.RHS, r.LHS) > 0) {
			p.rules[i].LHS, p.rules[i].RHS = r.RHS, r.LHS
		}
	}
}

// Reverse reverses every letter sequence of every rule side in place —
// the standard trick for deriving a right-sided presentation from a
// left-sided one (or vice versa), since word reversal is an
// anti-isomorphism of the free monoid.
func (p *Presentation) Reverse() {
	for i := range p.rules {
		reverseInPlace(p.rules[i].LHS)
		reverseInPlace(p.rules[i].RHS)
	}
}

func reverseInPlace(w word.Word) {
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
}

// NormalizeAlphabet remaps the alphabet to sorted byte order, rewriting
// every rule accordingly, and returns the old->new letter mapping. There
// is no reserved sentinel letter, since callers may still want byte 0 as
// an ordinary letter.
func (p *Presentation) NormalizeAlphabet() map[word.Letter]word.Letter {
	old := append([]word.Letter(nil), p.alphabet.Letters()...)
	sorted := append([]word.Letter(nil), old...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mapping := make(map[word.Letter]word.Letter, len(old))
	for newIdx, l := range sorted {
		mapping[l] = word.Letter(newIdx)
	}
	p.remapLetters(mapping)
	na, _ := word.NewAlphabet(sortedRange(len(sorted))...)
	na.SetContainsEmptyWord(p.alphabet.ContainsEmptyWord())
	p.alphabet = na

	return mapping
}

func sortedRange(n int) []word.Letter {
	out := make([]word.Letter, n)
	for i := range out {
		out[i] = word.Letter(i)
	}

	return out
}

// ChangeAlphabet replaces the alphabet with newLetters, applied
// position-for-position against the current alphabet's insertion order
// (newLetters[i] replaces the i-th letter of the current alphabet
// everywhere it occurs). Returns ErrAlphabetSizeMismatch if the sizes
// differ.
func (p *Presentation) ChangeAlphabet(newLetters []word.Letter) error {
	old := p.alphabet.Letters()
	if len(newLetters) != len(old) {
		return ErrAlphabetSizeMismatch
	}
	na, err := word.NewAlphabet(newLetters...)
	if err != nil {
		return err
	}
	na.SetContainsEmptyWord(p.alphabet.ContainsEmptyWord())

	mapping := make(map[word.Letter]word.Letter, len(old))
	for i, l := range old {
		mapping[l] = newLetters[i]
	}
	p.remapLetters(mapping)
	p.alphabet = na

	return nil
}

func (p *Presentation) remapLetters(mapping map[word.Letter]word.Letter) {
	for i, r := range p.rules {
		p.rules[i].LHS = remapWord(r.LHS, mapping)
		p.rules[i].RHS = remapWord(r.RHS, mapping)
	}
}

func remapWord(w word.Word, mapping map[word.Letter]word.Letter) word.Word {
	out := make(word.Word, len(w))
	for i, l := range w {
		out[i] = mapping[l]
	}

	return out
}

// ReplaceSubword replaces every contiguous occurrence of old (non-empty)
// with replacement, in every rule side, left to right, non-overlapping.
func (p *Presentation) ReplaceSubword(old, replacement word.Word) {
	if len(old) == 0 {
		return
	}
	for i, r := range p.rules {
		p.rules[i].LHS = replaceSubword(r.LHS, old, replacement)
		p.rules[i].RHS = replaceSubword(r.RHS, old, replacement)
	}
}

func replaceSubword(w, old, replacement word.Word) word.Word {
	out := make(word.Word, 0, len(w))
	i := 0
	for i < len(w) {
		if i+len(old) <= len(w) && bytes.Equal(w[i:i+len(old)], old) {
			out = append(out, replacement...)
			i += len(old)
			continue
		}
		out = append(out, w[i])
		i++
	}

	return out
}

// ReplaceWord replaces any rule side that is exactly equal to old (the
// whole side, not a subword) with replacement.
func (p *Presentation) ReplaceWord(old, replacement word.Word) {
	for i, r := range p.rules {
		if r.LHS.Equal(old) {
			p.rules[i].LHS = replacement.Clone()
		}
		if r.RHS.Equal(old) {
			p.rules[i].RHS = replacement.Clone()
		}
	}
}

// ReplaceWordWithNewGenerator introduces a fresh generator g, adds the
// defining rule (w, {g}), and replaces every occurrence of w as a
// contiguous subword of an existing rule with {g}. It returns the new
// generator. Returns ErrNoUnusedLetter if the byte range is exhausted.
func (p *Presentation) ReplaceWordWithNewGenerator(w word.Word) (word.Letter, error) {
	g, ok := p.alphabet.FirstUnusedLetter()
	if !ok {
		return 0, ErrNoUnusedLetter
	}
	if err := p.AddGenerator(g); err != nil {
		return 0, err
	}
	p.ReplaceSubword(w, word.Word{g})
	if err := p.AddRule(w, word.Word{g}); err != nil {
		return 0, err
	}

	return g, nil
}

// LongestSubwordReducingLength scans every rule side for the subword of
// length >= 2, occurring at least twice across all rule sides, whose
// replacement by a single new generator would reduce total rule length
// the most (count*(L-1) symbols saved, minus L+1 for the new defining
// rule). It returns that subword, or nil if no replacement reduces the
// length. Which of several equally good subwords is returned is not
// defined.
func (p *Presentation) LongestSubwordReducingLength() word.Word {
	counts := make(map[string]int)
	for _, r := range p.rules {
		countSubwords(r.LHS, counts)
		countSubwords(r.RHS, counts)
	}

	var best string
	bestScore := 0
	for sub, count := range counts {
		if len(sub) < 2 || count < 2 {
			continue
		}
		// Replacing `count` occurrences of a length-L subword with a
		// single new letter saves count*(L-1) symbols, at a cost of one
		// new generator and one new defining rule of length L+1.
		score := count*(len(sub)-1) - (len(sub) + 1)
		if score > bestScore {
			bestScore = score
			best = sub
		}
	}
	if best == "" {
		return nil
	}

	return word.Word(best)
}

func countSubwords(w word.Word, counts map[string]int) {
	n := len(w)
	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			counts[string(w[i:i+l])]++
		}
	}
}

// GreedyReduceLength repeatedly applies ReplaceWordWithNewGenerator to the
// most length-reducing subword until none remains, returning the
// number of new generators introduced.
func (p *Presentation) GreedyReduceLength() int {
	introduced := 0
	for {
		sub := p.LongestSubwordReducingLength()
		if sub == nil {
			return introduced
		}
		if _, err := p.ReplaceWordWithNewGenerator(sub); err != nil {
			return introduced
		}
		introduced++
	}
}

// GreedyReduceLengthAndNumberOfGens runs GreedyReduceLength, then folds
// back in any generator RemoveRedundantGenerators can now eliminate (a
// new generator introduced purely to shorten one rule sometimes becomes
// single-letter-defined once other rules are simplified). Returns the net
// generator count change (introduced - eliminated).
func (p *Presentation) GreedyReduceLengthAndNumberOfGens() int {
	introduced := p.GreedyReduceLength()
	eliminated := p.RemoveRedundantGenerators()

	return introduced - eliminated
}

// StronglyCompress applies GreedyReduceLength to a single-relation
// presentation, the common special case where repeated factors of the
// one relator are worth compressing aggressively. Returns
// ErrNotSingleRelation if NumberOfRules() != 1.
func (p *Presentation) StronglyCompress() error {
	if len(p.rules) != 1 {
		return ErrNotSingleRelation
	}
	p.GreedyReduceLength()

	return nil
}

// ReduceTo2Generators attempts to re-express a single-relation
// presentation using only 2 generators, by repeatedly eliminating a
// generator that a RemoveRedundantGenerators pass can fold away. It is a
// best-effort transform: not every single-relation presentation admits a
// 2-generator re-presentation by substitution alone, so it may return
// with more than 2 generators remaining if no further Tietze elimination
// applies. Returns ErrNotSingleRelation if NumberOfRules() != 1.
func (p *Presentation) ReduceTo2Generators() error {
	if len(p.rules) != 1 {
		return ErrNotSingleRelation
	}
	for p.alphabet.Size() > 2 {
		if p.RemoveRedundantGenerators() == 0 {
			break
		}
	}

	return nil
}

// Balance re-expresses the presentation over a new alphabet in which each
// letter of remove is replaced, at its own position, by the letter of add
// at the same index, then delegates to ChangeAlphabet; remove and add
// must have equal length so the alphabet size is preserved, matching how
// ChangeAlphabet requires a size-preserving bijection.
func (p *Presentation) Balance(remove, add []word.Letter) error {
	if len(remove) != len(add) {
		return ErrAlphabetSizeMismatch
	}
	mapping := make(map[word.Letter]word.Letter, len(remove))
	for i, r := range remove {
		if !p.alphabet.Contains(r) {
			return ErrInvalidLetter
		}
		mapping[r] = add[i]
	}
	letters := append([]word.Letter(nil), p.alphabet.Letters()...)
	for i, l := range letters {
		if repl, ok := mapping[l]; ok {
			letters[i] = repl
		}
	}

	return p.ChangeAlphabet(letters)
}

// FirstUnusedLetter returns a letter not currently in the alphabet.
func (p *Presentation) FirstUnusedLetter() (word.Letter, bool) {
	return p.alphabet.FirstUnusedLetter()
}

// MakeSemigroup converts a monoid presentation (ContainsEmptyWord() ==
// true) into an equivalent semigroup presentation: it introduces an
// explicit identity generator e, adds e*g = g and g*e = g for every
// existing generator g, and disables the empty word. It is a no-op if
// ContainsEmptyWord() is already false. Returns the identity generator
// when one was introduced.
func (p *Presentation) MakeSemigroup() (word.Letter, bool, error) {
	if !p.ContainsEmptyWord() {
		return 0, false, nil
	}
	e, ok := p.alphabet.FirstUnusedLetter()
	if !ok {
		return 0, false, ErrNoUnusedLetter
	}
	if err := p.AddGenerator(e); err != nil {
		return 0, false, err
	}
	if err := p.AddIdentityRules(e); err != nil {
		return 0, false, err
	}
	p.SetContainsEmptyWord(false)

	return e, true, nil
}

// RedundantRule reports a structural (not semantic) suspicion that the
// rule at index i is implied by the others: it is trivial (LHS == RHS) or
// a byte-for-byte duplicate of another rule. Deciding true semantic
// redundancy in general is undecidable, so this check is intentionally
// conservative rather than a full confluence-based redundancy decision
// (that judgment belongs to knuthbendix.KnuthBendix once a confluent
// system is known).
func (p *Presentation) RedundantRule(i int) bool {
	if i < 0 || i >= len(p.rules) {
		return false
	}
	r := p.rules[i]
	if r.LHS.Equal(r.RHS) {
		return true
	}
	for j, other := range p.rules {
		if j != i && r.LHS.Equal(other.LHS) && r.RHS.Equal(other.RHS) {
			return true
		}
	}

	return false
}
