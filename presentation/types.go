package presentation

import (
	"errors"

	"github.com/katalvlaran/semigroups/word"
)

// Sentinel errors for Presentation construction and mutation. Every error
// here is returned at the API boundary; internal recursion inside this
// package uses the *_NoChecks variants where one is documented.
var (
	// ErrNilPresentation indicates a nil *Presentation receiver where one
	// was required.
	ErrNilPresentation = errors.New("presentation: nil presentation")

	// ErrInvalidLetter indicates a letter used in a rule or generator
	// operation is not a member of the alphabet.
	ErrInvalidLetter = errors.New("presentation: invalid letter")

	// ErrInvalidRule indicates an empty rule side when the empty word is
	// not permitted, or some other shape violation.
	ErrInvalidRule = errors.New("presentation: invalid rule")

	// ErrAlreadyPresent indicates AddGenerator was called with a letter
	// already in the alphabet.
	ErrAlreadyPresent = errors.New("presentation: generator already present")

	// ErrGeneratorInUse indicates RemoveGenerator was asked to remove a
	// letter that still occurs in some rule.
	ErrGeneratorInUse = errors.New("presentation: generator still occurs in a rule")

	// ErrNotSingleRelation indicates a single-relation-only transform
	// (StronglyCompress, ReduceTo2Generators) was called on a presentation
	// that does not have exactly one rule.
	ErrNotSingleRelation = errors.New("presentation: transform requires exactly one rule")

	// ErrAlphabetSizeMismatch indicates ChangeAlphabet was given a
	// replacement alphabet of different size to the current one.
	ErrAlphabetSizeMismatch = errors.New("presentation: replacement alphabet size mismatch")

	// ErrNoUnusedLetter indicates a transform needed a fresh letter but
	// the byte range [0,256) is already exhausted.
	ErrNoUnusedLetter = errors.New("presentation: no unused letter available")
)

// Rule is one defining relation, a pair of words asserted equal.
type Rule struct {
	LHS word.Word
	RHS word.Word
}

// Presentation is an alphabet together with an ordered list of rules. The
// zero value is not usable; construct one with New.
type Presentation struct {
	alphabet *word.Alphabet
	rules    []Rule
}

// New constructs an empty Presentation over alphabet. A nil alphabet is
// replaced with an empty one.
func New(alphabet *word.Alphabet) *Presentation {
	if alphabet == nil {
		alphabet, _ = word.NewAlphabet()
	}

	return &Presentation{alphabet: alphabet}
}

// Alphabet returns the presentation's alphabet.
func (p *Presentation) Alphabet() *word.Alphabet {
	return p.alphabet
}

// Rules returns the presentation's rules in insertion order. The returned
// slice must not be mutated by the caller; use AddRule/ReplaceSubword/etc.
func (p *Presentation) Rules() []Rule {
	return p.rules
}

// NumberOfRules returns len(Rules()).
func (p *Presentation) NumberOfRules() int {
	return len(p.rules)
}

// ContainsEmptyWord reports whether the empty word is a permitted member
// of words validated against this presentation.
func (p *Presentation) ContainsEmptyWord() bool {
	return p.alphabet.ContainsEmptyWord()
}

// SetContainsEmptyWord toggles whether the empty word is permitted.
func (p *Presentation) SetContainsEmptyWord(v bool) {
	p.alphabet.SetContainsEmptyWord(v)
}

// AddRule validates and appends the rule (lhs, rhs). Returns ErrInvalidRule
// if either side contains a letter outside the alphabet, or is empty while
// the empty word is not permitted.
func (p *Presentation) AddRule(lhs, rhs word.Word) error {
	if err := p.alphabet.Validate(lhs); err != nil {
		return ErrInvalidRule
	}
	if err := p.alphabet.Validate(rhs); err != nil {
		return ErrInvalidRule
	}
	p.rules = append(p.rules, Rule{LHS: lhs.Clone(), RHS: rhs.Clone()})

	return nil
}

// AddGenerator appends a new letter to the alphabet. Returns
// ErrAlreadyPresent if l is already a member.
func (p *Presentation) AddGenerator(l word.Letter) error {
	if p.alphabet.Contains(l) {
		return ErrAlreadyPresent
	}
	letters := append(append([]word.Letter(nil), p.alphabet.Letters()...), l)
	na, err := word.NewAlphabet(letters...)
	if err != nil {
		return err
	}
	na.SetContainsEmptyWord(p.alphabet.ContainsEmptyWord())
	p.alphabet = na

	return nil
}

// RemoveGenerator removes l from the alphabet. Returns ErrInvalidLetter if
// l is not a member, or ErrGeneratorInUse if l occurs in any rule.
func (p *Presentation) RemoveGenerator(l word.Letter) error {
	if !p.alphabet.Contains(l) {
		return ErrInvalidLetter
	}
	for _, r := range p.rules {
		if containsLetter(r.LHS, l) || containsLetter(r.RHS, l) {
			return ErrGeneratorInUse
		}
	}
	letters := make([]word.Letter, 0, p.alphabet.Size()-1)
	for _, x := range p.alphabet.Letters() {
		if x != l {
			letters = append(letters, x)
		}
	}
	na, err := word.NewAlphabet(letters...)
	if err != nil {
		return err
	}
	na.SetContainsEmptyWord(p.alphabet.ContainsEmptyWord())
	p.alphabet = na

	return nil
}

func containsLetter(w word.Word, l word.Letter) bool {
	for _, x := range w {
		if x == l {
			return true
		}
	}

	return false
}

// Validate checks that every letter occurring in any rule belongs to the
// alphabet, and that no side is empty unless the empty word is permitted.
func (p *Presentation) Validate() error {
	for _, r := range p.rules {
		if err := p.alphabet.Validate(r.LHS); err != nil {
			return ErrInvalidRule
		}
		if err := p.alphabet.Validate(r.RHS); err != nil {
			return ErrInvalidRule
		}
	}

	return nil
}

// Clone returns a deep copy of p.
func (p *Presentation) Clone() *Presentation {
	na, _ := word.NewAlphabet(p.alphabet.Letters()...)
	na.SetContainsEmptyWord(p.alphabet.ContainsEmptyWord())
	c := &Presentation{alphabet: na, rules: make([]Rule, len(p.rules))}
	for i, r := range p.rules {
		c.rules[i] = Rule{LHS: r.LHS.Clone(), RHS: r.RHS.Clone()}
	}

	return c
}
