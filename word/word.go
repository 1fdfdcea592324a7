package word

import "errors"

// MaxAlphabetSize is the largest number of distinct letters a byte-encoded
// Alphabet may hold.
const MaxAlphabetSize = 256

// Sentinel errors for alphabet and word validation.
var (
	// ErrDuplicateLetter indicates an alphabet was constructed with a
	// repeated letter.
	ErrDuplicateLetter = errors.New("word: duplicate letter in alphabet")

	// ErrAlphabetTooLarge indicates more than MaxAlphabetSize distinct
	// letters were supplied.
	ErrAlphabetTooLarge = errors.New("word: alphabet exceeds maximum size")

	// ErrInvalidLetter indicates a letter used in a word does not belong
	// to the alphabet it is being validated against.
	ErrInvalidLetter = errors.New("word: letter not in alphabet")
)

// Letter is a single symbol of an Alphabet.
type Letter = byte

// Word is a finite ordered sequence of letters.
type Word []Letter

// Equal reports whether w and other are the same sequence of letters.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	c := make(Word, len(w))
	copy(c, w)

	return c
}

// Concat returns a new Word equal to w followed by other.
func Concat(w, other Word) Word {
	out := make(Word, 0, len(w)+len(other))
	out = append(out, w...)
	out = append(out, other...)

	return out
}

// Alphabet is a finite, duplicate-free, insertion-ordered sequence of
// letters, optionally including the empty word as a member of the
// semigroup/monoid it will help present.
type Alphabet struct {
	letters       []Letter
	index         map[Letter]int
	containsEmpty bool
}

// NewAlphabet validates and constructs an Alphabet from letters, in the
// order given. Returns ErrDuplicateLetter or ErrAlphabetTooLarge.
func NewAlphabet(letters ...Letter) (*Alphabet, error) {
	if len(letters) > MaxAlphabetSize {
		return nil, ErrAlphabetTooLarge
	}
	idx := make(map[Letter]int, len(letters))
	for i, l := range letters {
		if _, dup := idx[l]; dup {
			return nil, ErrDuplicateLetter
		}
		idx[l] = i
	}

	return &Alphabet{
		letters: append([]Letter(nil), letters...),
		index:   idx,
	}, nil
}

// SetContainsEmptyWord toggles whether the empty word is a legal member of
// words validated against this alphabet.
func (a *Alphabet) SetContainsEmptyWord(v bool) {
	a.containsEmpty = v
}

// ContainsEmptyWord reports whether the empty word is permitted.
func (a *Alphabet) ContainsEmptyWord() bool {
	return a.containsEmpty
}

// Size returns the number of distinct letters.
func (a *Alphabet) Size() int {
	return len(a.letters)
}

// Letters returns the alphabet's letters in insertion order. The returned
// slice must not be mutated by the caller.
func (a *Alphabet) Letters() []Letter {
	return a.letters
}

// Contains reports whether l belongs to the alphabet.
func (a *Alphabet) Contains(l Letter) bool {
	_, ok := a.index[l]

	return ok
}

// IndexOf returns l's position in insertion order, or (-1, false) if l is
// not a member.
func (a *Alphabet) IndexOf(l Letter) (int, bool) {
	i, ok := a.index[l]
	if !ok {
		return -1, false
	}

	return i, ok
}

// Validate checks that every letter of w belongs to the alphabet, and that
// w is non-empty unless ContainsEmptyWord() is true. Returns the bare
// ErrInvalidLetter sentinel in both cases, without naming the letter.
func (a *Alphabet) Validate(w Word) error {
	if len(w) == 0 && !a.containsEmpty {
		return ErrInvalidLetter
	}
	for _, l := range w {
		if !a.Contains(l) {
			return ErrInvalidLetter
		}
	}

	return nil
}

// FirstUnusedLetter returns a Letter not present in the alphabet, for use
// by transforms that need to introduce a fresh generator. Returns
// (0, false) if the alphabet already spans the full byte range.
func (a *Alphabet) FirstUnusedLetter() (Letter, bool) {
	for l := 0; l < 256; l++ {
		if !a.Contains(Letter(l)) {
			return Letter(l), true
		}
	}

	return 0, false
}
