package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabetRejectsDuplicates(t *testing.T) {
	_, err := NewAlphabet('a', 'b', 'a')
	assert.ErrorIs(t, err, ErrDuplicateLetter)
}

func TestNewAlphabetRejectsOversize(t *testing.T) {
	letters := make([]Letter, 257)
	for i := range letters {
		letters[i] = Letter(i % 256)
	}
	// 257 byte letters cannot all be distinct (Letter(256) wraps to 0);
	// NewAlphabet checks the size before duplicates, so the size error wins.
	for i := range letters {
		letters[i] = Letter(i)
	}
	_, err := NewAlphabet(letters[:257]...)
	assert.ErrorIs(t, err, ErrAlphabetTooLarge)
}

func TestAlphabetIndexOfPreservesInsertionOrder(t *testing.T) {
	a, err := NewAlphabet('c', 'a', 'b')
	require.NoError(t, err)
	idx, ok := a.IndexOf('a')
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestValidateRejectsUnknownLetter(t *testing.T) {
	a, err := NewAlphabet('a', 'b')
	require.NoError(t, err)
	assert.NoError(t, a.Validate(Word("ab")))
	assert.ErrorIs(t, a.Validate(Word("ax")), ErrInvalidLetter)
}

func TestValidateEmptyWordPolicy(t *testing.T) {
	a, err := NewAlphabet('a')
	require.NoError(t, err)
	assert.ErrorIs(t, a.Validate(Word{}), ErrInvalidLetter)
	a.SetContainsEmptyWord(true)
	assert.NoError(t, a.Validate(Word{}))
}

func TestFirstUnusedLetter(t *testing.T) {
	a, err := NewAlphabet('a', 'b')
	require.NoError(t, err)
	l, ok := a.FirstUnusedLetter()
	require.True(t, ok)
	assert.False(t, a.Contains(l))
}

func TestWordEqualAndConcat(t *testing.T) {
	w := Word("ab")
	assert.True(t, w.Equal(Word("ab")))
	assert.False(t, w.Equal(Word("ba")))
	assert.Equal(t, Word("abcd"), Concat(Word("ab"), Word("cd")))
}
