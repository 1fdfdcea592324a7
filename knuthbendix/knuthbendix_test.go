package knuthbendix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semigroups/presentation"
	"github.com/katalvlaran/semigroups/word"
)

// newZ3 builds the presentation of the cyclic group of order 3 on one
// generator: a^3 = 1 (expressed with the empty word as identity), i.e.
// the free monoid on {a} modulo aaa = "".
func newZ3(t *testing.T) *presentation.Presentation {
	t.Helper()
	a, err := word.NewAlphabet('a')
	require.NoError(t, err)
	a.SetContainsEmptyWord(true)
	p := presentation.New(a)
	require.NoError(t, p.AddRule(word.Word("aaa"), word.Word{}))

	return p
}

func TestKnuthBendixCompletesCyclicGroup(t *testing.T) {
	kb := Init(TwoSided, newZ3(t))
	require.NoError(t, kb.Run())
	assert.True(t, kb.Confluent())

	n, status := kb.NumberOfClasses([]word.Letter{'a'})
	assert.Equal(t, ClassCountFinite, status)
	assert.Equal(t, 3, n) // {"", "a", "aa"}
}

func TestKnuthBendixNormalFormAndEqualTo(t *testing.T) {
	kb := Init(TwoSided, newZ3(t))
	require.NoError(t, kb.Run())

	eq, err := kb.EqualTo(word.Word("aaaa"), word.Word("a"))
	require.NoError(t, err)
	assert.True(t, eq)

	nf, err := kb.NormalForm(word.Word("aaaaaa"))
	require.NoError(t, err)
	assert.Equal(t, word.Word{}, nf)
}

func TestKnuthBendixBicyclicMonoidIsInfinite(t *testing.T) {
	// b a -> 1 (b a left inverse of a) with no relation forcing a b -> 1:
	// the bicyclic monoid, a classic infinite confluent example whose
	// completion (ba -> empty) terminates immediately but whose Gilman
	// graph is infinite.
	a, err := word.NewAlphabet('a', 'b')
	require.NoError(t, err)
	a.SetContainsEmptyWord(true)
	p := presentation.New(a)
	require.NoError(t, p.AddRule(word.Word("ba"), word.Word{}))

	kb := Init(TwoSided, p)
	require.NoError(t, kb.Run())
	assert.True(t, kb.Confluent())

	_, status := kb.NumberOfClasses([]word.Letter{'a', 'b'})
	assert.Equal(t, ClassCountInfinite, status, "the bicyclic monoid has infinitely many elements")
}

func TestKnuthBendixStatsCountRules(t *testing.T) {
	kb := Init(TwoSided, newZ3(t))
	require.NoError(t, kb.Run())
	stats := kb.Stats()
	assert.GreaterOrEqual(t, stats.DefinedRules, 1)
	assert.Equal(t, stats.ActiveRules, kb.rw.NumberOfActiveRules())
}

func TestKnuthBendixLeftKindReversesWords(t *testing.T) {
	kb := Init(Left, newZ3(t))
	require.NoError(t, kb.Run())
	eq, err := kb.EqualTo(word.Word("aaaa"), word.Word("a"))
	require.NoError(t, err)
	assert.True(t, eq)
}

// newS4 builds the standard Coxeter presentation of the symmetric group on
// 4 points: three involutions a, b, c (adjacent transpositions), braid
// relations between neighbors, and commutation between the non-neighbors.
func newS4(t *testing.T) *presentation.Presentation {
	t.Helper()
	alpha, err := word.NewAlphabet('a', 'b', 'c')
	require.NoError(t, err)
	alpha.SetContainsEmptyWord(true)
	p := presentation.New(alpha)
	require.NoError(t, p.AddRule(word.Word("aa"), word.Word{}))
	require.NoError(t, p.AddRule(word.Word("bb"), word.Word{}))
	require.NoError(t, p.AddRule(word.Word("cc"), word.Word{}))
	require.NoError(t, p.AddRule(word.Word("aba"), word.Word("bab")))
	require.NoError(t, p.AddRule(word.Word("bcb"), word.Word("cbc")))
	require.NoError(t, p.AddRule(word.Word("ac"), word.Word("ca")))

	return p
}

func TestKnuthBendixCompletesSymmetricGroupS4(t *testing.T) {
	kb := Init(TwoSided, newS4(t))
	require.NoError(t, kb.Run())
	assert.True(t, kb.Confluent())
	assert.Equal(t, 7, kb.Stats().ActiveRules)

	n, status := kb.NumberOfClasses([]word.Letter{'a', 'b', 'c'})
	assert.Equal(t, ClassCountFinite, status)
	assert.Equal(t, 24, n)
}

// newFreeAbelianRank2 presents the free abelian group of rank 2 on
// generators a, b and their formal inverses A, B: cancellation plus full
// commutation between every pair of generators.
func newFreeAbelianRank2(t *testing.T) *presentation.Presentation {
	t.Helper()
	alpha, err := word.NewAlphabet('a', 'A', 'b', 'B')
	require.NoError(t, err)
	alpha.SetContainsEmptyWord(true)
	p := presentation.New(alpha)
	require.NoError(t, p.AddRule(word.Word("aA"), word.Word{}))
	require.NoError(t, p.AddRule(word.Word("Aa"), word.Word{}))
	require.NoError(t, p.AddRule(word.Word("bB"), word.Word{}))
	require.NoError(t, p.AddRule(word.Word("Bb"), word.Word{}))
	require.NoError(t, p.AddRule(word.Word("ab"), word.Word("ba")))
	require.NoError(t, p.AddRule(word.Word("aB"), word.Word("Ba")))
	require.NoError(t, p.AddRule(word.Word("Ab"), word.Word("bA")))
	require.NoError(t, p.AddRule(word.Word("AB"), word.Word("BA")))

	return p
}

// countWordsUpToLength walks the Gilman graph nodes and counts the
// distinct irreducible words of length at most maxLen, memoized on
// (state, remaining) so a cyclic graph (an infinite semigroup) still
// yields a finite bounded count.
func countWordsUpToLength(nodes []GilmanGraphNode, maxLen int) int {
	memo := make(map[[2]int]int)
	var walk func(state, remaining int) int
	walk = func(state, remaining int) int {
		if remaining == 0 {
			return 1
		}
		key := [2]int{state, remaining}
		if v, ok := memo[key]; ok {
			return v
		}
		total := 1
		for _, target := range nodes[state].Transitions {
			total += walk(target, remaining-1)
		}
		memo[key] = total

		return total
	}

	return walk(0, maxLen)
}

func TestKnuthBendixFreeAbelianGroupRank2WordsUpToLength4(t *testing.T) {
	alphabet := []word.Letter{'a', 'A', 'b', 'B'}
	kb := Init(TwoSided, newFreeAbelianRank2(t))
	require.NoError(t, kb.Run())
	assert.True(t, kb.Confluent())
	assert.Equal(t, 8, kb.Stats().ActiveRules)

	_, status := kb.NumberOfClasses(alphabet)
	assert.Equal(t, ClassCountInfinite, status, "the free abelian group of rank 2 is infinite")

	nodes, complete := kb.GilmanGraph(alphabet)
	require.True(t, complete)
	assert.Equal(t, 41, countWordsUpToLength(nodes, 4))
}
