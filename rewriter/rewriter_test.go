package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semigroups/word"
)

func TestAddActiveRuleAndDeactivateRecyclesSlot(t *testing.T) {
	rw := New()
	id1 := rw.AddActiveRule(word.Word("ab"), word.Word("a"))
	assert.Equal(t, 1, rw.NumberOfActiveRules())
	rw.DeactivateRule(id1)
	assert.Equal(t, 0, rw.NumberOfActiveRules())
	assert.Equal(t, 1, rw.NumberOfInactiveRules())

	id2 := rw.AddActiveRule(word.Word("ba"), word.Word("b"))
	assert.Equal(t, 1, rw.NumberOfActiveRules())
	assert.Equal(t, 0, rw.NumberOfInactiveRules())
	assert.NotEqual(t, id1, id2)
}

func TestPendingQueueFIFO(t *testing.T) {
	rw := New()
	rw.AddPending(word.Word("a"), word.Word("b"))
	rw.AddPending(word.Word("c"), word.Word("d"))
	r, ok := rw.PopPending()
	require.True(t, ok)
	assert.Equal(t, word.Word("a"), r.LHS)
	_, ok = rw.PopPending()
	require.True(t, ok)
	_, ok = rw.PopPending()
	assert.False(t, ok)
}

func TestRewriteFromLeftReducesToNormalForm(t *testing.T) {
	rw := New()
	rw.AddActiveRule(word.Word("aa"), word.Word("a"))
	rw.AddActiveRule(word.Word("ab"), word.Word("b"))
	got := rw.RewriteFromLeft(word.Word("aaab"))
	assert.Equal(t, word.Word("b"), got)
}

func TestRewriteTrieAgreesWithRewriteFromLeft(t *testing.T) {
	rw := New()
	rw.AddActiveRule(word.Word("aa"), word.Word("a"))
	rw.AddActiveRule(word.Word("ab"), word.Word("b"))
	rw.AddActiveRule(word.Word("ba"), word.Word("a"))

	inputs := []word.Word{
		word.Word("aaab"),
		word.Word("babababa"),
		word.Word("bbbb"),
		word.Word(""),
		word.Word("aabbaabb"),
	}
	for _, in := range inputs {
		want := rw.RewriteFromLeft(in)
		got := rw.RewriteTrie(in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestAddingRuleInvalidatesConfluenceCache(t *testing.T) {
	rw := New()
	rw.SetConfluenceKnown(true)
	c, known := rw.ConfluenceKnown()
	require.True(t, known)
	assert.True(t, c)

	rw.AddActiveRule(word.Word("a"), word.Word("b"))
	_, known = rw.ConfluenceKnown()
	assert.False(t, known)
}
