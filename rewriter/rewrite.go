package rewriter

import (
	"github.com/katalvlaran/semigroups/word"
)

// trieNode is a plain (non-Aho-Corasick) prefix trie node over rule LHS
// words: no failure links, so matching restarts from the trie root after
// each rewrite. Simpler than a full Aho-Corasick automaton but exercises
// the same data shape, and RewriteFromLeft's linear scan stands as the
// correctness oracle it must agree with.
type trieNode struct {
	children map[word.Letter]*trieNode
	ruleID   int // sentinel if this node is not the end of some rule's LHS
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[word.Letter]*trieNode), ruleID: sentinel}
}

func (rw *Rewriter) rebuildTrie() {
	root := newTrieNode()
	for i := rw.head; i != sentinel; i = rw.arena[i].next {
		r := rw.arena[i].rule
		node := root
		for _, l := range r.LHS {
			child, ok := node.children[l]
			if !ok {
				child = newTrieNode()
				node.children[l] = child
			}
			node = child
		}
		node.ruleID = r.ID
	}
	rw.trie = root
	rw.trieDirty = false
}

// RewriteFromLeft reduces w to normal form by a direct linear scan: at
// each position, check every active rule's LHS for a match, applying the
// one with the shortest LHS at the leftmost matching position and
// restarting from position 0. This is
// the reference implementation RewriteTrie's result must always agree
// with.
func (rw *Rewriter) RewriteFromLeft(w word.Word) word.Word {
	cur := w.Clone()
	for {
		matched := false
		for pos := 0; pos <= len(cur) && !matched; pos++ {
			best := sentinel
			for i := rw.head; i != sentinel; i = rw.arena[i].next {
				r := rw.arena[i].rule
				if !hasPrefixAt(cur, pos, r.LHS) {
					continue
				}
				if best == sentinel || len(r.LHS) < len(rw.arena[best].rule.LHS) {
					best = i
				}
			}
			if best != sentinel {
				r := rw.arena[best].rule
				cur = replaceAt(cur, pos, len(r.LHS), r.RHS)
				matched = true
			}
		}
		if !matched {
			return cur
		}
	}
}

// RewriteTrie reduces w to normal form using the active rule set's
// prefix trie to find, at each scan position, the single rule (if any)
// whose LHS matches there, rebuilding the trie first if the rule set has
// changed since the last rebuild.
func (rw *Rewriter) RewriteTrie(w word.Word) word.Word {
	if rw.trieDirty {
		rw.rebuildTrie()
	}
	cur := w.Clone()
	for {
		matched := false
		for pos := 0; pos <= len(cur) && !matched; pos++ {
			node := rw.trie
			for end := pos; end < len(cur); end++ {
				child, ok := node.children[cur[end]]
				if !ok {
					break
				}
				node = child
				if node.ruleID != sentinel {
					lhsLen := end - pos + 1
					rule := rw.ruleByID(node.ruleID)
					cur = replaceAt(cur, pos, lhsLen, rule.RHS)
					matched = true

					break
				}
			}
		}
		if !matched {
			return cur
		}
	}
}

func (rw *Rewriter) ruleByID(id int) Rule {
	for i := rw.head; i != sentinel; i = rw.arena[i].next {
		if rw.arena[i].rule.ID == id {
			return rw.arena[i].rule
		}
	}

	return Rule{}
}

func hasPrefixAt(w word.Word, pos int, lhs word.Word) bool {
	if pos+len(lhs) > len(w) {
		return false
	}
	for i, l := range lhs {
		if w[pos+i] != l {
			return false
		}
	}

	return true
}

func replaceAt(w word.Word, pos, length int, repl word.Word) word.Word {
	out := make(word.Word, 0, len(w)-length+len(repl))
	out = append(out, w[:pos]...)
	out = append(out, repl...)
	out = append(out, w[pos+length:]...)

	return out
}
