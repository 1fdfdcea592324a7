package rewriter

import (
	"github.com/katalvlaran/semigroups/word"
)

const sentinel = -1

// Rule is one rewriting rule: LHS rewrites to RHS. ID is stable for the
// lifetime of the Rewriter, even across Deactivate, so callers (e.g.
// package knuthbendix) can keep referring to a rule after it stops being
// active.
type Rule struct {
	ID  int
	LHS word.Word
	RHS word.Word
}

// ruleNode is one arena slot: a Rule plus its doubly-linked-list
// neighbors, reused (via the free list) once Deactivate removes it from
// the active list.
type ruleNode struct {
	rule         Rule
	active       bool
	prev, next   int
}

// Rewriter holds a set of active rules (used to reduce words to normal
// form) and a FIFO of pending rules (proposed but not yet folded into
// the active set by a caller such as package knuthbendix, which must
// first check each pending rule against the active set for overlaps).
type Rewriter struct {
	arena []ruleNode
	head  int // first active node, sentinel if none
	tail  int // last active node, sentinel if none
	free  int // first free (reusable, inactive) node, sentinel if none

	numActive int
	nextID    int

	pending []Rule

	confluenceKnown bool
	confluent       bool

	trie      *trieNode
	trieDirty bool
}

// New returns an empty Rewriter.
func New() *Rewriter {
	return &Rewriter{head: sentinel, tail: sentinel, free: sentinel, trieDirty: true}
}

// NumberOfActiveRules returns the number of rules currently in the
// active list.
func (rw *Rewriter) NumberOfActiveRules() int {
	return rw.numActive
}

// NumberOfInactiveRules returns the number of arena slots holding a
// deactivated rule, available for reuse.
func (rw *Rewriter) NumberOfInactiveRules() int {
	count := 0
	for i := rw.free; i != sentinel; i = rw.arena[i].next {
		count++
	}

	return count
}

// AddPending appends (lhs, rhs) to the pending queue without making it
// active. Returns the rule's assigned ID.
func (rw *Rewriter) AddPending(lhs, rhs word.Word) int {
	id := rw.nextID
	rw.nextID++
	rw.pending = append(rw.pending, Rule{ID: id, LHS: lhs.Clone(), RHS: rhs.Clone()})

	return id
}

// Pending returns the rules awaiting processing. The returned slice must
// not be mutated by the caller.
func (rw *Rewriter) Pending() []Rule {
	return rw.pending
}

// PopPending removes and returns the first pending rule, or (Rule{},
// false) if the queue is empty.
func (rw *Rewriter) PopPending() (Rule, bool) {
	if len(rw.pending) == 0 {
		return Rule{}, false
	}
	r := rw.pending[0]
	rw.pending = rw.pending[1:]

	return r, true
}

// AddActiveRule inserts (lhs, rhs) directly into the active list,
// reusing a free arena slot if one is available, and returns its ID.
// Adding an active rule invalidates any cached confluence result.
func (rw *Rewriter) AddActiveRule(lhs, rhs word.Word) int {
	var idx int
	rule := Rule{ID: rw.nextID, LHS: lhs.Clone(), RHS: rhs.Clone()}
	rw.nextID++

	if rw.free != sentinel {
		idx = rw.free
		rw.free = rw.arena[idx].next
		rw.arena[idx] = ruleNode{rule: rule, prev: sentinel, next: sentinel}
	} else {
		idx = len(rw.arena)
		rw.arena = append(rw.arena, ruleNode{rule: rule, prev: sentinel, next: sentinel})
	}
	rw.arena[idx].active = true

	if rw.tail == sentinel {
		rw.head, rw.tail = idx, idx
	} else {
		rw.arena[rw.tail].next = idx
		rw.arena[idx].prev = rw.tail
		rw.tail = idx
	}
	rw.numActive++
	rw.invalidate()

	return rule.ID
}

// DeactivateRule unlinks the arena slot holding rule id from the active
// list and returns it to the free list. It is a no-op if id is not
// currently active.
func (rw *Rewriter) DeactivateRule(id int) {
	idx := rw.findActiveSlot(id)
	if idx == sentinel {
		return
	}
	if rw.arena[idx].prev != sentinel {
		rw.arena[rw.arena[idx].prev].next = rw.arena[idx].next
	} else {
		rw.head = rw.arena[idx].next
	}
	if rw.arena[idx].next != sentinel {
		rw.arena[rw.arena[idx].next].prev = rw.arena[idx].prev
	} else {
		rw.tail = rw.arena[idx].prev
	}
	rw.arena[idx].active = false
	rw.arena[idx].next = rw.free
	rw.arena[idx].prev = sentinel
	rw.free = idx
	rw.numActive--
	rw.invalidate()
}

// RuleByID returns the active rule with the given ID, if any.
func (rw *Rewriter) RuleByID(id int) (Rule, bool) {
	idx := rw.findActiveSlot(id)
	if idx == sentinel {
		return Rule{}, false
	}

	return rw.arena[idx].rule, true
}

func (rw *Rewriter) findActiveSlot(id int) int {
	for i := rw.head; i != sentinel; i = rw.arena[i].next {
		if rw.arena[i].rule.ID == id {
			return i
		}
	}

	return sentinel
}

// ActiveRules returns the active rules in list order (the order they
// were inserted, minus any deactivated in between).
func (rw *Rewriter) ActiveRules() []Rule {
	out := make([]Rule, 0, rw.numActive)
	for i := rw.head; i != sentinel; i = rw.arena[i].next {
		out = append(out, rw.arena[i].rule)
	}

	return out
}

func (rw *Rewriter) invalidate() {
	rw.confluenceKnown = false
	rw.trieDirty = true
}

// SetConfluenceKnown caches a confluence verdict so repeated queries
// between rule-set mutations are O(1). Callers (package knuthbendix) are
// responsible for the actual confluence check; Rewriter only caches it.
func (rw *Rewriter) SetConfluenceKnown(confluent bool) {
	rw.confluenceKnown = true
	rw.confluent = confluent
}

// ConfluenceKnown reports whether a confluence verdict is cached, and
// what it was.
func (rw *Rewriter) ConfluenceKnown() (confluent, known bool) {
	return rw.confluent, rw.confluenceKnown
}
