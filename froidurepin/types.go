package froidurepin

import (
	"errors"

	"github.com/katalvlaran/semigroups/element"
	"github.com/katalvlaran/semigroups/runner"
)

// Sentinel errors returned by FroidurePin's exported operations.
var (
	// ErrImmutable is returned by AddGenerator(s) once enumeration has
	// started; the generating set is frozen from that point on.
	ErrImmutable = errors.New("froidurepin: generators are frozen once Run has started")

	// ErrIncompatibleDegree is returned when a generator's Degree disagrees
	// with the degree already fixed by earlier generators.
	ErrIncompatibleDegree = errors.New("froidurepin: generator has incompatible degree")

	// ErrNoGenerators is returned by Run when no generator was ever added.
	ErrNoGenerators = errors.New("froidurepin: no generators added")

	// ErrOutOfRange is returned by At/Factorisation for an index outside
	// [0, CurrentSize()).
	ErrOutOfRange = errors.New("froidurepin: element index out of range")

	// ErrUnknownElement is returned by ProductByReduction, WordToElement and
	// LeftCayleyGraph when a product has not (yet, or ever) been discovered.
	ErrUnknownElement = errors.New("froidurepin: element not found")
)

// Finiteness is the tri-state result of IsFinite: a FroidurePin may
// conclusively know it is finite (enumeration closed), or may simply not
// know yet.
type Finiteness int

const (
	// Unknown means enumeration has not closed and no cheap structural
	// proof is available either way.
	Unknown Finiteness = iota
	// Finite means enumeration has closed: every product of a known
	// element by a generator is itself a known element.
	Finite
)

// String renders f the way a report line would.
func (f Finiteness) String() string {
	if f == Finite {
		return "finite"
	}

	return "unknown"
}

// Rule is one discovered defining relation: elements[I] * generator[J]
// equals the already-known elements[K]. Emitted when a product collapses
// onto an existing element and either elements[I] is a single generator or
// its suffix (elements[I] without its first letter) times generator[J]
// produced a new element; any other collapse follows from a shorter rule.
type Rule struct {
	I, J, K int
}

// wordInfo is the per-element bookkeeping needed to reconstruct a
// generator word for the element by walking the prefix chain, without
// storing the word itself.
type wordInfo struct {
	firstLetter int // generator-list index of the element's first letter
	lastLetter  int // generator-list index of the element's last letter
	prefix      int // index of the element with its last letter removed, -1 if length == 1
	suffix      int // index of the element with its first letter removed, -1 if length == 1
	length      int
}

// FroidurePin enumerates the semigroup (or monoid) generated by a finite
// set of values of type T under Ops's Product, discovering every
// distinct element together with its left and right Cayley graphs and
// the defining relations collision discovers them in.
//
// Grounded on core.Graph's lazily-grown adjacency-list representation
// (core/adjacency_list.go) generalized from "add the edges the caller
// names" to "add the edges Product discovers", and driven incrementally
// through the runner package the way tsp.Solve drives a bounded search
// (tsp/solve.go) through repeated bounded steps instead of one call.
type FroidurePin[T any, Ops element.Element[T]] struct {
	ops Ops

	immutable bool
	degree    int
	isMonoid  bool
	oneIndex  int // index of the identity element once isMonoid is known, else -1

	generators []int // generators[j] = element index of generator j

	elements []T
	indexOf  map[uint64][]int // hash bucket -> candidate element indices
	info     []wordInfo

	left  [][]int // left[i][j]  = index(generator[j] * elements[i]), filled by finalize
	right [][]int // right[i][j] = index(elements[i] * generator[j]), filled during enumeration

	// reduced[i][j] is true iff elements[i]*generator[j] was, at the time
	// it was discovered, a brand-new (strictly longer) element rather than
	// a collision onto a shorter or equal one. processRow reads it to
	// decide which collisions are recorded as rules (see Rule).
	reduced [][]bool

	rules []Rule

	enumerateOrder []int // enumerateOrder[k] = element index discovered at position k; identity in this implementation
	lengthIndex    []int // lengthIndex[l] = first position in enumerateOrder holding an element of length l

	processed int // number of elements whose row has been fully computed
	leftDone  bool

	batchSize int

	runner *runner.Runner
}

// Option configures a FroidurePin at construction time.
type Option func(*options)

type options struct {
	batchSize int
}

// WithBatchSize overrides the default 8192-element batch used by Step to
// bound how much work happens between Runner cancellation checks.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// New returns an empty FroidurePin ready to accept generators via
// AddGenerator/AddGenerators.
func New[T any, Ops element.Element[T]](ops Ops, opts ...Option) *FroidurePin[T, Ops] {
	o := options{batchSize: 8192}
	for _, fn := range opts {
		fn(&o)
	}

	return &FroidurePin[T, Ops]{
		ops:       ops,
		degree:    -1,
		oneIndex:  -1,
		indexOf:   make(map[uint64][]int),
		batchSize: o.batchSize,
		runner:    runner.New(),
	}
}

// Runner exposes the underlying Runner so callers can install a Reporter
// or query run state directly.
func (fp *FroidurePin[T, Ops]) Runner() *runner.Runner {
	return fp.runner
}

// NumberOfGenerators returns how many generators (counting duplicates)
// have been added.
func (fp *FroidurePin[T, Ops]) NumberOfGenerators() int {
	return len(fp.generators)
}

// CurrentSize returns the number of elements discovered so far, without
// triggering any further enumeration.
func (fp *FroidurePin[T, Ops]) CurrentSize() int {
	return len(fp.elements)
}

// Finished reports whether enumeration has closed.
func (fp *FroidurePin[T, Ops]) Finished() bool {
	return fp.processed == len(fp.elements) && fp.runner.Started()
}
