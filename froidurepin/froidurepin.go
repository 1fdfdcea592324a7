package froidurepin

import (
	"time"

	"github.com/katalvlaran/semigroups/runner"
)

// AddGenerator appends x as a new generator. Duplicate values (equal to
// an already-known element, generator or not) are accepted and reuse the
// existing element's index; they still occupy their own slot in the
// generator list so that factorisations referencing them stay meaningful.
func (fp *FroidurePin[T, Ops]) AddGenerator(x T) error {
	if fp.immutable {
		return ErrImmutable
	}
	deg := fp.ops.Degree(&x)
	if fp.degree == -1 {
		fp.degree = deg
	} else if deg != fp.degree {
		return ErrIncompatibleDegree
	}

	j := len(fp.generators)
	idx, isNew := fp.insert(x)
	fp.generators = append(fp.generators, idx)
	fp.growColumns()
	if isNew {
		fp.info[idx] = wordInfo{firstLetter: j, lastLetter: j, prefix: -1, suffix: -1, length: 1}
		fp.enumerateOrder = append(fp.enumerateOrder, idx)
		fp.ensureLengthIndex(1)
	}

	return nil
}

// AddGenerators appends each of xs in order; see AddGenerator.
func (fp *FroidurePin[T, Ops]) AddGenerators(xs ...T) error {
	for _, x := range xs {
		if err := fp.AddGenerator(x); err != nil {
			return err
		}
	}

	return nil
}

// insert looks up x by hash/Equal, appending it as a new element if it is
// not already known. Returns the element's index and whether it was new.
func (fp *FroidurePin[T, Ops]) insert(x T) (int, bool) {
	h := fp.ops.Hash(&x)
	for _, cand := range fp.indexOf[h] {
		if fp.ops.Equal(&fp.elements[cand], &x) {
			return cand, false
		}
	}
	idx := len(fp.elements)
	fp.elements = append(fp.elements, x)
	fp.info = append(fp.info, wordInfo{})
	fp.right = append(fp.right, nil)
	fp.left = append(fp.left, nil)
	fp.reduced = append(fp.reduced, nil)
	fp.indexOf[h] = append(fp.indexOf[h], idx)

	return idx, true
}

// growColumns widens every existing row to len(fp.generators) columns,
// the way core.Graph's adjacency maps grow lazily as new vertices appear.
func (fp *FroidurePin[T, Ops]) growColumns() {
	n := len(fp.generators)
	for i := range fp.elements {
		for len(fp.right[i]) < n {
			fp.right[i] = append(fp.right[i], -1)
		}
		for len(fp.reduced[i]) < n {
			fp.reduced[i] = append(fp.reduced[i], false)
		}
	}
}

func (fp *FroidurePin[T, Ops]) ensureLengthIndex(length int) {
	for len(fp.lengthIndex) <= length {
		fp.lengthIndex = append(fp.lengthIndex, len(fp.enumerateOrder)-1)
	}
}

// Step implements runner.Algorithm: it processes one batch of at most
// batchSize element rows (computing every x*generator[j] and discovering
// new elements or defining relations), then returns control to the
// Runner so RunFor's deadline and RunUntil's predicate get a chance to
// fire between batches.
func (fp *FroidurePin[T, Ops]) Step(r *runner.Runner) (bool, error) {
	for count := 0; fp.processed < len(fp.elements) && count < fp.batchSize; count++ {
		fp.processRow(fp.processed)
		fp.processed++
	}
	r.MaybeReport(runner.ReportFields{DefinedRules: len(fp.rules)})
	finished := fp.processed >= len(fp.elements)
	if finished && !fp.leftDone {
		fp.finalize()
	}

	return finished, nil
}

// processRow computes elements[p] * generator[j] for every generator j,
// recording the result in the right Cayley graph and either discovering a
// new element or emitting a defining rule.
func (fp *FroidurePin[T, Ops]) processRow(p int) {
	x := fp.elements[p]
	numGens := len(fp.generators)
	if len(fp.right[p]) < numGens {
		fp.growColumns()
	}
	wi := fp.info[p]
	for j := 0; j < numGens; j++ {
		g := fp.elements[fp.generators[j]]
		var y T
		fp.ops.Product(&y, &x, &g, 0)
		k, isNew := fp.insert(y)
		fp.right[p][j] = k
		if !isNew {
			fp.reduced[p][j] = false
			if wi.length == 1 || fp.reduced[wi.suffix][j] {
				fp.rules = append(fp.rules, Rule{I: p, J: j, K: k})
			}

			continue
		}
		fp.reduced[p][j] = true
		var suffix int
		if wi.length == 1 {
			suffix = fp.generators[j]
		} else {
			suffix = fp.right[wi.suffix][j]
		}
		fp.info[k] = wordInfo{firstLetter: wi.firstLetter, lastLetter: j, prefix: p, suffix: suffix, length: wi.length + 1}
		fp.growColumns()
		fp.enumerateOrder = append(fp.enumerateOrder, k)
		fp.ensureLengthIndex(wi.length + 1)
	}
}

// finalize fills the left Cayley graph (computable only once the right
// Cayley graph is total) and detects a two-sided identity, if present. It
// runs exactly once, after enumeration has closed.
func (fp *FroidurePin[T, Ops]) finalize() {
	numGens := len(fp.generators)
	n := len(fp.elements)
	// Base case: generators. left[p][m] = index(generator[m] * generator[p's own letter])
	// = right[generators[m]][p's letter], total only because finalize runs
	// after the whole table has closed.
	for p := 0; p < n; p++ {
		if fp.info[p].length != 1 {
			continue
		}
		own := fp.info[p].firstLetter
		row := make([]int, numGens)
		for m := 0; m < numGens; m++ {
			row[m] = fp.right[fp.generators[m]][own]
		}
		fp.left[p] = row
	}
	// Inductive case, in discovery order (strictly increasing length, so
	// prefix(k) is always already filled by the time k is reached).
	for _, k := range fp.enumerateOrder {
		if fp.info[k].length == 1 {
			continue
		}
		wi := fp.info[k]
		row := make([]int, numGens)
		for m := 0; m < numGens; m++ {
			row[m] = fp.right[fp.left[wi.prefix][m]][wi.lastLetter]
		}
		fp.left[k] = row
	}
	fp.leftDone = true
	fp.detectIdentity()
}

// detectIdentity looks for a two-sided identity among the discovered
// elements: e such that e*generator[j] == generator[j] == generator[j]*e
// for every j.
func (fp *FroidurePin[T, Ops]) detectIdentity() {
	numGens := len(fp.generators)
	for e := 0; e < len(fp.elements); e++ {
		ok := true
		for j := 0; j < numGens; j++ {
			if fp.right[e][j] != fp.generators[j] || fp.left[e][j] != fp.generators[j] {
				ok = false

				break
			}
		}
		if ok {
			fp.isMonoid = true
			fp.oneIndex = e

			return
		}
	}
}

// Run drives enumeration to completion: every product of a known element
// by a generator becomes a known element too.
func (fp *FroidurePin[T, Ops]) Run() error {
	if err := fp.freeze(); err != nil {
		return err
	}

	return fp.runner.Run(fp)
}

// RunFor drives enumeration for at most d before returning, leaving the
// Runner in StateTimedOut if it had not finished.
func (fp *FroidurePin[T, Ops]) RunFor(d time.Duration) error {
	if err := fp.freeze(); err != nil {
		return err
	}

	return fp.runner.RunFor(fp, d)
}

// RunUntil drives enumeration until pred returns true or it finishes.
// The parameter type is the bare func() bool (rather than
// runner.Predicate) so that *FroidurePin satisfies race.Competitor
// without an adapter.
func (fp *FroidurePin[T, Ops]) RunUntil(pred func() bool) error {
	if err := fp.freeze(); err != nil {
		return err
	}

	return fp.runner.RunUntil(fp, pred)
}

// Kill cooperatively cancels an in-progress run, satisfying
// race.Competitor.
func (fp *FroidurePin[T, Ops]) Kill() {
	fp.runner.Kill()
}

func (fp *FroidurePin[T, Ops]) freeze() error {
	if len(fp.generators) == 0 {
		return ErrNoGenerators
	}
	fp.immutable = true

	return nil
}
