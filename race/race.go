package race

import (
	"errors"
	"sync"
)

// ErrNoWinner is returned by Run/RunUntil when every Competitor returned
// without finishing (e.g. all errored, or all were killed externally
// before any of them could finish).
var ErrNoWinner = errors.New("race: no competitor finished")

// Competitor is the narrow contract a Race drives. It is satisfied by
// anything wrapping a *runner.Runner and one bound Algorithm: a
// KnuthBendix, a coset enumerator, a small-overlap checker, and so on.
type Competitor interface {
	// Run runs to completion or until Kill is called.
	Run() error
	// RunUntil runs until pred returns true, the algorithm finishes, or
	// Kill is called.
	RunUntil(pred func() bool) error
	// Finished reports whether this competitor reached its own
	// completion condition (not merely that Run/RunUntil returned).
	Finished() bool
	// Kill cooperatively cancels an in-progress run.
	Kill()
}

// Race holds a fixed set of Competitors over the same input and a cap on
// how many may run concurrently.
type Race struct {
	competitors []Competitor
	maxThreads  int

	mu          sync.Mutex
	winnerIndex int // -1 until Run/RunUntil has selected a winner
}

// New returns a Race over competitors, running up to maxThreads of them
// concurrently. maxThreads <= 0 means "no limit" (one goroutine per
// competitor).
func New(maxThreads int, competitors ...Competitor) *Race {
	if maxThreads <= 0 {
		maxThreads = len(competitors)
	}

	return &Race{
		competitors: competitors,
		maxThreads:  maxThreads,
		winnerIndex: -1,
	}
}

// Add appends a competitor before Run/RunUntil has been called.
func (ra *Race) Add(c Competitor) {
	ra.competitors = append(ra.competitors, c)
}

// Run spawns one goroutine per competitor, at most maxThreads of which
// drive their competitor's Run (to completion or cancellation) at once. As soon as any competitor reports
// Finished() == true, every other competitor is Kill()ed; Run blocks
// until all goroutines have returned and joined before reporting the
// winner.
func (ra *Race) Run() (int, error) {
	return ra.run(func(c Competitor) error { return c.Run() })
}

// RunUntil is Run, except each competitor is driven with RunUntil(pred)
// instead of Run — used when the caller wants every competitor bounded by
// the same shared predicate (e.g. a wall-clock deadline).
func (ra *Race) RunUntil(pred func() bool) (int, error) {
	return ra.run(func(c Competitor) error { return c.RunUntil(pred) })
}

func (ra *Race) run(drive func(Competitor) error) (int, error) {
	n := len(ra.competitors)
	if n == 0 {
		return -1, ErrNoWinner
	}

	sem := make(chan struct{}, ra.maxThreads)
	var wg sync.WaitGroup
	done := make(chan struct{}, n)
	errs := make([]error, n)

	for i, c := range ra.competitors {
		wg.Add(1)
		go func(idx int, comp Competitor) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			errs[idx] = drive(comp)
			done <- struct{}{}
		}(i, c)
	}

	winner := -1
	finishedCount := 0
	for range done {
		finishedCount++
		// Scan in insertion order so simultaneous completions resolve to
		// the earliest-registered competitor.
		for i, c := range ra.competitors {
			if c.Finished() {
				winner = i
				break
			}
		}
		if winner >= 0 || finishedCount == n {
			break
		}
	}

	if winner >= 0 {
		for i, c := range ra.competitors {
			if i != winner {
				c.Kill()
			}
		}
	}
	wg.Wait()

	ra.mu.Lock()
	ra.winnerIndex = winner
	ra.mu.Unlock()

	if winner < 0 {
		return -1, ErrNoWinner
	}

	return winner, errs[winner]
}

// WinnerIndex returns the index of the winning competitor after Run or
// RunUntil has returned, or -1 if there was none.
func (ra *Race) WinnerIndex() int {
	ra.mu.Lock()
	defer ra.mu.Unlock()

	return ra.winnerIndex
}

// Winner returns the winning competitor, or nil if there was none.
func (ra *Race) Winner() Competitor {
	idx := ra.WinnerIndex()
	if idx < 0 {
		return nil
	}

	return ra.competitors[idx]
}

// Competitors returns the race's competitors in insertion order.
func (ra *Race) Competitors() []Competitor {
	return ra.competitors
}

// FindCompetitor returns the first competitor whose dynamic type is T,
// generalizing the original's find_runner<T>() to a generic helper.
func FindCompetitor[T any](ra *Race) (T, bool) {
	var zero T
	for _, c := range ra.competitors {
		if t, ok := c.(T); ok {
			return t, true
		}
	}

	return zero, false
}
