package congruence

import (
	"github.com/katalvlaran/semigroups/word"
)

// Contains reports whether (u, v) is a consequence of the generating
// pairs already added, racing every applicable algorithm and blocking
// until one of them answers. Only the KnuthBendix competitor can
// currently win; see ErrNotImplemented.
func (c *Congruence) Contains(u, v word.Word) (bool, error) {
	c.ensureStarted()
	if _, err := c.race.Run(); err != nil {
		return false, err
	}

	return c.kb.EqualTo(u, v)
}

// CurrentlyContains reports whether (u, v) is already known to be a
// consequence without starting or advancing the race.
func (c *Congruence) CurrentlyContains(u, v word.Word) (bool, error) {
	if c.kb == nil || !c.kb.Confluent() {
		return false, nil
	}

	return c.kb.EqualTo(u, v)
}

// Kind returns the congruence's side.
func (c *Congruence) Kind() Kind {
	return c.kind
}
