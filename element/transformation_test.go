package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformationProductLeftToRight(t *testing.T) {
	var ops TransformationOps
	x := Transformation{1, 0, 2} // swap 0,1
	y := Transformation{2, 1, 0} // reverse
	var out Transformation
	ops.Product(&out, &x, &y, 0)
	// (x*y)[i] = y[x[i]]
	assert.Equal(t, Transformation{1, 2, 0}, out)
}

func TestTransformationEqualAndHashConsistent(t *testing.T) {
	var ops TransformationOps
	a := Transformation{0, 1, 2}
	b := Transformation{0, 1, 2}
	assert.True(t, ops.Equal(&a, &b))
	assert.Equal(t, ops.Hash(&a), ops.Hash(&b))
}

func TestTransformationIncreaseDegreeFixesNewPoints(t *testing.T) {
	var ops TransformationOps
	x := Transformation{1, 0}
	ops.IncreaseDegree(&x, 4)
	assert.Equal(t, Transformation{1, 0, 2, 3}, x)
}

func TestTransformationOneOfDegreeIsIdentity(t *testing.T) {
	var ops TransformationOps
	id := ops.OneOfDegree(3)
	var out Transformation
	x := Transformation{2, 0, 1}
	ops.Product(&out, &x, &id, 0)
	assert.True(t, ops.Equal(&out, &x))
}
