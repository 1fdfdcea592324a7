package element

// Transformation is a full function {0, ..., n-1} -> {0, ..., n-1},
// represented as images: Transformation[i] is the image of i. Composition
// is left-to-right: (f*g)[i] = g[f[i]], matching the convention used by
// spec scenario 4 (Froidure-Pin on transformations of degree 8).
type Transformation []int

// TransformationOps implements Element[Transformation].
//
// Grounded on core.Vertex/core.Edge as the model for a minimal, directly
// comparable domain value consumed by algorithms through a narrow
// contract rather than a fat concrete type.
type TransformationOps struct{}

// Product stores x*y (left-to-right composition) into *out. out may
// alias neither x nor y.
func (TransformationOps) Product(out, x, y *Transformation, threadID int) {
	n := len(*x)
	if len(*out) != n {
		*out = make(Transformation, n)
	}
	for i := 0; i < n; i++ {
		(*out)[i] = (*y)[(*x)[i]]
	}
}

// Hash computes an FNV-1a style hash over the image sequence.
func (TransformationOps) Hash(x *Transformation) uint64 {
	var h uint64 = 14695981039346656037
	for _, v := range *x {
		h ^= uint64(v)
		h *= 1099511628211
	}

	return h
}

// Equal reports whether x and y have identical image sequences.
func (TransformationOps) Equal(x, y *Transformation) bool {
	if len(*x) != len(*y) {
		return false
	}
	for i := range *x {
		if (*x)[i] != (*y)[i] {
			return false
		}
	}

	return true
}

// Less orders transformations lexicographically by image sequence,
// shorter (lower-degree) sequences first.
func (TransformationOps) Less(x, y *Transformation) bool {
	a, b := *x, *y
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Degree returns the size of the domain/codomain set.
func (TransformationOps) Degree(x *Transformation) int {
	return len(*x)
}

// IncreaseDegree widens x to degree n by fixing every new point.
func (TransformationOps) IncreaseDegree(x *Transformation, n int) {
	old := len(*x)
	if n <= old {
		return
	}
	grown := make(Transformation, n)
	copy(grown, *x)
	for i := old; i < n; i++ {
		grown[i] = i
	}
	*x = grown
}

// OneOfDegree returns the identity transformation on n points.
func (TransformationOps) OneOfDegree(n int) Transformation {
	id := make(Transformation, n)
	for i := range id {
		id[i] = i
	}

	return id
}

// Complexity is O(n) for one Product call.
func (TransformationOps) Complexity(x *Transformation) int {
	return len(*x)
}
