package vecspace

// Matrix3x3 is an ordered, fixed-length sequence of three Vector3 rows.
// Like the vector types it is a plain value: assignment copies all nine
// elements and == compares them elementwise.
type Matrix3x3[S Scalar] [3]Vector3[S]

// NewMatrix3x3 constructs a Matrix3x3 from exactly three row vectors.
func NewMatrix3x3[S Scalar](r0, r1, r2 Vector3[S]) Matrix3x3[S] {
	return Matrix3x3[S]{r0, r1, r2}
}

// Row returns the row vector at index i.
func (m Matrix3x3[S]) Row(i int) Vector3[S] {
	return m[i]
}

// SetRow replaces the row vector at index i.
func (m *Matrix3x3[S]) SetRow(i int, r Vector3[S]) {
	m[i] = r
}

// At returns the element at row i, column j.
func (m Matrix3x3[S]) At(i, j int) S {
	return m[i][j]
}

// SetAt sets the element at row i, column j.
func (m *Matrix3x3[S]) SetAt(i, j int, s S) {
	m[i][j] = s
}

// Clone returns a value copy of m.
func (m Matrix3x3[S]) Clone() Matrix3x3[S] {
	return m
}
