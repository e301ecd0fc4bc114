package vecspace

// Vector3 is an ordered, fixed-length sequence of exactly three scalar
// values. It is a value type: assignment copies all elements and == is
// elementwise equality.
type Vector3[S Scalar] [3]S

// NewVector3 constructs a Vector3 from exactly three scalar values.
func NewVector3[S Scalar](x, y, z S) Vector3[S] {
	return Vector3[S]{x, y, z}
}

// At returns the element at position i.
func (v Vector3[S]) At(i int) S {
	return v[i]
}

// SetAt sets the element at position i.
func (v *Vector3[S]) SetAt(i int, s S) {
	v[i] = s
}

// Clone returns a value copy of v. Assignment copies too; Clone exists
// so callers can be explicit about it.
func (v Vector3[S]) Clone() Vector3[S] {
	return v
}

// Vector4 is an ordered, fixed-length sequence of exactly four scalar
// values with the same value semantics as Vector3.
type Vector4[S Scalar] [4]S

// NewVector4 constructs a Vector4 from exactly four scalar values.
func NewVector4[S Scalar](x, y, z, w S) Vector4[S] {
	return Vector4[S]{x, y, z, w}
}

// At returns the element at position i.
func (v Vector4[S]) At(i int) S {
	return v[i]
}

// SetAt sets the element at position i.
func (v *Vector4[S]) SetAt(i int, s S) {
	v[i] = s
}

// Clone returns a value copy of v.
func (v Vector4[S]) Clone() Vector4[S] {
	return v
}
