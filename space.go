package vecspace

import "github.com/hupe1980/vecspace/internal/ewise"

// Space is the capability set every vector space provides: addition and
// scaling over one container type V and one scalar type S. Operands
// must be the exact container and scalar type the space was defined
// for; mixing dimensions or scalar types does not compile.
type Space[V any, S Scalar] interface {
	// VAdd returns a new container whose i-th element is l[i] + r[i].
	VAdd(l, r V) V
	// VAddMut adds r to l elementwise, in place.
	VAddMut(l *V, r V)
	// VScale returns a new container whose i-th element is v[i] * s.
	VScale(v V, s S) V
	// VScaleMut scales v by s elementwise, in place.
	VScaleMut(v *V, s S)
	// Zero returns the additive-identity container of the space.
	Zero() V
}

// MatrixSpace is the capability set a space provides over its matrix
// type. Matrix addition is rowwise vector addition.
type MatrixSpace[M any, S Scalar] interface {
	MAdd(l, r M) M
	MAddMut(l *M, r M)
	MScale(m M, s S) M
	MScaleMut(m *M, s S)
}

// Compile-time conformance checks.
var (
	_ Space[Vector3[uint32], uint32]         = Space3[uint32]{}
	_ Space[Vector4[uint32], uint32]         = Space4[uint32]{}
	_ MatrixSpace[Matrix3x3[uint32], uint32] = Space3[uint32]{}
)

// Space3 is the three-dimensional vector space over scalar type S. It
// is stateless: construct it freely, share it freely.
type Space3[S Scalar] struct{}

// VAdd returns the elementwise sum of l and r.
func (Space3[S]) VAdd(l, r Vector3[S]) Vector3[S] {
	out := l
	ewise.AddInPlace(out[:], r[:])
	return out
}

// VAddMut adds r to l in place.
func (Space3[S]) VAddMut(l *Vector3[S], r Vector3[S]) {
	ewise.AddInPlace(l[:], r[:])
}

// VScale returns v with every element multiplied by s.
func (Space3[S]) VScale(v Vector3[S], s S) Vector3[S] {
	out := v
	ewise.ScaleInPlace(out[:], s)
	return out
}

// VScaleMut scales v by s in place.
func (Space3[S]) VScaleMut(v *Vector3[S], s S) {
	ewise.ScaleInPlace(v[:], s)
}

// Zero returns the additive-identity vector.
func (Space3[S]) Zero() Vector3[S] {
	var out Vector3[S]
	ewise.Fill(out[:], AdditiveIdentity[S]())
	return out
}

// MAdd returns the rowwise sum of l and r.
func (s Space3[S]) MAdd(l, r Matrix3x3[S]) Matrix3x3[S] {
	out := l
	s.MAddMut(&out, r)
	return out
}

// MAddMut adds r to l in place, delegating to elementwise vector
// addition per row.
func (s Space3[S]) MAddMut(l *Matrix3x3[S], r Matrix3x3[S]) {
	for i := range l {
		s.VAddMut(&l[i], r[i])
	}
}

// MScale returns m with every element multiplied by scalar.
func (s Space3[S]) MScale(m Matrix3x3[S], scalar S) Matrix3x3[S] {
	out := m
	s.MScaleMut(&out, scalar)
	return out
}

// MScaleMut scales m by scalar in place, rowwise.
func (s Space3[S]) MScaleMut(m *Matrix3x3[S], scalar S) {
	for i := range m {
		s.VScaleMut(&m[i], scalar)
	}
}

// Space4 is the four-dimensional vector space over scalar type S.
type Space4[S Scalar] struct{}

// VAdd returns the elementwise sum of l and r.
func (Space4[S]) VAdd(l, r Vector4[S]) Vector4[S] {
	out := l
	ewise.AddInPlace(out[:], r[:])
	return out
}

// VAddMut adds r to l in place.
func (Space4[S]) VAddMut(l *Vector4[S], r Vector4[S]) {
	ewise.AddInPlace(l[:], r[:])
}

// VScale returns v with every element multiplied by s.
func (Space4[S]) VScale(v Vector4[S], s S) Vector4[S] {
	out := v
	ewise.ScaleInPlace(out[:], s)
	return out
}

// VScaleMut scales v by s in place.
func (Space4[S]) VScaleMut(v *Vector4[S], s S) {
	ewise.ScaleInPlace(v[:], s)
}

// Zero returns the additive-identity vector.
func (Space4[S]) Zero() Vector4[S] {
	var out Vector4[S]
	ewise.Fill(out[:], AdditiveIdentity[S]())
	return out
}
