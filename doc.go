// Package vecspace provides fixed-size vector and matrix types together
// with stateless vector-space operators for elementwise arithmetic.
//
// A space binds exactly one container type and one unsigned scalar type
// and supplies addition and scaling over that binding. Shape and type
// mismatches are compile-time errors: containers are backed by Go
// fixed-size arrays, so there is no runtime error surface at all.
//
// # Quick Start
//
//	space := vecspace.Space3[uint32]{}
//
//	u := vecspace.NewVector3[uint32](1, 2, 3)
//	v := vecspace.NewVector3[uint32](3, 6, 9)
//
//	sum := space.VAdd(u, v)      // [4 8 12]
//	big := space.VScale(sum, 10) // [40 80 120]
//
// # Mutating Variants
//
// Every operation has an in-place variant that updates the left operand
// instead of allocating a result:
//
//	space.VAddMut(&u, v)   // u is now [4 8 12]
//	space.VScaleMut(&u, 2) // u is now [8 16 24]
//
// # Matrices
//
// The 3D space also operates on 3×3 matrices; matrix addition is
// rowwise vector addition:
//
//	m := vecspace.NewMatrix3x3(r0, r1, r2)
//	n := space.MAdd(m, m)
//
// # Semantics
//
// All operations are pure (aside from the explicit *Mut variants),
// synchronous, and total. Overflow wraps according to the scalar type's
// native unsigned arithmetic; the library does not redefine it.
package vecspace
