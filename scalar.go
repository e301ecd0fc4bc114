package vecspace

import "golang.org/x/exp/constraints"

// Scalar constrains the element types a space may be defined over.
// Arithmetic semantics (including wraparound on overflow) follow the
// scalar type's native unsigned behavior.
type Scalar interface {
	constraints.Unsigned
}

// AdditiveIdentity returns the scalar that is neutral under addition.
func AdditiveIdentity[S Scalar]() S {
	return 0
}

// MultiplicativeIdentity returns the scalar that is neutral under
// multiplication.
func MultiplicativeIdentity[S Scalar]() S {
	return 1
}
