// Package ewise provides generic elementwise kernels over equal-length
// slices. This is an internal package - external users should use the
// space operators in the root package.
//
// All kernels assume len(dst) == len(src); the fixed-size container
// types in the root package guarantee this by construction.
package ewise

import "golang.org/x/exp/constraints"

// AddInPlace adds src to dst elementwise, storing the result in dst.
func AddInPlace[S constraints.Unsigned](dst, src []S) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// ScaleInPlace multiplies every element of dst by scalar.
func ScaleInPlace[S constraints.Unsigned](dst []S, scalar S) {
	for i := range dst {
		dst[i] *= scalar
	}
}

// Fill sets every element of dst to scalar.
func Fill[S constraints.Unsigned](dst []S, scalar S) {
	for i := range dst {
		dst[i] = scalar
	}
}
