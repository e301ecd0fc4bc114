package vecspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAccessors(t *testing.T) {
	v := NewVector3[uint32](1, 2, 3)

	assert.Equal(t, uint32(1), v.At(0))
	assert.Equal(t, uint32(3), v.At(2))

	v.SetAt(1, 20)
	assert.Equal(t, uint32(20), v.At(1))

	w := NewVector4[uint32](1, 2, 3, 4)
	w.SetAt(3, 40)
	assert.Equal(t, uint32(40), w.At(3))
}

func TestVectorValueSemantics(t *testing.T) {
	v := NewVector3[uint32](1, 2, 3)

	// Assignment copies; no aliasing across instances.
	u := v
	u.SetAt(0, 100)
	assert.Equal(t, uint32(1), v.At(0))

	c := v.Clone()
	c.SetAt(2, 30)
	assert.Equal(t, uint32(3), v.At(2))
	assert.Equal(t, uint32(30), c.At(2))

	// Elementwise equality.
	assert.Equal(t, NewVector3[uint32](1, 2, 3), v)
	assert.NotEqual(t, NewVector3[uint32](1, 2, 4), v)
}
