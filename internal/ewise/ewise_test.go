package ewise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInPlace(t *testing.T) {
	tests := []struct {
		name     string
		dst, src []uint32
		expected []uint32
	}{
		{"Simple", []uint32{1, 2, 3}, []uint32{3, 6, 9}, []uint32{4, 8, 12}},
		{"Zero", []uint32{0, 0}, []uint32{0, 0}, []uint32{0, 0}},
		{"Empty", []uint32{}, []uint32{}, []uint32{}},
		{"Single", []uint32{7}, []uint32{5}, []uint32{12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AddInPlace(tt.dst, tt.src)
			assert.Equal(t, tt.expected, tt.dst)
		})
	}
}

func TestScaleInPlace(t *testing.T) {
	tests := []struct {
		name     string
		dst      []uint32
		scalar   uint32
		expected []uint32
	}{
		{"Simple", []uint32{1, 2, 3}, 3, []uint32{3, 6, 9}},
		{"ByZero", []uint32{4, 5}, 0, []uint32{0, 0}},
		{"ByOne", []uint32{4, 5}, 1, []uint32{4, 5}},
		{"Empty", []uint32{}, 9, []uint32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ScaleInPlace(tt.dst, tt.scalar)
			assert.Equal(t, tt.expected, tt.dst)
		})
	}
}

func TestFill(t *testing.T) {
	dst := []uint32{1, 2, 3, 4}
	Fill(dst, 9)
	assert.Equal(t, []uint32{9, 9, 9, 9}, dst)
}

func TestWraparound(t *testing.T) {
	dst := []uint8{250, 1}
	AddInPlace(dst, []uint8{10, 255})
	assert.Equal(t, []uint8{4, 0}, dst)

	dst = []uint8{128, 3}
	ScaleInPlace(dst, uint8(2))
	assert.Equal(t, []uint8{0, 6}, dst)
}
