// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fits

// Pixels is a flat, row-major view over an array's elements. At exposes a
// numeric view used for tolerance comparison; Value exposes the native
// element for reporting. Floating reports whether the element type is
// floating-point or complex, which controls whether a relative tolerance is
// meaningful.
type Pixels interface {
	Len() int
	Floating() bool
	At(i int) complex128
	Value(i int) any
}

// IntPixels stores signed integer elements.
type IntPixels []int64

func (p IntPixels) Len() int { return len(p) }
func (p IntPixels) Floating() bool { return false }
func (p IntPixels) At(i int) complex128 { return complex(float64(p[i]), 0) }
func (p IntPixels) Value(i int) any { return p[i] }

// FloatPixels stores floating-point elements.
type FloatPixels []float64

func (p FloatPixels) Len() int { return len(p) }
func (p FloatPixels) Floating() bool { return true }
func (p FloatPixels) At(i int) complex128 { return complex(p[i], 0) }
func (p FloatPixels) Value(i int) any { return p[i] }

// ComplexPixels stores complex elements.
type ComplexPixels []complex128

func (p ComplexPixels) Len() int { return len(p) }
func (p ComplexPixels) Floating() bool { return true }
func (p ComplexPixels) At(i int) complex128 { return p[i] }
func (p ComplexPixels) Value(i int) any { return p[i] }

// BoolPixels stores boolean elements, compared as 0/1.
type BoolPixels []bool

func (p BoolPixels) Len() int { return len(p) }
func (p BoolPixels) Floating() bool { return false }
func (p BoolPixels) At(i int) complex128 {
	if p[i] {
		return complex(1, 0)
	}
	return complex(0, 0)
}
func (p BoolPixels) Value(i int) any { return p[i] }

// Image is an N-dimensional numeric array. Shape follows the array's logical
// axis order; Pix holds the elements flattened in row-major order.
type Image struct {
	Shape []int
	Pix   Pixels
}

// Size returns the total element count, the product of all axis lengths.
// An empty shape denotes a zero-size array.
func (im *Image) Size() int {
	if len(im.Shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range im.Shape {
		n *= d
	}
	return n
}
