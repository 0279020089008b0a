// value.go — the runtime array model: shapes, tagged elements, arrays.
//
// An Array is a flat, row-major element buffer paired with a Shape.
// The standing invariant is len(Elems) == Shape.Total(); every
// constructor and verb either preserves it or fails with a typed error.
// Boxed elements own their inner Array outright, so values form strict
// trees (no sharing, no cycles).

package jay

// Shape is the ordered list of dimension sizes. Rank 0 (empty shape)
// is a scalar, rank 1 a vector, rank 2 a matrix.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// Total returns the product of the dimensions. The empty product is 1,
// matching scalar semantics.
func (s Shape) Total() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// ElemTag discriminates the two element kinds.
type ElemTag int

const (
	ElInt ElemTag = iota // int64 payload
	ElBox                // *Array payload (a whole array boxed as one scalar element)
)

// Element is the tagged cell type of an Array. The tag determines
// which field of Data is valid: int64 for ElInt, *Array for ElBox.
type Element struct {
	Tag  ElemTag
	Data interface{}
}

// IntElem wraps an integer as an element.
func IntElem(n int64) Element { return Element{Tag: ElInt, Data: n} }

// BoxElem wraps a whole array as a single boxed element.
func BoxElem(a *Array) Element { return Element{Tag: ElBox, Data: a} }

// Int returns the integer payload; valid only when Tag == ElInt.
func (e Element) Int() int64 { return e.Data.(int64) }

// Box returns the boxed array; valid only when Tag == ElBox.
func (e Element) Box() *Array { return e.Data.(*Array) }

// Array is the runtime value: a shape plus a flat element buffer in
// row-major order.
type Array struct {
	Shape Shape
	Elems []Element
}

// Scalar builds a rank-0 array holding one integer.
func Scalar(n int64) *Array {
	return &Array{Shape: Shape{}, Elems: []Element{IntElem(n)}}
}

// Vector builds a rank-1 array from the given integers.
func Vector(ns ...int64) *Array {
	elems := make([]Element, len(ns))
	for i, n := range ns {
		elems[i] = IntElem(n)
	}
	return &Array{Shape: Shape{len(ns)}, Elems: elems}
}

// BoxScalar builds a rank-0 array whose single element boxes inner.
func BoxScalar(inner *Array) *Array {
	return &Array{Shape: Shape{}, Elems: []Element{BoxElem(inner)}}
}

// New builds an array from an explicit shape and element buffer,
// enforcing the shape/buffer invariant.
func New(shape Shape, elems []Element) (*Array, error) {
	if len(elems) != shape.Total() {
		return nil, &ShapeMismatch{Left: shape, Right: Shape{len(elems)}}
	}
	return &Array{Shape: shape, Elems: elems}, nil
}

// IsScalar reports whether the array is rank 0.
func (a *Array) IsScalar() bool { return a.Shape.Rank() == 0 }

// ScalarInt returns the single integer of a rank-0 integer array.
func (a *Array) ScalarInt() (int64, bool) {
	if !a.IsScalar() || a.Elems[0].Tag != ElInt {
		return 0, false
	}
	return a.Elems[0].Int(), true
}

// Tally returns the size of the leading dimension; scalars tally 1.
func (a *Array) Tally() int {
	if a.Shape.Rank() == 0 {
		return 1
	}
	return a.Shape[0]
}

// Clone returns a deep copy. Boxed elements are cloned recursively so
// the result shares no storage with the receiver.
func (a *Array) Clone() *Array {
	elems := make([]Element, len(a.Elems))
	for i, e := range a.Elems {
		if e.Tag == ElBox {
			elems[i] = BoxElem(e.Box().Clone())
		} else {
			elems[i] = e
		}
	}
	return &Array{Shape: a.Shape.Clone(), Elems: elems}
}

// Equal reports deep structural equality: same shape, same elements,
// boxed elements compared recursively.
func (a *Array) Equal(b *Array) bool {
	if !a.Shape.Equal(b.Shape) {
		return false
	}
	for i := range a.Elems {
		x, y := a.Elems[i], b.Elems[i]
		if x.Tag != y.Tag {
			return false
		}
		switch x.Tag {
		case ElInt:
			if x.Int() != y.Int() {
				return false
			}
		case ElBox:
			if !x.Box().Equal(y.Box()) {
				return false
			}
		}
	}
	return true
}
