// verbs.go — the fixed verb table and its array implementations.
//
//	verb  monadic        dyadic
//	 +    identity       addition
//	 ~    negate         —
//	 -    negate         subtraction
//	 #    tally          reshape (truncate or cycle to fill)
//	 {    shape          index
//	 ,    ravel          concatenate
//	 <    box            —
//
// Addition and subtraction require equal shapes or a scalar on either
// side (broadcast). Reshape's contract is the one operation allowed to
// change the element count: the source buffer is truncated or repeated
// cyclically to fill the target exactly. Everything else that would
// break the shape/buffer invariant fails with a typed error.

package jay

type monadImpl func(w *Array) (*Array, error)
type dyadImpl func(a, w *Array) (*Array, error)

type verbEntry struct {
	monad monadImpl
	dyad  dyadImpl
}

// verbTable is the single source of truth for which arities exist.
var verbTable = map[rune]verbEntry{
	'+': {monad: identity, dyad: arithAs('+', func(x, y int64) int64 { return x + y })},
	'~': {monad: negateAs('~')},
	'-': {monad: negateAs('-'), dyad: arithAs('-', func(x, y int64) int64 { return x - y })},
	'#': {monad: tally, dyad: reshape},
	'{': {monad: shapeOf, dyad: index},
	',': {monad: ravel, dyad: concatenate},
	'<': {monad: box},
}

// applyMonad dispatches a monadic verb application.
func applyMonad(verb rune, w *Array) (*Array, error) {
	entry, ok := verbTable[verb]
	if !ok || entry.monad == nil {
		return nil, &UnsupportedVerbForm{Verb: verb, Arity: "monadic"}
	}
	return entry.monad(w)
}

// applyDyad dispatches a dyadic verb application.
func applyDyad(verb rune, a, w *Array) (*Array, error) {
	entry, ok := verbTable[verb]
	if !ok || entry.dyad == nil {
		return nil, &UnsupportedVerbForm{Verb: verb, Arity: "dyadic"}
	}
	return entry.dyad(a, w)
}

// ---- monads ----

func identity(w *Array) (*Array, error) {
	return w, nil
}

// negateAs builds the negate implementation for a given spelling so a
// boxed operand is reported against the verb actually used.
func negateAs(verb rune) monadImpl {
	return func(w *Array) (*Array, error) {
		elems := make([]Element, len(w.Elems))
		for i, e := range w.Elems {
			if e.Tag != ElInt {
				return nil, &UnsupportedVerbForm{Verb: verb, Arity: "monadic"}
			}
			elems[i] = IntElem(-e.Int())
		}
		return &Array{Shape: w.Shape.Clone(), Elems: elems}, nil
	}
}

func tally(w *Array) (*Array, error) {
	return Scalar(int64(w.Tally())), nil
}

func shapeOf(w *Array) (*Array, error) {
	dims := make([]int64, w.Shape.Rank())
	for i, d := range w.Shape {
		dims[i] = int64(d)
	}
	return Vector(dims...), nil
}

func ravel(w *Array) (*Array, error) {
	elems := make([]Element, len(w.Elems))
	copy(elems, w.Elems)
	return &Array{Shape: Shape{len(elems)}, Elems: elems}, nil
}

func box(w *Array) (*Array, error) {
	return BoxScalar(w), nil
}

// ---- dyads ----

// arithAs builds an element-wise arithmetic implementation for a given
// spelling so a boxed operand is reported against the verb actually
// used, not as a shape problem.
func arithAs(verb rune, op func(x, y int64) int64) dyadImpl {
	return func(a, w *Array) (*Array, error) {
		return zipElems(verb, a, w, op)
	}
}

// zipElems applies op element-wise. Shapes must match, or one operand
// must be a scalar broadcast over the other. Boxed elements have no
// arithmetic and fail as an unsupported form of the verb.
func zipElems(verb rune, a, w *Array, op func(x, y int64) int64) (*Array, error) {
	intAt := func(arr *Array, i int) (int64, error) {
		e := arr.Elems[i]
		if e.Tag != ElInt {
			return 0, &UnsupportedVerbForm{Verb: verb, Arity: "dyadic"}
		}
		return e.Int(), nil
	}

	switch {
	case a.IsScalar():
		x, err := intAt(a, 0)
		if err != nil {
			return nil, err
		}
		elems := make([]Element, len(w.Elems))
		for i := range w.Elems {
			y, err := intAt(w, i)
			if err != nil {
				return nil, err
			}
			elems[i] = IntElem(op(x, y))
		}
		return &Array{Shape: w.Shape.Clone(), Elems: elems}, nil

	case w.IsScalar():
		y, err := intAt(w, 0)
		if err != nil {
			return nil, err
		}
		elems := make([]Element, len(a.Elems))
		for i := range a.Elems {
			x, err := intAt(a, i)
			if err != nil {
				return nil, err
			}
			elems[i] = IntElem(op(x, y))
		}
		return &Array{Shape: a.Shape.Clone(), Elems: elems}, nil

	case a.Shape.Equal(w.Shape):
		elems := make([]Element, len(a.Elems))
		for i := range a.Elems {
			x, err := intAt(a, i)
			if err != nil {
				return nil, err
			}
			y, err := intAt(w, i)
			if err != nil {
				return nil, err
			}
			elems[i] = IntElem(op(x, y))
		}
		return &Array{Shape: a.Shape.Clone(), Elems: elems}, nil

	default:
		return nil, &ShapeMismatch{Left: a.Shape.Clone(), Right: w.Shape.Clone()}
	}
}

// reshape builds an array whose dimensions come from a's values and
// whose buffer is w's, truncated or cyclically repeated to fill the
// target exactly.
func reshape(a, w *Array) (*Array, error) {
	dims := make(Shape, 0, len(a.Elems))
	for _, e := range a.Elems {
		if e.Tag != ElInt || e.Int() < 0 {
			return nil, &InvalidReshape{FromTotal: len(w.Elems), ToTotal: -1}
		}
		dims = append(dims, int(e.Int()))
	}

	total := dims.Total()
	if total > 0 && len(w.Elems) == 0 {
		return nil, &InvalidReshape{FromTotal: 0, ToTotal: total}
	}

	elems := make([]Element, total)
	for i := 0; i < total; i++ {
		elems[i] = w.Elems[i%len(w.Elems)]
	}
	return &Array{Shape: dims, Elems: elems}, nil
}

// index selects positions of w named by the integers in a. With a
// rank-1 w the result's shape is a's shape; with rank >= 2 each index
// selects a leading-axis cell, and the cell shape is appended.
func index(a, w *Array) (*Array, error) {
	if w.IsScalar() {
		return nil, &IndexOutOfBounds{Index: 0, Length: 0}
	}

	length := w.Shape[0]
	cell := w.Shape[1:]
	cellSize := cell.Total()

	elems := make([]Element, 0, len(a.Elems)*cellSize)
	for _, e := range a.Elems {
		if e.Tag != ElInt {
			return nil, &IndexOutOfBounds{Index: 0, Length: length}
		}
		idx := e.Int()
		if idx < 0 || idx >= int64(length) {
			return nil, &IndexOutOfBounds{Index: idx, Length: length}
		}
		start := int(idx) * cellSize
		elems = append(elems, w.Elems[start:start+cellSize]...)
	}

	shape := append(a.Shape.Clone(), cell...)
	return &Array{Shape: shape, Elems: elems}, nil
}

// concatenate joins along the leading axis. Scalars and vectors join
// into a vector; equal-rank arrays join when their trailing dimensions
// match.
func concatenate(a, w *Array) (*Array, error) {
	if a.Shape.Rank() <= 1 && w.Shape.Rank() <= 1 {
		elems := make([]Element, 0, len(a.Elems)+len(w.Elems))
		elems = append(elems, a.Elems...)
		elems = append(elems, w.Elems...)
		return &Array{Shape: Shape{len(elems)}, Elems: elems}, nil
	}

	if a.Shape.Rank() != w.Shape.Rank() || !a.Shape[1:].Equal(w.Shape[1:]) {
		return nil, &ShapeMismatch{Left: a.Shape.Clone(), Right: w.Shape.Clone()}
	}

	elems := make([]Element, 0, len(a.Elems)+len(w.Elems))
	elems = append(elems, a.Elems...)
	elems = append(elems, w.Elems...)
	shape := a.Shape.Clone()
	shape[0] = a.Shape[0] + w.Shape[0]
	return &Array{Shape: shape, Elems: elems}, nil
}
