// resolve.go — the two tree-rewrite passes between parsing and
// evaluation.
//
// Resolve turns every *Ambiguous verb node into *Monad or *Dyad from
// its position alone: no left operand means monadic, both operands
// mean dyadic. A verb that ends up with neither operand is a
// *ContextError. Whether the verb actually has a meaning at the
// resolved arity is the verb table's call, checked at dispatch time.
//
// Reassociate then normalizes dyadic chains to J's right-to-left
// order: `A op1 B op2 C` must bind as `A op1 (B op2 C)`, so any
// left-nested pair `(A op1 B) op2 C` is rotated into right-nesting.
// Parenthesised subtrees are Grouped and never rotated across. The
// parser's right-recursive grammar already emits right-nested chains,
// making the pass an identity on its output — it exists as the
// explicit, independently testable contract for the evaluation order.

package jay

// Resolve rewrites ambiguous verb nodes bottom-up into monadic or
// dyadic applications.
func Resolve(n Node) (Node, error) {
	switch t := n.(type) {
	case *Literal, *Ident:
		return n, nil

	case *Assign:
		rhs, err := Resolve(t.Right)
		if err != nil {
			return nil, err
		}
		return &Assign{Name: t.Name, Right: rhs, Offset: t.Offset}, nil

	case *Monad:
		rhs, err := Resolve(t.Right)
		if err != nil {
			return nil, err
		}
		return &Monad{Verb: t.Verb, Right: rhs, Offset: t.Offset}, nil

	case *Dyad:
		lhs, err := Resolve(t.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := Resolve(t.Right)
		if err != nil {
			return nil, err
		}
		return &Dyad{Verb: t.Verb, Left: lhs, Right: rhs, Offset: t.Offset, Grouped: t.Grouped}, nil

	case *Ambiguous:
		switch {
		case t.Left == nil && t.Right != nil:
			rhs, err := Resolve(t.Right)
			if err != nil {
				return nil, err
			}
			return &Monad{Verb: t.Verb, Right: rhs, Offset: t.Offset}, nil

		case t.Left != nil && t.Right != nil:
			lhs, err := Resolve(t.Left)
			if err != nil {
				return nil, err
			}
			rhs, err := Resolve(t.Right)
			if err != nil {
				return nil, err
			}
			return &Dyad{Verb: t.Verb, Left: lhs, Right: rhs, Offset: t.Offset, Grouped: t.Grouped}, nil

		default:
			return nil, &ContextError{Verb: t.Verb}
		}

	default:
		return nil, &ContextError{Verb: 0}
	}
}

// Reassociate rotates left-nested dyadic chains into right-nested
// ones, bottom-up. Grouped nodes are atomic. The pass is idempotent.
func Reassociate(n Node) Node {
	switch t := n.(type) {
	case *Assign:
		t.Right = Reassociate(t.Right)
		return t

	case *Monad:
		t.Right = Reassociate(t.Right)
		return t

	case *Dyad:
		t.Left = Reassociate(t.Left)
		t.Right = Reassociate(t.Right)
		return rotate(t)

	default:
		return n
	}
}

// rotate rewrites Dyad(op2, Dyad(op1, A, B), C) as
// Dyad(op1, A, Dyad(op2, B, C)) until the left child is no longer an
// ungrouped dyad. The rightmost pair of the original chain ends up
// innermost, i.e. it evaluates first.
func rotate(d *Dyad) *Dyad {
	for {
		inner, ok := d.Left.(*Dyad)
		if !ok || inner.Grouped {
			return d
		}
		d = &Dyad{
			Verb:   inner.Verb,
			Left:   inner.Left,
			Right:  rotate(&Dyad{Verb: d.Verb, Left: inner.Right, Right: d.Right, Offset: d.Offset}),
			Offset: inner.Offset,
		}
	}
}

// ParseResolved runs the full front half of the pipeline: tokenize,
// parse, resolve, re-associate. The returned tree contains only
// Literal, Ident, Monad, Dyad and Assign nodes.
func ParseResolved(src string) (Node, error) {
	ast, err := Parse(src)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(ast)
	if err != nil {
		return nil, err
	}
	return Reassociate(resolved), nil
}
