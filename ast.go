// ast.go — the expression tree.
//
// Nodes form a closed set: Literal, Ident, Ambiguous, Monad, Dyad,
// Assign. Ambiguous is transient — the parser produces it for every
// verb occurrence, the resolver (resolve.go) rewrites it into Monad or
// Dyad, and it must never reach the evaluator. Each node exclusively
// owns its operand subtrees; a tree is built once per evaluation and
// discarded afterwards.

package jay

// Node is the sealed interface over all expression tree variants.
type Node interface {
	node()
	// Pos returns the byte offset of the construct in the source.
	Pos() int
}

// Literal is an already-materialized constant: a number or a
// space-separated number sequence.
type Literal struct {
	Value  *Array
	Offset int
}

// Ident is a variable reference, resolved against the environment at
// evaluation time.
type Ident struct {
	Name   rune // single lowercase letter
	Offset int
}

// Ambiguous is a verb occurrence whose arity is not yet known. Left
// is nil for a verb in leading position.
type Ambiguous struct {
	Verb   rune
	Left   Node // may be nil
	Right  Node // may be nil
	Offset int
	// Grouped marks a parenthesised occurrence; it is carried onto the
	// resolved Dyad so re-association treats the subtree as atomic.
	Grouped bool
}

// Monad is a resolved one-operand verb application.
type Monad struct {
	Verb   rune
	Right  Node
	Offset int
}

// Dyad is a resolved two-operand verb application.
type Dyad struct {
	Verb   rune
	Left   Node
	Right  Node
	Offset int
	// Grouped marks a parenthesised subtree; the re-association pass
	// treats it as atomic.
	Grouped bool
}

// Assign binds a variable: it evaluates Right, stores the result under
// Name, and yields that same value as the expression result.
type Assign struct {
	Name   rune
	Right  Node
	Offset int
}

func (*Literal) node()   {}
func (*Ident) node()     {}
func (*Ambiguous) node() {}
func (*Monad) node()     {}
func (*Dyad) node()      {}
func (*Assign) node()    {}

func (n *Literal) Pos() int   { return n.Offset }
func (n *Ident) Pos() int     { return n.Offset }
func (n *Ambiguous) Pos() int { return n.Offset }
func (n *Monad) Pos() int     { return n.Offset }
func (n *Dyad) Pos() int      { return n.Offset }
func (n *Assign) Pos() int    { return n.Offset }
