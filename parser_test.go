package jay

import (
	"testing"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	n, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return n
}

func wantParseSyntaxError(t *testing.T, src string) *SyntaxError {
	t.Helper()
	_, err := Parse(src)
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("Parse(%q): want *SyntaxError, got %v (%T)", src, err, err)
	}
	return se
}

func Test_Parser_ScalarLiteral(t *testing.T) {
	n := mustParse(t, "42")
	lit, ok := n.(*Literal)
	if !ok {
		t.Fatalf("want *Literal, got %T", n)
	}
	if v, ok := lit.Value.ScalarInt(); !ok || v != 42 {
		t.Fatalf("want scalar 42, got %+v", lit.Value)
	}
}

func Test_Parser_VectorLiteral_SpaceSeparated(t *testing.T) {
	n := mustParse(t, "1 2 3")
	lit := n.(*Literal)
	if !lit.Value.Equal(Vector(1, 2, 3)) {
		t.Fatalf("want 1 2 3, got %s", FormatValue(lit.Value))
	}
}

func Test_Parser_InfixVerb_AmbiguousWithBothOperands(t *testing.T) {
	n := mustParse(t, "1+2")
	amb, ok := n.(*Ambiguous)
	if !ok || amb.Verb != '+' || amb.Left == nil || amb.Right == nil {
		t.Fatalf("want ambiguous + with both operands, got %#v", n)
	}
}

func Test_Parser_LeadingVerb_NoLeftOperand(t *testing.T) {
	n := mustParse(t, "~3")
	amb := n.(*Ambiguous)
	if amb.Verb != '~' || amb.Left != nil || amb.Right == nil {
		t.Fatalf("want leading ~ with right operand only, got %#v", amb)
	}
}

func Test_Parser_LeadingVerb_BindsOnlyItsTerm(t *testing.T) {
	// ~3+2 must come out as (~3)+2: the + node on top.
	n := mustParse(t, "~3+2")
	top := n.(*Ambiguous)
	if top.Verb != '+' {
		t.Fatalf("want + on top, got %q", top.Verb)
	}
	left := top.Left.(*Ambiguous)
	if left.Verb != '~' || left.Left != nil {
		t.Fatalf("want leading ~ as left operand, got %#v", top.Left)
	}
}

func Test_Parser_Chain_RightNested(t *testing.T) {
	n := mustParse(t, "1+2+3")
	top := n.(*Ambiguous)
	rhs, ok := top.Right.(*Ambiguous)
	if !ok || rhs.Verb != '+' {
		t.Fatalf("want right-nested chain, got %#v", top)
	}
	if _, ok := top.Left.(*Literal); !ok {
		t.Fatalf("want literal on the far left, got %T", top.Left)
	}
}

func Test_Parser_Parens_MarkGrouped(t *testing.T) {
	n := mustParse(t, "(1+2)+3")
	top := n.(*Ambiguous)
	left := top.Left.(*Ambiguous)
	if !left.Grouped {
		t.Fatalf("parenthesised subtree must be marked grouped")
	}
	if top.Grouped {
		t.Fatalf("outer node must not be grouped")
	}
}

func Test_Parser_Assignment(t *testing.T) {
	n := mustParse(t, "x = 1 2 3")
	as, ok := n.(*Assign)
	if !ok || as.Name != 'x' {
		t.Fatalf("want assignment to x, got %#v", n)
	}
	if _, ok := as.Right.(*Literal); !ok {
		t.Fatalf("want literal rhs, got %T", as.Right)
	}
}

func Test_Parser_Assignment_ResultUsableInChain(t *testing.T) {
	n := mustParse(t, "1+(x=2)")
	top := n.(*Ambiguous)
	if _, ok := top.Right.(*Assign); !ok {
		t.Fatalf("want assignment on the right, got %T", top.Right)
	}
}

func Test_Parser_Identifier_Operand(t *testing.T) {
	n := mustParse(t, "x+1")
	top := n.(*Ambiguous)
	id, ok := top.Left.(*Ident)
	if !ok || id.Name != 'x' {
		t.Fatalf("want ident x on the left, got %#v", top.Left)
	}
}

func Test_Parser_Errors_UnmatchedOpenParen(t *testing.T) {
	se := wantParseSyntaxError(t, "(1+2")
	if se.Offset != 4 {
		t.Fatalf("want offset 4, got %d", se.Offset)
	}
}

func Test_Parser_Errors_UnmatchedCloseParen(t *testing.T) {
	se := wantParseSyntaxError(t, ")")
	if se.Offset != 0 {
		t.Fatalf("want offset 0, got %d", se.Offset)
	}
}

func Test_Parser_Errors_DanglingVerb(t *testing.T) {
	se := wantParseSyntaxError(t, "~")
	if se.Offset != 0 {
		t.Fatalf("want dangling-verb offset 0, got %d", se.Offset)
	}
}

func Test_Parser_Errors_DanglingInfixVerb_PointsAtTheVerb(t *testing.T) {
	se := wantParseSyntaxError(t, "1+")
	if se.Offset != 1 || se.Reason != "verb with no operand" {
		t.Fatalf("want 'verb with no operand' at 1, got %q at %d", se.Reason, se.Offset)
	}
}

func Test_Parser_Errors_NestedDanglingVerb_KeepsInnerOffset(t *testing.T) {
	// 1+~: the ~ is the verb missing an operand, not the +.
	se := wantParseSyntaxError(t, "1+~")
	if se.Offset != 2 {
		t.Fatalf("want offset 2, got %d", se.Offset)
	}
}

func Test_Parser_Errors_EmptyInput(t *testing.T) {
	wantParseSyntaxError(t, "")
	wantParseSyntaxError(t, "   ")
}

func Test_Parser_Errors_TrailingTokens(t *testing.T) {
	se := wantParseSyntaxError(t, "(1+2)3")
	if se.Offset != 5 {
		t.Fatalf("want offset 5, got %d", se.Offset)
	}
}

func Test_Parser_Errors_UnsupportedCharacter_Positioned(t *testing.T) {
	_, err := Parse("1*2")
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %v (%T)", err, err)
	}
	if le.Offset != 1 || le.Char != '*' {
		t.Fatalf("want '*' at 1, got %+v", le)
	}
}
