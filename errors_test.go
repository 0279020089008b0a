package jay

import (
	"strings"
	"testing"
)

func Test_Errors_MessagesNameTheDetail(t *testing.T) {
	cases := []struct {
		err  error
		want []string
	}{
		{&LexError{Offset: 1, Char: '*'}, []string{"'*'", "1"}},
		{&SyntaxError{Offset: 4, Reason: "expected ')'"}, []string{"syntax error", "4", "expected ')'"}},
		{&ContextError{Verb: '#'}, []string{"'#'", "context"}},
		{&UndefinedVariable{Name: 'q'}, []string{"'q'", "undefined"}},
		{&UnsupportedVerbForm{Verb: '~', Arity: "dyadic"}, []string{"'~'", "dyadic"}},
		{&ShapeMismatch{Left: Shape{2}, Right: Shape{3}}, []string{"[2]", "[3]"}},
		{&IndexOutOfBounds{Index: 4, Length: 3}, []string{"4", "3"}},
		{&InvalidReshape{FromTotal: 0, ToTotal: 3}, []string{"0", "3"}},
	}
	for _, c := range cases {
		msg := c.err.Error()
		for _, frag := range c.want {
			if !strings.Contains(msg, frag) {
				t.Fatalf("%T message %q missing %q", c.err, msg, frag)
			}
		}
	}
}

func Test_Errors_CaretSnippet_PointsAtOffset(t *testing.T) {
	got := caretSnippet("(1+2", 4, "syntax error at 4: expected ')'")
	want := "syntax error at 4: expected ')'\n\n  | (1+2\n  |     ^\n"
	if got != want {
		t.Fatalf("want:\n%q\ngot:\n%q", want, got)
	}
}

func Test_Errors_CaretSnippet_ClampsBadOffsets(t *testing.T) {
	// Must not panic or slice out of range for stale offsets.
	for _, off := range []int{-5, 0, 99} {
		s := caretSnippet("1+2", off, "msg")
		if !strings.Contains(s, "1+2") || !strings.Contains(s, "^") {
			t.Fatalf("offset %d: malformed snippet %q", off, s)
		}
	}
}

func Test_Errors_Wrap_AddsSnippetForOffsetKinds(t *testing.T) {
	lex := WrapErrorWithSource(&LexError{Offset: 1, Char: '*'}, "1*2")
	if !strings.Contains(lex.Error(), "  | 1*2") {
		t.Fatalf("lex error not wrapped: %q", lex.Error())
	}
	syn := WrapErrorWithSource(&SyntaxError{Offset: 0, Reason: "empty input"}, "")
	if !strings.Contains(syn.Error(), "^") {
		t.Fatalf("syntax error not wrapped: %q", syn.Error())
	}
}

func Test_Errors_Wrap_PassesThroughOtherKinds(t *testing.T) {
	orig := &ShapeMismatch{Left: Shape{2}, Right: Shape{3}}
	if got := WrapErrorWithSource(orig, "1 2+1 2 3"); got != error(orig) {
		t.Fatalf("want identical error back, got %v (%T)", got, got)
	}
	uv := &UndefinedVariable{Name: 'z'}
	if got := WrapErrorWithSource(uv, "z"); got != error(uv) {
		t.Fatalf("want identical error back, got %v (%T)", got, got)
	}
}
