// errors.go — typed evaluation errors and caret-snippet rendering.
//
// Every failure path in the pipeline produces one of the exported
// error kinds below; nothing is swallowed and nothing falls back to a
// zero value. Kinds that point at a place in the source carry a byte
// Offset. WrapErrorWithSource recognizes those kinds and returns a new
// error whose message includes the offending line with a caret under
// the offset:
//
//	syntax error at 4: expected ')'
//
//	  | (1+2
//	  |     ^
//
// Errors without an offset (shape conflicts, undefined variables, ...)
// pass through unchanged.

package jay

import (
	"fmt"
	"strings"
)

// LexError reports a character the language does not know about.
type LexError struct {
	Offset int
	Char   rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unsupported character %q at %d", e.Char, e.Offset)
}

// SyntaxError reports a malformed expression: unmatched parenthesis,
// dangling verb, trailing tokens, empty input.
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Offset, e.Reason)
}

// ContextError reports a verb whose monadic/dyadic role could not be
// resolved from its position.
type ContextError struct {
	Verb rune
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("cannot resolve context for verb %q", e.Verb)
}

// UndefinedVariable reports a read of a never-assigned identifier.
type UndefinedVariable struct {
	Name rune
}

func (e *UndefinedVariable) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// UnsupportedVerbForm reports a verb that exists but has no meaning at
// the attempted arity (e.g. dyadic '~').
type UnsupportedVerbForm struct {
	Verb  rune
	Arity string // "monadic" or "dyadic"
}

func (e *UnsupportedVerbForm) Error() string {
	return fmt.Sprintf("verb %q has no %s form", e.Verb, e.Arity)
}

// ShapeMismatch reports two operand shapes that cannot be combined.
type ShapeMismatch struct {
	Left  Shape
	Right Shape
}

func (e *ShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %v vs %v", []int(e.Left), []int(e.Right))
}

// IndexOutOfBounds reports an index outside the indexable range.
type IndexOutOfBounds struct {
	Index  int64
	Length int
}

func (e *IndexOutOfBounds) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Length)
}

// InvalidReshape reports a reshape whose source buffer cannot fill the
// target (empty source, negative dimension).
type InvalidReshape struct {
	FromTotal int
	ToTotal   int
}

func (e *InvalidReshape) Error() string {
	return fmt.Sprintf("cannot reshape %d elements to fill %d", e.FromTotal, e.ToTotal)
}

// WrapErrorWithSource augments offset-carrying errors with a caret
// snippet of the source. Other errors are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet(src, e.Offset, e.Error()))
	case *SyntaxError:
		return fmt.Errorf("%s", caretSnippet(src, e.Offset, e.Error()))
	default:
		return err
	}
}

// caretSnippet renders the line containing offset with a caret under
// the offending column. Offsets are clamped so a stale or past-the-end
// offset still renders safely.
func caretSnippet(src string, offset int, msg string) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	lineEnd := strings.IndexByte(src[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(src)
	} else {
		lineEnd += lineStart
	}

	var b strings.Builder
	b.WriteString(msg)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  | %s\n", src[lineStart:lineEnd])
	fmt.Fprintf(&b, "  | %s^\n", strings.Repeat(" ", offset-lineStart))
	return b.String()
}
