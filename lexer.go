// lexer.go — tokenizer for jay expressions.
//
// The scanner is deliberately total: it never returns an error.
// Characters outside the language pass through verbatim as ILLEGAL
// tokens so the parser can report an "unsupported character" with the
// exact byte offset (errors.go renders the caret).
//
// Whitespace is not discarded. A blank run between two tokens becomes
// a single SPACE token, which is what lets the parser tell the vector
// literal "1 2" apart from "1+2". Digit runs collapse into one NUMBER
// token; there is no sign or decimal handling here — unary minus is a
// verb, and the language has no floats.

package jay

import "strconv"

// TokenType represents the kind of token.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	NUMBER // digit run, base-10 int64 payload
	VERB   // one of + ~ - # { , <
	IDENT  // single lowercase letter a-z
	ASSIGN // "="
	LROUND // "("
	RROUND // ")"
	SPACE  // a run of blanks between tokens
)

// Token is a lexical token with its byte offset in the source.
type Token struct {
	Type   TokenType
	Lexeme string
	Num    int64 // parsed value for NUMBER
	Offset int
}

// verbChars is the fixed verb table at the lexical level. The
// evaluator's verb table (verbs.go) decides which arities exist.
const verbChars = "+~-#{,<"

func isVerbChar(b byte) bool {
	for i := 0; i < len(verbChars); i++ {
		if verbChars[i] == b {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return b >= 'a' && b <= 'z' }
func isBlank(b byte) bool  { return b == ' ' || b == '\t' }

// Lexer scans a jay source string into tokens.
type Lexer struct {
	src    string
	cur    int
	tokens []Token
}

// NewLexer creates a lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) add(tt TokenType, start int) Token {
	tok := Token{Type: tt, Lexeme: l.src[start:l.cur], Offset: start}
	l.tokens = append(l.tokens, tok)
	return tok
}

// Scan tokenizes the entire source and returns the tokens, EOF
// included. It cannot fail.
func (l *Lexer) Scan() []Token {
	for !l.isAtEnd() {
		start := l.cur
		ch := l.src[l.cur]

		switch {
		case isBlank(ch):
			for !l.isAtEnd() && isBlank(l.src[l.cur]) {
				l.cur++
			}
			// Leading and trailing blanks separate nothing.
			if len(l.tokens) > 0 && !l.isAtEnd() {
				l.add(SPACE, start)
			}

		case isDigit(ch):
			for !l.isAtEnd() && isDigit(l.src[l.cur]) {
				l.cur++
			}
			tok := l.add(NUMBER, start)
			n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
			if err != nil {
				// Overflowing digit runs surface as ILLEGAL so the
				// parser reports them instead of truncating.
				l.tokens[len(l.tokens)-1].Type = ILLEGAL
			} else {
				l.tokens[len(l.tokens)-1].Num = n
			}

		case isVerbChar(ch):
			l.cur++
			l.add(VERB, start)

		case isLetter(ch):
			l.cur++
			l.add(IDENT, start)

		case ch == '=':
			l.cur++
			l.add(ASSIGN, start)

		case ch == '(':
			l.cur++
			l.add(LROUND, start)

		case ch == ')':
			l.cur++
			l.add(RROUND, start)

		default:
			l.cur++
			l.add(ILLEGAL, start)
		}
	}

	l.tokens = append(l.tokens, Token{Type: EOF, Offset: len(l.src)})
	return l.tokens
}

// Tokenize is the package-level convenience over NewLexer + Scan.
func Tokenize(src string) []Token {
	return NewLexer(src).Scan()
}
