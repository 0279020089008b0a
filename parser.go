// parser.go — context-free pass over the token stream.
//
// Grammar (flat precedence, every verb binds alike):
//
//	expression    := IDENT '=' expression
//	               | term (VERB expression)?
//	term          := VERB term
//	               | vectorLiteral
//	               | IDENT
//	               | '(' expression ')'
//	vectorLiteral := NUMBER (SPACE NUMBER)*
//
// Every verb occurrence becomes an *Ambiguous node; whether it is
// monadic or dyadic is decided later by the resolver, not here.
// Parenthesised groups are ordinary sub-expressions marked Grouped so
// the re-association pass never restructures across them.
//
// A verb in leading position binds only the term immediately to its
// right: `~3+2` is `(~3)+2`, never `~(3+2)`. That is why the VERB
// branch of `term` recurses into `term`, not `expression`.
//
// The right recursion in `expression` means chains like `1+2+3`
// already come out right-nested, matching J's right-to-left order;
// resolve.go still runs the explicit rotation over the result.

package jay

// Parse tokenizes and parses a source string into an ambiguous tree.
func Parse(src string) (Node, error) {
	p := &parser{toks: Tokenize(src)}
	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if !p.atEnd() {
		g := p.peek()
		if g.Type == ILLEGAL {
			return nil, illegalAt(g)
		}
		return nil, &SyntaxError{Offset: g.Offset, Reason: "trailing tokens after expression"}
	}
	return node, nil
}

type parser struct {
	toks []Token
	i    int
}

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) peekN(n int) Token {
	if p.i+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i+n]
}

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) skipSpaces() {
	for p.peek().Type == SPACE {
		p.i++
	}
}

func illegalAt(t Token) error {
	return &LexError{Offset: t.Offset, Char: rune(t.Lexeme[0])}
}

// danglingVerb re-points a missing-operand failure at the verb that
// lacked the operand. Only the immediate "expected expression" hit is
// converted; a nested verb's already-converted error keeps its more
// precise offset.
func (p *parser) danglingVerb(err error, verb Token) error {
	if se, ok := err.(*SyntaxError); ok && p.atEnd() && se.Reason == "expected expression" {
		return &SyntaxError{Offset: verb.Offset, Reason: "verb with no operand"}
	}
	return err
}

func (p *parser) expression() (Node, error) {
	p.skipSpaces()

	// IDENT '=' expression, with optional blanks around '='.
	if p.peek().Type == IDENT {
		j := p.i + 1
		for j < len(p.toks) && p.toks[j].Type == SPACE {
			j++
		}
		if j < len(p.toks) && p.toks[j].Type == ASSIGN {
			name := p.peek()
			p.i = j + 1
			rhs, err := p.expression()
			if err != nil {
				return nil, err
			}
			return &Assign{Name: rune(name.Lexeme[0]), Right: rhs, Offset: name.Offset}, nil
		}
	}

	term, err := p.term()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if p.peek().Type == VERB {
		v := p.peek()
		p.i++
		rhs, err := p.expression()
		if err != nil {
			return nil, p.danglingVerb(err, v)
		}
		return &Ambiguous{
			Verb:   rune(v.Lexeme[0]),
			Left:   term,
			Right:  rhs,
			Offset: v.Offset,
		}, nil
	}
	return term, nil
}

func (p *parser) term() (Node, error) {
	p.skipSpaces()
	t := p.peek()

	switch t.Type {
	case VERB:
		p.i++
		rhs, err := p.term()
		if err != nil {
			return nil, p.danglingVerb(err, t)
		}
		return &Ambiguous{Verb: rune(t.Lexeme[0]), Right: rhs, Offset: t.Offset}, nil

	case NUMBER:
		return p.vectorLiteral(), nil

	case IDENT:
		p.i++
		return &Ident{Name: rune(t.Lexeme[0]), Offset: t.Offset}, nil

	case LROUND:
		p.i++
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if !p.match(RROUND) {
			return nil, &SyntaxError{Offset: p.peek().Offset, Reason: "expected ')'"}
		}
		markGrouped(inner)
		return inner, nil

	case RROUND:
		return nil, &SyntaxError{Offset: t.Offset, Reason: "unmatched ')'"}

	case ILLEGAL:
		return nil, illegalAt(t)

	case EOF:
		return nil, &SyntaxError{Offset: t.Offset, Reason: "expected expression"}

	default:
		return nil, &SyntaxError{Offset: t.Offset, Reason: "unexpected token " + t.Lexeme}
	}
}

// vectorLiteral collapses NUMBER (SPACE NUMBER)* into one Literal:
// a scalar for a single number, a rank-1 vector otherwise.
func (p *parser) vectorLiteral() Node {
	first := p.peek()
	p.i++
	nums := []int64{first.Num}

	for p.peek().Type == SPACE && p.peekN(1).Type == NUMBER {
		p.i++ // SPACE
		nums = append(nums, p.peek().Num)
		p.i++
	}

	var v *Array
	if len(nums) == 1 {
		v = Scalar(nums[0])
	} else {
		v = Vector(nums...)
	}
	return &Literal{Value: v, Offset: first.Offset}
}

// markGrouped pins a parenthesised subtree so re-association treats it
// as atomic. Only verb nodes can be restructured, so only they carry
// the flag.
func markGrouped(n Node) {
	switch t := n.(type) {
	case *Ambiguous:
		t.Grouped = true
	case *Dyad:
		t.Grouped = true
	}
}
