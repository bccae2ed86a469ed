// Completion: 100% - Recursive descent parser complete
package jit

// Grammar, one token of lookahead, left-associative:
//
//	Expression := Term
//	Term       := Factor (('+' | '-') Factor)*
//	Factor     := Primary (('*' | '/') Primary)*
//	Primary    := Number | '(' Expression ')'

// Parser builds an expression tree from the token stream of a Lexer
type Parser struct {
	lexer    *Lexer
	source   string
	current  Token
	previous Token
	depth    int
	maxDepth int
	lenient  bool
}

// NewParser creates a parser over source. Lenient mode accepts a missing
// closing parenthesis and ignores anything after a complete expression.
func NewParser(source string, opts Options) *Parser {
	p := &Parser{
		lexer:    NewLexer(source),
		source:   source,
		maxDepth: opts.maxDepth(),
		lenient:  opts.Lenient,
	}
	p.current = p.lexer.NextToken()
	return p
}

// Parse parses source with the given options
func Parse(source string, opts Options) (Node, error) {
	return NewParser(source, opts).Parse()
}

// Parse parses a complete expression
func (p *Parser) Parse() (Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.lenient && !p.check(TOKEN_EOF) {
		return nil, p.unexpected("end of input")
	}
	return expr, nil
}

func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lexer.NextToken()
}

func (p *Parser) check(t TokenType) bool {
	return p.current.Type == t
}

// match consumes the current token if it has type t
func (p *Parser) match(t TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// unexpected reports the current token. A TOKEN_ERROR is always reported as
// a lex error, whatever the parser was looking for.
func (p *Parser) unexpected(expected string) error {
	tok := p.current
	switch tok.Type {
	case TOKEN_ERROR:
		return newError(KindLex, p.source, tok, "unexpected character %q", tok.Text)
	case TOKEN_EOF:
		return newError(KindParse, p.source, tok, "expected %s, got end of input", expected)
	default:
		return newError(KindParse, p.source, tok, "expected %s, got %s", expected, tok)
	}
}

func (p *Parser) parseExpression() (Node, error) {
	return p.parseTerm()
}

// parseTerm handles + and - (lower precedence)
func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.match(TOKEN_PLUS) || p.match(TOKEN_MINUS) {
		op := p.previous
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op.Text[0], Left: left, Right: right, Offset: op.Offset}
	}

	return left, nil
}

// parseFactor handles * and / (higher precedence)
func (p *Parser) parseFactor() (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.match(TOKEN_STAR) || p.match(TOKEN_SLASH) {
		op := p.previous
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op.Text[0], Left: left, Right: right, Offset: op.Offset}
	}

	return left, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	if p.match(TOKEN_NUMBER) {
		return &NumberLiteral{Value: p.previous.Value}, nil
	}

	if p.match(TOKEN_LPAREN) {
		open := p.previous
		p.depth++
		if p.depth > p.maxDepth {
			return nil, newError(KindParse, p.source, open, "parentheses nested deeper than %d", p.maxDepth)
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.depth--
		if !p.match(TOKEN_RPAREN) && !p.lenient {
			return nil, p.unexpected("')'")
		}
		return expr, nil
	}

	return nil, p.unexpected("number or '('")
}
