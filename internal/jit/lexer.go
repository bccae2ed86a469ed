// Completion: 100% - Lexer complete
package jit

import (
	"iter"
	"unicode/utf8"
)

// Lexer scans arithmetic source text one token at a time. It only moves
// forward: there is no way to rewind past the current position.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isWhitespace(l.input[l.pos]) {
		l.pos++
	}
}

// NextToken returns the next token. After the end of input it keeps
// returning TOKEN_EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	start := l.pos

	if l.pos >= len(l.input) {
		return Token{Type: TOKEN_EOF, Offset: start}
	}

	ch := l.peek()
	if isDigit(ch) {
		// No overflow check: literals wider than 64 bits wrap
		var value uint64
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			value = value*10 + uint64(l.input[l.pos]-'0')
			l.pos++
		}
		return Token{Type: TOKEN_NUMBER, Value: int64(value), Text: l.input[start:l.pos], Offset: start}
	}

	l.pos++
	tok := Token{Text: l.input[start:l.pos], Offset: start}
	switch ch {
	case '+':
		tok.Type = TOKEN_PLUS
	case '-':
		tok.Type = TOKEN_MINUS
	case '*':
		tok.Type = TOKEN_STAR
	case '/':
		tok.Type = TOKEN_SLASH
	case '(':
		tok.Type = TOKEN_LPAREN
	case ')':
		tok.Type = TOKEN_RPAREN
	default:
		// Report a non-ASCII character whole
		_, size := utf8.DecodeRuneInString(l.input[start:])
		tok.Type = TOKEN_ERROR
		tok.Text = l.input[start : start+size]
		l.pos = start + size
	}
	return tok
}

// Tokens returns the remaining tokens as a sequence. The sequence ends after
// yielding TOKEN_EOF or TOKEN_ERROR.
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := l.NextToken()
			if !yield(tok) || tok.Type == TOKEN_EOF || tok.Type == TOKEN_ERROR {
				return
			}
		}
	}
}
