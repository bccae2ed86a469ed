package jit

import "fmt"

// TokenType identifies the kind of a lexical token
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_ERROR
	TOKEN_NUMBER // 42
	TOKEN_PLUS   // +
	TOKEN_MINUS  // -
	TOKEN_STAR   // *
	TOKEN_SLASH  // /
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
)

func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "end of input"
	case TOKEN_ERROR:
		return "error"
	case TOKEN_NUMBER:
		return "number"
	case TOKEN_PLUS:
		return "'+'"
	case TOKEN_MINUS:
		return "'-'"
	case TOKEN_STAR:
		return "'*'"
	case TOKEN_SLASH:
		return "'/'"
	case TOKEN_LPAREN:
		return "'('"
	case TOKEN_RPAREN:
		return "')'"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a single lexical token together with its span in the source
type Token struct {
	Type   TokenType
	Value  int64  // Only set for TOKEN_NUMBER
	Text   string // The source text of the token
	Offset int    // Byte offset of the first character
}

// Length returns the length of the token's source text
func (t Token) Length() int {
	return len(t.Text)
}

func (t Token) String() string {
	switch t.Type {
	case TOKEN_NUMBER:
		return fmt.Sprintf("number %d", t.Value)
	case TOKEN_EOF:
		return t.Type.String()
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}
