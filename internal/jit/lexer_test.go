package jit

import (
	"math"
	"testing"
)

func collect(src string) []Token {
	var toks []Token
	for tok := range NewLexer(src).Tokens() {
		toks = append(toks, tok)
	}
	return toks
}

func TestLexerTokens(t *testing.T) {
	toks := collect(" (12 +3)*\t4 -\r\n5/6 ")
	expected := []TokenType{
		TOKEN_LPAREN, TOKEN_NUMBER, TOKEN_PLUS, TOKEN_NUMBER, TOKEN_RPAREN,
		TOKEN_STAR, TOKEN_NUMBER, TOKEN_MINUS, TOKEN_NUMBER, TOKEN_SLASH, TOKEN_NUMBER, TOKEN_EOF,
	}
	if len(toks) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(toks), toks)
	}
	for i, typ := range expected {
		if toks[i].Type != typ {
			t.Errorf("Token %d: expected %s, got %s", i, typ, toks[i].Type)
		}
	}
	if toks[1].Value != 12 || toks[1].Text != "12" || toks[1].Offset != 2 {
		t.Errorf("Unexpected number token: %+v", toks[1])
	}
}

func TestLexerEOFRepeats(t *testing.T) {
	l := NewLexer("  ")
	for range 3 {
		if tok := l.NextToken(); tok.Type != TOKEN_EOF {
			t.Fatalf("Expected EOF, got %s", tok.Type)
		}
	}
}

func TestLexerErrorToken(t *testing.T) {
	tests := []struct {
		src    string
		text   string
		offset int
	}{
		{"5 + x", "x", 4},
		{"1 % 2", "%", 2},
		{"2 × 3", "×", 2},
	}
	for _, tt := range tests {
		toks := collect(tt.src)
		last := toks[len(toks)-1]
		if last.Type != TOKEN_ERROR {
			t.Errorf("%q: expected error token, got %s", tt.src, last.Type)
			continue
		}
		if last.Text != tt.text || last.Offset != tt.offset {
			t.Errorf("%q: expected %q at %d, got %q at %d", tt.src, tt.text, tt.offset, last.Text, last.Offset)
		}
	}
}

func TestLexerNumberWraps(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"0", 0},
		{"007", 7},
		{"4294967295", math.MaxUint32},
		{"9223372036854775807", math.MaxInt64},
		{"9223372036854775808", math.MinInt64},
		{"18446744073709551616", 0},
	}
	for _, tt := range tests {
		tok := NewLexer(tt.src).NextToken()
		if tok.Type != TOKEN_NUMBER || tok.Value != tt.want {
			t.Errorf("%s: expected %d, got %s %d", tt.src, tt.want, tok.Type, tok.Value)
		}
	}
}
