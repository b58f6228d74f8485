package loaders

import (
	"strings"
	"testing"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

func TestTokenize(t *testing.T) {
	input := `sphere { center <1, 2, 3> # trailing comment
  radius 0.5, solid <0.1 0.2 0.3> }
# full line comment
end`

	tokens, err := Tokenize(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []Token{
		{Kind: TokenWord, Text: "sphere", Line: 1},
		{Kind: TokenWord, Text: "center", Line: 1},
		{Kind: TokenVector, Text: "1, 2, 3", Line: 1},
		{Kind: TokenWord, Text: "radius", Line: 2},
		{Kind: TokenWord, Text: "0.5", Line: 2},
		{Kind: TokenWord, Text: "solid", Line: 2},
		{Kind: TokenVector, Text: "0.1 0.2 0.3", Line: 2},
		{Kind: TokenWord, Text: "end", Line: 4},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok != expected[i] {
			t.Errorf("Token %d: expected %+v, got %+v", i, expected[i], tok)
		}
	}
}

func TestTokenize_MultilineVector(t *testing.T) {
	tokens, err := Tokenize(strings.NewReader("a <1,\n2,\n3> b"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %v", tokens)
	}
	if tokens[1].Line != 1 || tokens[2].Line != 3 {
		t.Errorf("Expected vector on line 1 and b on line 3, got %d and %d", tokens[1].Line, tokens[2].Line)
	}
}

func TestTokenize_UnterminatedVector(t *testing.T) {
	if _, err := Tokenize(strings.NewReader("center <1, 2, 3")); err == nil {
		t.Errorf("Expected error for unterminated vector")
	}
}

func TestToken_Vector(t *testing.T) {
	tests := []struct {
		name        string
		token       Token
		expected    core.Vec3
		expectError bool
	}{
		{"commas", Token{Kind: TokenVector, Text: "1, -2, 3.5"}, core.NewVec3(1, -2, 3.5), false},
		{"spaces", Token{Kind: TokenVector, Text: "1 2 3"}, core.NewVec3(1, 2, 3), false},
		{"mixed", Token{Kind: TokenVector, Text: " 1,2  ,3 "}, core.NewVec3(1, 2, 3), false},
		{"exponent", Token{Kind: TokenVector, Text: "1e-3, 0, 0"}, core.NewVec3(0.001, 0, 0), false},
		{"too few", Token{Kind: TokenVector, Text: "1, 2"}, core.Vec3{}, true},
		{"too many", Token{Kind: TokenVector, Text: "1, 2, 3, 4"}, core.Vec3{}, true},
		{"not a number", Token{Kind: TokenVector, Text: "1, x, 3"}, core.Vec3{}, true},
		{"word token", Token{Kind: TokenWord, Text: "red"}, core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.token.Vector()
			if (err != nil) != tt.expectError {
				t.Fatalf("Expected error=%v, got %v", tt.expectError, err)
			}
			if v != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, v)
			}
		})
	}
}

func TestToken_Float(t *testing.T) {
	v, err := Token{Kind: TokenWord, Text: "-2.5"}.Float()
	if err != nil || v != -2.5 {
		t.Errorf("Expected -2.5, got %v %v", v, err)
	}
	if _, err := (Token{Kind: TokenWord, Text: "big"}).Float(); err == nil {
		t.Errorf("Expected error for non-numeric word")
	}
	if _, err := (Token{Kind: TokenVector, Text: "1, 2, 3"}).Float(); err == nil {
		t.Errorf("Expected error for vector token")
	}
}
