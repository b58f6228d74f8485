package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// TokenKind distinguishes plain words from <...> vectors
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenVector
)

// Token is one lexical element of a scene or triangle file
type Token struct {
	Kind TokenKind
	Text string // Word text, or the contents between < and > for vectors
	Line int    // 1-based line number
}

func (t Token) String() string {
	if t.Kind == TokenVector {
		return "<" + t.Text + ">"
	}
	return t.Text
}

// Vector parses a vector token into three components. Components may be
// separated by commas, whitespace or both.
func (t Token) Vector() (core.Vec3, error) {
	if t.Kind != TokenVector {
		return core.Vec3{}, fmt.Errorf("line %d: expected <x, y, z>, got %q", t.Line, t.Text)
	}

	fields := strings.FieldsFunc(t.Text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 3 {
		return core.Vec3{}, fmt.Errorf("line %d: expected 3 components in <%s>, got %d", t.Line, t.Text, len(fields))
	}

	var values [3]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("line %d: invalid vector component %q: %w", t.Line, field, err)
		}
		values[i] = v
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

// Float parses a word token as a number
func (t Token) Float() (float64, error) {
	if t.Kind != TokenWord {
		return 0, fmt.Errorf("line %d: expected a number, got %s", t.Line, t)
	}
	v, err := strconv.ParseFloat(t.Text, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid number %q: %w", t.Line, t.Text, err)
	}
	return v, nil
}

// Tokenize splits input into words and vectors. '#' starts a comment that runs to
// the end of the line; braces and commas between tokens are skipped.
func Tokenize(reader io.Reader) ([]Token, error) {
	var tokens []Token
	r := bufio.NewReader(reader)
	line := 1

	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenWord, Text: word.String(), Line: line})
			word.Reset()
		}
	}

	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			flush()
			return tokens, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}

		switch {
		case ch == '\n':
			flush()
			line++
		case unicode.IsSpace(ch), ch == '{', ch == '}', ch == ',':
			flush()
		case ch == '#':
			flush()
			if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
				return nil, fmt.Errorf("error reading input: %w", err)
			}
			line++
		case ch == '<':
			flush()
			start := line
			text, err := r.ReadString('>')
			if err == io.EOF {
				return nil, fmt.Errorf("line %d: unterminated vector", start)
			}
			if err != nil {
				return nil, fmt.Errorf("error reading input: %w", err)
			}
			line += strings.Count(text, "\n")
			tokens = append(tokens, Token{Kind: TokenVector, Text: strings.TrimSpace(strings.TrimSuffix(text, ">")), Line: start})
		default:
			word.WriteRune(ch)
		}
	}
}
