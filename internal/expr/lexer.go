package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokPlusMinus // ± or ~ joining a value to its error bound
)

// token is a single lexical unit with its source position.
type token struct {
	kind tokenKind
	text string
	pos  int
	// num holds the parsed value for tokNumber tokens.
	num float64
}

// ParseError reports a syntax error with its byte offset in the source.
type ParseError struct {
	// Pos is the byte offset at which the error was detected.
	Pos int
	// Message explains what was expected or found.
	Message string
}

// Error returns a formatted message describing the syntax error.
func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

func newParseError(pos int, format string, a ...any) error {
	return ParseError{Pos: pos, Message: fmt.Sprintf(format, a...)}
}

// lexer splits an expression source string into tokens.
type lexer struct {
	src string
	pos int
}

// next returns the next token, advancing past it.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])

	switch {
	case r == '+':
		l.pos += size
		return token{kind: tokPlus, text: "+", pos: start}, nil
	case r == '-':
		l.pos += size
		return token{kind: tokMinus, text: "-", pos: start}, nil
	case r == '*':
		l.pos += size
		return token{kind: tokStar, text: "*", pos: start}, nil
	case r == '/':
		l.pos += size
		return token{kind: tokSlash, text: "/", pos: start}, nil
	case r == '^':
		l.pos += size
		return token{kind: tokCaret, text: "^", pos: start}, nil
	case r == '(':
		l.pos += size
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case r == ')':
		l.pos += size
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case r == ',':
		l.pos += size
		return token{kind: tokComma, text: ",", pos: start}, nil
	case r == '±' || r == '~':
		l.pos += size
		return token{kind: tokPlusMinus, text: string(r), pos: start}, nil
	case r == '.' || unicode.IsDigit(r):
		return l.lexNumber()
	case unicode.IsLetter(r):
		return l.lexIdent()
	default:
		return token{}, newParseError(start, "unexpected character %q", r)
	}
}

// lexNumber consumes a decimal literal, optionally with a fraction and a
// signed exponent.
func (l *lexer) lexNumber() (token, error) {
	start := l.pos
	seenDot := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c >= '0' && c <= '9':
			l.pos++
		case c == '.' && !seenDot:
			seenDot = true
			l.pos++
		case c == 'e' || c == 'E':
			l.pos++
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.pos++
			}
			for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
				l.pos++
			}
			text := l.src[start:l.pos]
			return l.finishNumber(text, start)
		default:
			text := l.src[start:l.pos]
			return l.finishNumber(text, start)
		}
	}
	return l.finishNumber(l.src[start:l.pos], start)
}

func (l *lexer) finishNumber(text string, start int) (token, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, newParseError(start, "invalid number %q", text)
	}
	return token{kind: tokNumber, text: text, pos: start, num: v}, nil
}

// lexIdent consumes a function name: letters followed by letters or digits.
func (l *lexer) lexIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos += size
	}
	text := l.src[start:l.pos]
	return token{kind: tokIdent, text: strings.ToLower(text), pos: start}, nil
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}
