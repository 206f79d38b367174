// Package exprparse parses raw command text into expression lists. It is the
// parsing collaborator the template-tree nodes depend on: construction of an
// expression-holding node calls [ParseExprList] eagerly, and a failure here
// is what surfaces as a syntax error at node-construction time.
package exprparse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = -1

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	TokenString  // 'hello' or "hello"
	TokenNumber  // 123, 3.14, 1e-10
	TokenBoolean // true, false
	TokenNull    // null
	TokenName    // identifier
	TokenDataRef // $name

	TokenParenOpen    // (
	TokenParenClose   // )
	TokenBracketOpen  // [
	TokenBracketClose // ]
	TokenComma        // ,

	TokenPlus  // +
	TokenMinus // -
	TokenMult  // *
	TokenDiv   // /
)

// Token is a lexical token with its source text and position.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// Lexer converts command text into a sequence of tokens, based on Rob Pike's
// "Lexical Scanning in Go" technique.
type Lexer struct {
	input   string
	length  int
	start   int
	current int
	width   int
}

// NewLexer creates a lexer over the provided input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, length: len(input)}
}

// Next returns the next token from the input. Once the input is exhausted,
// Next returns TokenEOF for all subsequent calls.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	ch := l.nextRune()
	switch {
	case ch == eof:
		return l.newToken(TokenEOF)
	case ch == '(':
		return l.newToken(TokenParenOpen)
	case ch == ')':
		return l.newToken(TokenParenClose)
	case ch == '[':
		return l.newToken(TokenBracketOpen)
	case ch == ']':
		return l.newToken(TokenBracketClose)
	case ch == ',':
		return l.newToken(TokenComma)
	case ch == '+':
		return l.newToken(TokenPlus)
	case ch == '-':
		return l.newToken(TokenMinus)
	case ch == '*':
		return l.newToken(TokenMult)
	case ch == '/':
		return l.newToken(TokenDiv)
	case ch == '\'' || ch == '"':
		return l.scanString(ch)
	case ch >= '0' && ch <= '9':
		return l.scanNumber()
	case ch == '$':
		return l.scanDataRef()
	case isNameStart(ch):
		return l.scanName()
	default:
		return l.errorToken(fmt.Sprintf("unexpected character %q", ch))
	}
}

func (l *Lexer) nextRune() rune {
	if l.current >= l.length {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
}

func (l *Lexer) skipWhitespace() {
	for l.current < l.length {
		r, w := utf8.DecodeRuneInString(l.input[l.current:])
		if !unicode.IsSpace(r) {
			break
		}
		l.current += w
	}
	l.start = l.current
}

func (l *Lexer) newToken(tt TokenType) Token {
	tok := Token{Type: tt, Value: l.input[l.start:l.current], Position: l.start}
	l.start = l.current
	return tok
}

func (l *Lexer) errorToken(msg string) Token {
	tok := Token{Type: TokenError, Value: msg, Position: l.start}
	l.start = l.current
	return tok
}

// scanString scans a quoted string literal; quote is the opening quote rune.
// The returned token value is the unquoted content.
func (l *Lexer) scanString(quote rune) Token {
	var b strings.Builder
	for {
		ch := l.nextRune()
		switch ch {
		case eof:
			return l.errorToken("string literal not closed")
		case '\\':
			esc := l.nextRune()
			switch esc {
			case '\\', '\'', '"':
				b.WriteRune(esc)
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case eof:
				return l.errorToken("string literal not closed")
			default:
				return l.errorToken(fmt.Sprintf("unsupported escape \\%c", esc))
			}
		case quote:
			tok := Token{Type: TokenString, Value: b.String(), Position: l.start}
			l.start = l.current
			return tok
		default:
			b.WriteRune(ch)
		}
	}
}

func (l *Lexer) scanNumber() Token {
	l.acceptRun(isDigit)
	if l.accept('.') {
		l.acceptRun(isDigit)
	}
	if l.accept('e') || l.accept('E') {
		if !l.accept('+') {
			l.accept('-')
		}
		// An exponent marker must carry at least one digit.
		if ch := l.nextRune(); ch == eof || !isDigit(ch) {
			return l.errorToken("malformed number")
		}
		l.backup()
		l.acceptRun(isDigit)
	}
	return l.newToken(TokenNumber)
}

func (l *Lexer) scanDataRef() Token {
	if ch := l.nextRune(); ch == eof || !isNameStart(ch) {
		return l.errorToken("'$' must be followed by a name")
	}
	l.acceptRun(isNamePart)
	tok := Token{Type: TokenDataRef, Value: l.input[l.start+1 : l.current], Position: l.start}
	l.start = l.current
	return tok
}

func (l *Lexer) scanName() Token {
	l.acceptRun(isNamePart)
	tok := l.newToken(TokenName)
	switch tok.Value {
	case "true", "false":
		tok.Type = TokenBoolean
	case "null":
		tok.Type = TokenNull
	}
	return tok
}

func (l *Lexer) accept(r rune) bool {
	if l.nextRune() == r {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(pred func(rune) bool) {
	for {
		ch := l.nextRune()
		if ch == eof {
			return
		}
		if !pred(ch) {
			l.backup()
			return
		}
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNamePart(r rune) bool {
	return isNameStart(r) || isDigit(r)
}
