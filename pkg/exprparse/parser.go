package exprparse

import (
	"fmt"
	"strconv"

	"github.com/paulscallanjr/closure-templates/pkg/exprtree"
)

// ParseError reports where and why command text failed to parse.
type ParseError struct {
	Position int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

// ParseExprList parses command text as a comma-separated, non-empty list of
// expressions, consuming the entire input.
func ParseExprList(text string) ([]*exprtree.Node, error) {
	p := newParser(text)
	var exprs []*exprtree.Node
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if p.tok.Type != TokenComma {
			break
		}
		p.advance()
	}
	if p.tok.Type != TokenEOF {
		return nil, p.errorf("unexpected %q", p.tok.Value)
	}
	return exprs, nil
}

// ParseExpression parses command text as a single expression, consuming the
// entire input.
func ParseExpression(text string) (*exprtree.Node, error) {
	p := newParser(text)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, p.errorf("unexpected %q", p.tok.Value)
	}
	return expr, nil
}

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	lexer *Lexer
	tok   Token
}

func newParser(text string) *parser {
	p := &parser{lexer: NewLexer(text)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.lexer.Next()
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Position: p.tok.Position, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) parseExpr() (*exprtree.Node, error) {
	return p.parseBinary(0)
}

// binaryPrecedence returns the precedence of a binary operator token, or -1.
func binaryPrecedence(tt TokenType) int {
	switch tt {
	case TokenPlus, TokenMinus:
		return 1
	case TokenMult, TokenDiv:
		return 2
	default:
		return -1
	}
}

func (p *parser) parseBinary(minPrec int) (*exprtree.Node, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		prec := binaryPrecedence(p.tok.Type)
		if prec < 0 || prec < minPrec {
			return lhs, nil
		}
		op := p.tok
		p.advance()
		rhs, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &exprtree.Node{
			Type:     exprtree.NodeBinary,
			StrValue: op.Value,
			Position: op.Position,
			LHS:      lhs,
			RHS:      rhs,
		}
	}
}

func (p *parser) parsePrimary() (*exprtree.Node, error) {
	tok := p.tok
	switch tok.Type {
	case TokenError:
		return nil, p.errorf("%s", tok.Value)

	case TokenString:
		p.advance()
		return &exprtree.Node{Type: exprtree.NodeString, StrValue: tok.Value, Position: tok.Position}, nil

	case TokenNumber:
		p.advance()
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, &ParseError{Position: tok.Position, Message: "number out of range"}
		}
		return &exprtree.Node{Type: exprtree.NodeNumber, NumValue: n, Position: tok.Position}, nil

	case TokenMinus:
		p.advance()
		if p.tok.Type != TokenNumber {
			return nil, p.errorf("expected number after '-'")
		}
		node, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		node.NumValue = -node.NumValue
		node.Position = tok.Position
		return node, nil

	case TokenBoolean:
		p.advance()
		return &exprtree.Node{Type: exprtree.NodeBoolean, BoolValue: tok.Value == "true", Position: tok.Position}, nil

	case TokenNull:
		p.advance()
		return &exprtree.Node{Type: exprtree.NodeNull, Position: tok.Position}, nil

	case TokenDataRef:
		p.advance()
		return &exprtree.Node{Type: exprtree.NodeDataRef, StrValue: tok.Value, Position: tok.Position}, nil

	case TokenName:
		p.advance()
		if p.tok.Type == TokenParenOpen {
			return p.parseCall(tok)
		}
		return &exprtree.Node{Type: exprtree.NodeGlobal, StrValue: tok.Value, Position: tok.Position}, nil

	case TokenBracketOpen:
		return p.parseList()

	case TokenParenOpen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.Type != TokenParenClose {
			return nil, p.errorf("expected ')'")
		}
		p.advance()
		return expr, nil

	case TokenEOF:
		return nil, p.errorf("unexpected end of expression")

	default:
		return nil, p.errorf("unexpected %q", tok.Value)
	}
}

// parseCall parses the argument list of name(...); the opening paren is the
// current token.
func (p *parser) parseCall(name Token) (*exprtree.Node, error) {
	node := &exprtree.Node{Type: exprtree.NodeFunction, StrValue: name.Value, Position: name.Position}
	p.advance()
	if p.tok.Type == TokenParenClose {
		p.advance()
		return node, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, arg)
		if p.tok.Type == TokenComma {
			p.advance()
			continue
		}
		if p.tok.Type != TokenParenClose {
			return nil, p.errorf("expected ')' or ','")
		}
		p.advance()
		return node, nil
	}
}

func (p *parser) parseList() (*exprtree.Node, error) {
	node := &exprtree.Node{Type: exprtree.NodeList, Position: p.tok.Position}
	p.advance()
	if p.tok.Type == TokenBracketClose {
		p.advance()
		return node, nil
	}
	for {
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, item)
		if p.tok.Type == TokenComma {
			p.advance()
			continue
		}
		if p.tok.Type != TokenBracketClose {
			return nil, p.errorf("expected ']' or ','")
		}
		p.advance()
		return node, nil
	}
}
