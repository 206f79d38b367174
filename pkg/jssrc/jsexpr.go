// Package jssrc models JavaScript source-expression fragments produced by
// the emit-source backend: a piece of target-language text paired with the
// precedence of its top-level operator, so callers know when parentheses are
// required.
package jssrc

import "math"

// MaxPrecedence marks an expression that never needs protective parentheses,
// such as an already-parenthesized or atomic expression.
const MaxPrecedence = math.MaxInt

// Expr is an immutable JavaScript expression fragment.
type Expr struct {
	text       string
	precedence int
}

// New returns an expression fragment with the given text and the precedence
// of its top-level operator.
func New(text string, precedence int) Expr {
	return Expr{text: text, precedence: precedence}
}

// Text returns the JavaScript source text.
func (e Expr) Text() string { return e.text }

// Precedence returns the precedence of the expression's top-level operator.
func (e Expr) Precedence() int { return e.precedence }

func (e Expr) String() string { return e.text }

// MaybeProtect returns the expression text, parenthesized if its precedence
// is below minSafe.
func MaybeProtect(e Expr, minSafe int) string {
	if e.precedence < minSafe {
		return "(" + e.text + ")"
	}
	return e.text
}

// ToString coerces an expression of unknown static type to its string form.
func ToString(e Expr) Expr {
	return New("String("+e.text+")", MaxPrecedence)
}
