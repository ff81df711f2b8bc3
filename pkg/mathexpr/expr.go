// Package mathexpr unparses arithmetic expression trees with minimal
// parenthesization. It exists as the reference consumer of the streamer
// priority protocol: every node declares a priority and associativity, and
// parentheses appear only where dropping them would change grouping.
//
// Trees are built with explicit constructors (Add, Sub, Mul, Div, Pow, Neg)
// around Number and Symbol leaves.
package mathexpr

import (
	"strconv"

	"github.com/goliatone/go-wordstream/pkg/streamer"
)

// Operator binding strengths: addition and subtraction bind loosest, then
// multiplication and division, then unary minus, then exponentiation.
const (
	priorityAdditive       = 0
	priorityMultiplicative = 1
	priorityUnaryMinus     = 2
	priorityPower          = 3
)

// Expr is any node of an expression tree. All nodes take part in the
// priority protocol.
type Expr interface {
	streamer.Operand
}

// Number is a numeric leaf. Leaves bind maximally and are never wrapped.
type Number float64

// Num builds a numeric leaf, expressing negative inputs as unary minus over
// their magnitude so the sign is part of the tree, not the literal.
func Num(value float64) Expr {
	if value < 0 {
		return Neg(Number(-value))
	}
	return Number(value)
}

// Stream yields the shortest decimal representation as one token.
func (n Number) Stream(streamer.Context) streamer.TokenStream {
	return streamer.Tokens(strconv.FormatFloat(float64(n), 'g', -1, 64))
}

// Priority reports the maximal leaf priority.
func (n Number) Priority() int { return 100 }

// Associativity is irrelevant for leaves.
func (n Number) Associativity() streamer.Assoc { return streamer.AssocNone }

// Symbol is a named leaf, such as a variable.
type Symbol string

// Stream yields the symbol name as one token.
func (s Symbol) Stream(streamer.Context) streamer.TokenStream {
	return streamer.Tokens(string(s))
}

// Priority reports the maximal leaf priority.
func (s Symbol) Priority() int { return 100 }

// Associativity is irrelevant for leaves.
func (s Symbol) Associativity() streamer.Assoc { return streamer.AssocNone }

// Binary is an infix operation. Operands are adopted at construction time:
// whichever side needs parentheses is already substituted by a wrapping
// adapter before the first stream is produced.
type Binary struct {
	lhs, rhs streamer.Renderable
	op       string
	priority int
	assoc    streamer.Assoc
}

func newBinary(lhs Expr, op string, rhs Expr, priority int, assoc streamer.Assoc) *Binary {
	b := &Binary{op: op, priority: priority, assoc: assoc}
	b.lhs = streamer.RespectPriority(lhs, b, streamer.SideLeft)
	b.rhs = streamer.RespectPriority(rhs, b, streamer.SideRight)
	return b
}

// Add builds lhs + rhs.
func Add(lhs, rhs Expr) *Binary {
	return newBinary(lhs, "+", rhs, priorityAdditive, streamer.AssocLeft)
}

// Sub builds lhs - rhs.
func Sub(lhs, rhs Expr) *Binary {
	return newBinary(lhs, "-", rhs, priorityAdditive, streamer.AssocLeft)
}

// Mul builds lhs * rhs.
func Mul(lhs, rhs Expr) *Binary {
	return newBinary(lhs, "*", rhs, priorityMultiplicative, streamer.AssocLeft)
}

// Div builds lhs / rhs.
func Div(lhs, rhs Expr) *Binary {
	return newBinary(lhs, "/", rhs, priorityMultiplicative, streamer.AssocLeft)
}

// Pow builds lhs ** rhs. Exponentiation associates to the right: a**b**c
// means a**(b**c).
func Pow(lhs, rhs Expr) *Binary {
	return newBinary(lhs, "**", rhs, priorityPower, streamer.AssocRight)
}

// Stream yields the left operand, the spaced operator, then the right
// operand, depth first.
func (b *Binary) Stream(ctx streamer.Context) streamer.TokenStream {
	return streamer.Concat(
		b.lhs.Stream(ctx),
		streamer.Tokens(" ", b.op, " "),
		b.rhs.Stream(ctx),
	)
}

// Priority reports the operator's binding strength.
func (b *Binary) Priority() int { return b.priority }

// Associativity reports the operator's grouping rule.
func (b *Binary) Associativity() streamer.Assoc { return b.assoc }

// UnaryMinus is prefix negation.
type UnaryMinus struct {
	rhs streamer.Renderable
}

// Neg builds -operand.
func Neg(operand Expr) *UnaryMinus {
	u := &UnaryMinus{}
	u.rhs = streamer.RespectPriority(operand, u, streamer.SideNone)
	return u
}

// Stream yields the minus sign then the operand.
func (u *UnaryMinus) Stream(ctx streamer.Context) streamer.TokenStream {
	return streamer.Concat(streamer.Tokens("-"), u.rhs.Stream(ctx))
}

// Priority reports the unary minus binding strength.
func (u *UnaryMinus) Priority() int { return priorityUnaryMinus }

// Associativity reports that unary minus has no grouping rule.
func (u *UnaryMinus) Associativity() streamer.Assoc { return streamer.AssocNone }

// NeedsWrap overrides the default algorithm: as the right operand of any
// infix operation a bare unary minus would sit directly against the parent
// operator (a - -b), so it always wraps there. Everywhere else the default
// rules apply.
func (u *UnaryMinus) NeedsWrap(parent streamer.Operand, side streamer.Side) bool {
	if side == streamer.SideRight {
		return true
	}
	return streamer.DefaultNeedsWrap(u, parent, side)
}
