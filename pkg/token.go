package quill

import (
	"fmt"
	"strconv"
)

// InfixOperator is one of the four arithmetic operators usable in a binary expression.
type InfixOperator uint8

//go:generate stringer -type=InfixOperator

const (
	Addition InfixOperator = iota
	Subtraction
	Multiplication
	Division
)

var operatorSymbols = [...]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "*",
	Division:       "/",
}

// Operators lists every InfixOperator in declaration order.
func Operators() []InfixOperator {
	return []InfixOperator{Addition, Subtraction, Multiplication, Division}
}

// Symbol returns the source spelling of the operator.
func (op InfixOperator) Symbol() string {
	if int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}

	return "?"
}

// TokenKind is the closed set of lexical categories. It is either a TokenType
// or a TokenBinaryOp; no other type implements it.
type TokenKind interface {
	fmt.Stringer
	tokenKind()
}

// TokenType holds the kinds that carry no value at the kind level.
type TokenType uint8

//go:generate stringer -type=TokenType -trimprefix=Token

const (
	TokenPrint TokenType = iota
	TokenString
	TokenFunction
	TokenRightParen
	TokenLeftParen
	TokenReturn
	TokenNull
	TokenNumber
)

func (TokenType) tokenKind() {}

// TokenBinaryOp is the kind of an infix operator token. The operator is part
// of the kind, not of the token payload.
type TokenBinaryOp InfixOperator

func (TokenBinaryOp) tokenKind() {}

func (t TokenBinaryOp) String() string {
	return "BinaryOp(" + InfixOperator(t).String() + ")"
}

// AllKinds enumerates every TokenKind variant, including BinaryOp once per operator.
func AllKinds() []TokenKind {
	kinds := []TokenKind{
		TokenPrint,
		TokenString,
		TokenFunction,
		TokenRightParen,
		TokenLeftParen,
		TokenReturn,
		TokenNull,
		TokenNumber,
	}

	for _, op := range Operators() {
		kinds = append(kinds, TokenBinaryOp(op))
	}

	return kinds
}

// Numeric is a lexed integer, exactly one of Unsigned or Signed. The two
// variants never compare equal and are never converted into one another.
type Numeric interface {
	fmt.Stringer
	numeric()
}

type Unsigned uint

type Signed int

func (Unsigned) numeric() {}
func (Signed) numeric() {}

func (n Unsigned) String() string {
	return "Unsigned(" + strconv.FormatUint(uint64(n), 10) + ")"
}

func (n Signed) String() string {
	return "Signed(" + strconv.Itoa(int(n)) + ")"
}

// LiteralValue is the data a token carries: Text, Num or NumPair. A nil
// LiteralValue means the token has no payload.
type LiteralValue interface {
	fmt.Stringer
	literalValue()
}

type Text string

type Num struct {
	Value Numeric
}

// NumPair carries the two operands of a pending binary computation.
type NumPair struct {
	Left  Numeric
	Right Numeric
}

func (Text) literalValue() {}
func (Num) literalValue() {}
func (NumPair) literalValue() {}

func (t Text) String() string {
	return "Text(" + strconv.Quote(string(t)) + ")"
}

func (n Num) String() string {
	return "Num(" + debugNumeric(n.Value) + ")"
}

func (p NumPair) String() string {
	return "NumPair(" + debugNumeric(p.Left) + ", " + debugNumeric(p.Right) + ")"
}

func debugNumeric(n Numeric) string {
	if n == nil {
		return "None"
	}

	return n.String()
}

// DebugValue renders an optional payload: "None" when absent, "Some(...)" otherwise.
func DebugValue(v LiteralValue) string {
	if v == nil {
		return "None"
	}

	return "Some(" + v.String() + ")"
}

type Token struct {
	Kind  TokenKind
	Value LiteralValue
}

// FromKind builds a token with the default payload for kind. Print and String
// start with empty text, every other kind starts without a payload.
func FromKind(kind TokenKind) Token {
	var value LiteralValue
	switch kind {
	case TokenPrint, TokenString:
		value = Text("")
	}

	return Token{
		Kind:  kind,
		Value: value,
	}
}

// String renders the token for diagnostics. Some kinds render their own name
// and others render their payload; callers key on these exact strings.
func (t Token) String() string {
	switch k := t.Kind.(type) {
	case TokenType:
		switch k {
		case TokenPrint:
			return "PRINT"
		case TokenString:
			return DebugValue(t.Value)
		case TokenFunction:
			return "FUNCTION"
		case TokenRightParen:
			return "RPAREN"
		case TokenLeftParen:
			return "LPAREN"
		case TokenReturn:
			return DebugValue(t.Value)
		case TokenNull:
			return "NULL"
		case TokenNumber:
			return "NUMBER(" + DebugValue(t.Value) + ")"
		}
	case TokenBinaryOp:
		return InfixOperator(k).String()
	}

	return "INVALID"
}

// Expr is the leaf case of a binary operation: two literal operands joined by
// an operator. Operand order is significant.
type Expr struct {
	Left  LiteralValue
	Op    InfixOperator
	Right LiteralValue
}

func (e Expr) String() string {
	return fmt.Sprintf("Expr(%s, %s, %s)", debugLiteral(e.Left), e.Op, debugLiteral(e.Right))
}

func debugLiteral(v LiteralValue) string {
	if v == nil {
		return "None"
	}

	return v.String()
}
