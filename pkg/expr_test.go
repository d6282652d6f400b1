package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExprFromTokens(t *testing.T) {
	one := Token{TokenNumber, Num{Unsigned(1)}}
	two := Token{TokenNumber, Num{Unsigned(2)}}
	plus := FromKind(TokenBinaryOp(Addition))

	cases := []struct {
		lhs, op, rhs Token
		fail         bool
		expect       Expr
	}{
		{one, plus, two, false, Expr{Num{Unsigned(1)}, Addition, Num{Unsigned(2)}}},
		{two, plus, one, false, Expr{Num{Unsigned(2)}, Addition, Num{Unsigned(1)}}},
		{FromKind(TokenString), plus, one, false, Expr{Text(""), Addition, Num{Unsigned(1)}}},
		{one, FromKind(TokenNull), two, true, Expr{}},
		{FromKind(TokenNull), plus, two, true, Expr{}},
		{one, plus, FromKind(TokenNumber), true, Expr{}},
	}

	for _, c := range cases {
		expr, err := NewExprFromTokens(c.lhs, c.op, c.rhs)
		if c.fail {
			assert.IsType(t, ExprError{}, err)
		} else {
			assert.NoError(t, err)
		}

		assert.Equal(t, c.expect, expr)
	}
}

func TestCollectExprs(t *testing.T) {
	num := func(n int) Token {
		return Token{TokenNumber, Num{Signed(n)}}
	}
	op := func(o InfixOperator) Token {
		return FromKind(TokenBinaryOp(o))
	}

	cases := []struct {
		data   []Token
		fail   bool
		expect []Expr
	}{
		{
			nil,
			false,
			nil,
		},
		{
			[]Token{FromKind(TokenPrint), num(-4), op(Division), num(2), FromKind(TokenReturn), num(5), op(Subtraction), num(3)},
			false,
			[]Expr{
				{Num{Signed(-4)}, Division, Num{Signed(2)}},
				{Num{Signed(5)}, Subtraction, Num{Signed(3)}},
			},
		},
		{
			[]Token{FromKind(TokenLeftParen), num(1), op(Addition), num(2), FromKind(TokenRightParen)},
			false,
			[]Expr{
				{Num{Signed(1)}, Addition, Num{Signed(2)}},
			},
		},
		{
			[]Token{FromKind(TokenPrint), FromKind(TokenString), FromKind(TokenNull)},
			false,
			nil,
		},
		{
			[]Token{num(1), op(Addition), num(2), op(Addition), num(3)},
			true,
			nil,
		},
		{
			[]Token{FromKind(TokenLeftParen), num(1), op(Addition), num(2), FromKind(TokenRightParen), op(Multiplication), num(3)},
			true,
			nil,
		},
		{
			[]Token{num(7), num(8), op(Division), num(2)},
			true,
			nil,
		},
		{
			[]Token{FromKind(TokenReturn), num(1)},
			true,
			nil,
		},
		{
			[]Token{op(Addition)},
			true,
			nil,
		},
	}

	for _, c := range cases {
		exprs, err := CollectExprs(c.data)
		if c.fail {
			assert.IsType(t, ExprError{}, err)
		} else {
			assert.NoError(t, err)
		}

		assert.Equal(t, c.expect, exprs)
	}
}

func TestPending(t *testing.T) {
	expr := Expr{Num{Unsigned(9)}, Subtraction, Num{Signed(3)}}

	tok, ok := expr.Pending()
	require.True(t, ok)
	assert.Equal(t, Token{TokenBinaryOp(Subtraction), NumPair{Unsigned(9), Signed(3)}}, tok)
	assert.Equal(t, "Subtraction", tok.String())

	back, ok := ExprFromPending(tok)
	require.True(t, ok)
	assert.Equal(t, expr, back)

	_, ok = Expr{Text("a"), Addition, Num{Unsigned(1)}}.Pending()
	assert.False(t, ok)

	_, ok = ExprFromPending(FromKind(TokenBinaryOp(Addition)))
	assert.False(t, ok)

	_, ok = ExprFromPending(Token{TokenNumber, NumPair{Unsigned(1), Unsigned(2)}})
	assert.False(t, ok)
}
