package quill

import "fmt"

// NewExprFromTokens combines an operand, an operator and an operand token into
// a flat Expr. Both operands must carry a payload.
func NewExprFromTokens(lhs, op, rhs Token) (Expr, error) {
	kind, ok := op.Kind.(TokenBinaryOp)
	if !ok {
		return Expr{}, ExprError{fmt.Sprintf("expected an operator, got %s", op)}
	}

	if lhs.Value == nil {
		return Expr{}, ExprError{fmt.Sprintf("left operand %s has no value", lhs)}
	}

	if rhs.Value == nil {
		return Expr{}, ExprError{fmt.Sprintf("right operand %s has no value", rhs)}
	}

	return Expr{
		Left:  lhs.Value,
		Op:    InfixOperator(kind),
		Right: rhs.Value,
	}, nil
}

// CollectExprs scans a token stream left to right for "operand operator
// operand" runs and returns them as flat expressions. Runs do not overlap.
// An operator or number token outside every run is an ExprError, since the
// expression it belongs to is not flat.
func CollectExprs(tokens []Token) ([]Expr, error) {
	var exprs []Expr
	used := make([]bool, len(tokens))
	for i := 0; i+2 < len(tokens); {
		expr, err := NewExprFromTokens(tokens[i], tokens[i+1], tokens[i+2])
		if err != nil {
			i++
			continue
		}

		exprs = append(exprs, expr)
		used[i], used[i+1], used[i+2] = true, true, true
		i += 3
	}

	for i, tok := range tokens {
		if used[i] {
			continue
		}

		if _, isOp := tok.Kind.(TokenBinaryOp); isOp || tok.Kind == TokenNumber {
			return nil, ExprError{fmt.Sprintf("%s at token %d is not part of a flat expression", tok, i)}
		}
	}

	return exprs, nil
}

// Pending encodes a numeric expression as a single operator token whose
// NumPair payload holds both operands.
func (e Expr) Pending() (Token, bool) {
	l, lok := e.Left.(Num)
	r, rok := e.Right.(Num)
	if !lok || !rok {
		return Token{}, false
	}

	return Token{
		Kind:  TokenBinaryOp(e.Op),
		Value: NumPair{Left: l.Value, Right: r.Value},
	}, true
}

// ExprFromPending is the inverse of Expr.Pending.
func ExprFromPending(t Token) (Expr, bool) {
	kind, ok := t.Kind.(TokenBinaryOp)
	if !ok {
		return Expr{}, false
	}

	pair, ok := t.Value.(NumPair)
	if !ok {
		return Expr{}, false
	}

	return Expr{
		Left:  Num{pair.Left},
		Op:    InfixOperator(kind),
		Right: Num{pair.Right},
	}, true
}
