package quill

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		err    CompileError
		expect string
	}{
		{ConsistentScopeError{"x declared twice"}, "consistent scope error: x declared twice"},
		{LexError{Location{2, 5}, "invalid symbol '@'"}, "2:5 lex error: invalid symbol '@'"},
		{ExprError{"missing operand"}, "bad expression: missing operand"},
		{
			LoweringError{Expr{Text("a"), Addition, Num{Signed(1)}}, "left operand is not a number"},
			`cannot lower Expr(Text("a"), Addition, Num(Signed(1))): left operand is not a number`,
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, c.err.Error())
		assert.Equal(t, c.expect, c.err.String())
	}
}

func TestConsistentScopeErrorCause(t *testing.T) {
	err := errors.Wrap(ConsistentScopeError{"shadowed"}, "checking main")

	scopeErr, ok := errors.Cause(err).(ConsistentScopeError)
	assert.True(t, ok)
	assert.Equal(t, ConsistentScopeError{"shadowed"}, scopeErr)
}
