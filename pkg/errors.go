package quill

import "fmt"

// CompileError is implemented by every classified error of the front end.
type CompileError interface {
	error
	fmt.Stringer
}

type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// ConsistentScopeError reports a violation of a scope-consistency rule. It is
// raised by scope analysis built on top of this package; nothing here produces it.
type ConsistentScopeError struct {
	Message string
}

func (e ConsistentScopeError) Error() string {
	return "consistent scope error: " + e.Message
}

func (e ConsistentScopeError) String() string {
	return e.Error()
}

type LexError struct {
	Loc     Location
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s lex error: %s", e.Loc, e.Message)
}

func (e LexError) String() string {
	return e.Error()
}

type ExprError struct {
	Message string
}

func (e ExprError) Error() string {
	return "bad expression: " + e.Message
}

func (e ExprError) String() string {
	return e.Error()
}

type LoweringError struct {
	Expr    Expr
	Message string
}

func (e LoweringError) Error() string {
	return fmt.Sprintf("cannot lower %s: %s", e.Expr, e.Message)
}

func (e LoweringError) String() string {
	return e.Error()
}
