package crisp

import "fmt"

// Evaluation failures abort the current top-level form and propagate to the
// caller of Eval; bindings committed by earlier forms are unaffected.

// TypeError reports a value of the wrong shape where a number or a symbol
// was required.
type TypeError struct {
	Want string
	Got  Expr
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Want, EncodeToString(e.Got))
}

// UnboundVariableError reports a symbol lookup that missed the environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %s", e.Name)
}

// ArityError reports a built-in applied to an argument count outside its
// accepted range.
type ArityError struct {
	Op   BuiltIn
	Want string
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %s, found %d", e.Op, e.Want, e.Got)
}

// SubstitutionIndexError reports a parameter occurrence in a function body
// with no corresponding actual argument at that position.
type SubstitutionIndexError struct {
	Index int
}

func (e *SubstitutionIndexError) Error() string {
	return fmt.Sprintf("no argument supplied for parameter %d", e.Index)
}

// NoBranchError reports an if with a false predicate and no else branch.
type NoBranchError struct {
	Predicate Expr
}

func (e *NoBranchError) Error() string {
	return fmt.Sprintf("no branch taken for predicate %s", EncodeToString(e.Predicate))
}

// SyntaxError reports a reader failure with its source position.
type SyntaxError struct {
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}
