package crisp

import (
	"fmt"
	"io"
)

// BuiltIn is an operator tag. The set is fixed; symbols spelling an operator
// are resolved to their tag by the reader, not looked up in the environment.
type BuiltIn int

const (
	Plus BuiltIn = iota
	Minus
	Times
	Divide
	Equal
	NotEqual
	Less
	Greater
	LessEqual
	GreaterEqual
	And
	Or
	Not
)

var builtinNames = map[string]BuiltIn{
	"+":   Plus,
	"-":   Minus,
	"*":   Times,
	"/":   Divide,
	"=":   Equal,
	"!=":  NotEqual,
	"<":   Less,
	">":   Greater,
	"<=":  LessEqual,
	">=":  GreaterEqual,
	"and": And,
	"or":  Or,
	"not": Not,
}

func (op BuiltIn) String() string {
	for name, tag := range builtinNames {
		if tag == op {
			return name
		}
	}
	return "<unknown operator>"
}

func (op BuiltIn) atom() {}

func (op BuiltIn) write(w io.Writer) error {
	_, err := w.Write([]byte(op.String()))
	return err
}

// apply evaluates op over an already-reduced argument list. Built-ins are
// terminal: they never re-enter the evaluation loop.
func (op BuiltIn) apply(tail []Expr) (Expr, error) {
	switch op {
	case Plus:
		ns, err := numbers(tail)
		if err != nil {
			return nil, err
		}
		var sum Number
		for _, n := range ns {
			sum += n
		}
		return sum, nil
	case Times:
		ns, err := numbers(tail)
		if err != nil {
			return nil, err
		}
		product := Number(1)
		for _, n := range ns {
			product *= n
		}
		return product, nil
	case Minus:
		return foldNumbers(op, tail, func(a, b Number) Number { return a - b })
	case Divide:
		return foldNumbers(op, tail, func(a, b Number) Number { return a / b })
	case Equal:
		return chain(tail, func(a, b Expr) bool { return equal(a, b) }), nil
	case NotEqual:
		return chain(tail, func(a, b Expr) bool { return !equal(a, b) }), nil
	case Less:
		return chainNumbers(tail, func(a, b Number) bool { return a < b }), nil
	case Greater:
		return chainNumbers(tail, func(a, b Number) bool { return a > b }), nil
	case LessEqual:
		return chainNumbers(tail, func(a, b Number) bool { return a <= b }), nil
	case GreaterEqual:
		return chainNumbers(tail, func(a, b Number) bool { return a >= b }), nil
	case And:
		for _, b := range booleans(tail) {
			if !b {
				return boolExpr(false), nil
			}
		}
		return boolExpr(true), nil
	case Or:
		for _, b := range booleans(tail) {
			if b {
				return boolExpr(true), nil
			}
		}
		return boolExpr(false), nil
	case Not:
		if len(tail) != 1 {
			return nil, &ArityError{Op: op, Want: "1 argument", Got: len(tail)}
		}
		return boolExpr(!Truthy(tail[0])), nil
	default:
		panic(fmt.Sprintf("unknown operator %d", int(op)))
	}
}

// foldNumbers seeds with the first argument and folds the rest; - and /
// require at least one argument.
func foldNumbers(op BuiltIn, tail []Expr, f func(a, b Number) Number) (Expr, error) {
	if len(tail) == 0 {
		return nil, &ArityError{Op: op, Want: "1 or more arguments", Got: 0}
	}
	acc, err := asNumber(tail[0])
	if err != nil {
		return nil, err
	}
	rest, err := numbers(tail[1:])
	if err != nil {
		return nil, err
	}
	for _, n := range rest {
		acc = f(acc, n)
	}
	return acc, nil
}

// chain holds iff every adjacent pair satisfies the relation. Empty and
// single-element chains hold vacuously.
func chain(tail []Expr, rel func(a, b Expr) bool) Expr {
	for i := 0; i+1 < len(tail); i++ {
		if !rel(tail[i], tail[i+1]) {
			return boolExpr(false)
		}
	}
	return boolExpr(true)
}

// chainNumbers is chain over numeric pairs; a pair with a non-number on
// either side makes the whole chain false rather than failing.
func chainNumbers(tail []Expr, rel func(a, b Number) bool) Expr {
	for i := 0; i+1 < len(tail); i++ {
		a, ok := tail[i].(Number)
		if !ok {
			return boolExpr(false)
		}
		b, ok := tail[i+1].(Number)
		if !ok || !rel(a, b) {
			return boolExpr(false)
		}
	}
	return boolExpr(true)
}
