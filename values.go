package crisp

import (
	"io"
	"strconv"
	"strings"
)

// Expr is an expression tree. The nil Expr is the canonical empty/false
// value. Trees are never mutated after construction; evaluation and
// substitution build new trees.
type Expr interface {
	write(w io.Writer) error
}

// Atom is an irreducible leaf value: a number, a symbol, or a built-in
// operator tag.
type Atom interface {
	Expr

	atom()
}

// Encode writes a textual representation of e to w.
func Encode(w io.Writer, e Expr) error {
	if e == nil {
		_, err := w.Write([]byte("()"))
		return err
	}
	return e.write(w)
}

// EncodeToString returns the textual representation of e.
func EncodeToString(e Expr) string {
	var b strings.Builder
	Encode(&b, e)
	return b.String()
}

// Number
type Number int32

func (n Number) atom() {}

func (n Number) write(w io.Writer) error {
	_, err := w.Write([]byte(strconv.FormatInt(int64(n), 10)))
	return err
}

// Symbol
type Symbol string

func (s Symbol) atom() {}

func (s Symbol) write(w io.Writer) error {
	_, err := w.Write([]byte(s))
	return err
}

// Quote is a literal list. It is never evaluated; the empty quote is falsy.
type Quote []Expr

func (q Quote) write(w io.Writer) error {
	if _, err := w.Write([]byte("'(")); err != nil {
		return err
	}
	for i, e := range q {
		if i > 0 {
			if _, err := w.Write([]byte(" ")); err != nil {
				return err
			}
		}
		if err := Encode(w, e); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(")"))
	return err
}

// Binding is one (name, value) pair of a let form. Name must be a Symbol for
// the binding to evaluate; that is checked at evaluation time, not here.
type Binding struct {
	Name  Atom
	Value Expr
}

// Let binds each pair's value under its name in the evaluating context's
// environment and yields nil.
type Let []Binding

func (l Let) write(w io.Writer) error {
	if _, err := w.Write([]byte("(let")); err != nil {
		return err
	}
	for _, b := range l {
		if _, err := w.Write([]byte(" (")); err != nil {
			return err
		}
		if err := Encode(w, b.Name); err != nil {
			return err
		}
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if err := Encode(w, b.Value); err != nil {
			return err
		}
		if _, err := w.Write([]byte(")")); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(")"))
	return err
}

// If is a conditional. Otherwise is nil when the form has no else branch.
type If struct {
	Pred      Expr
	Then      Expr
	Otherwise Expr
}

func (e *If) write(w io.Writer) error {
	if _, err := w.Write([]byte("(if ")); err != nil {
		return err
	}
	if err := Encode(w, e.Pred); err != nil {
		return err
	}
	if _, err := w.Write([]byte(" ")); err != nil {
		return err
	}
	if err := Encode(w, e.Then); err != nil {
		return err
	}
	if e.Otherwise != nil {
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if err := Encode(w, e.Otherwise); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(")"))
	return err
}

// Call is a function or operator application.
type Call struct {
	Head Expr
	Args []Expr
}

func (e *Call) write(w io.Writer) error {
	if _, err := w.Write([]byte("(")); err != nil {
		return err
	}
	if err := Encode(w, e.Head); err != nil {
		return err
	}
	for _, arg := range e.Args {
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if err := Encode(w, arg); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(")"))
	return err
}

// Function is a callable value. Params are expected to be Symbol atoms;
// applying a function substitutes actuals for parameter occurrences in Body.
type Function struct {
	Params []Expr
	Body   Expr
}

func (e *Function) write(w io.Writer) error {
	if _, err := w.Write([]byte("(fn (")); err != nil {
		return err
	}
	for i, p := range e.Params {
		if i > 0 {
			if _, err := w.Write([]byte(" ")); err != nil {
				return err
			}
		}
		if err := Encode(w, p); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(") ")); err != nil {
		return err
	}
	if err := Encode(w, e.Body); err != nil {
		return err
	}
	_, err := w.Write([]byte(")"))
	return err
}
