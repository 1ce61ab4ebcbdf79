package crisp

// Context owns the environment: one flat mapping from symbol name to
// expression, shared by every evaluation made through the context and alive
// for the context's whole lifetime. There is no lexical nesting; a let
// anywhere mutates this one namespace and the last write wins.
//
// A Context is not safe for concurrent use; give each session its own.
type Context struct {
	environment map[string]Expr
}

func NewContext() *Context {
	return &Context{environment: map[string]Expr{}}
}

// Eval reduces expr to a value, mutating the environment as a side effect of
// let forms. Failures abort this expression only; bindings already committed
// stay committed.
//
// The reducer is a trampoline: the chosen branch of an if and the body of a
// fully saturated call replace the working expression and re-enter the loop
// instead of recursing, so chains of either do not grow the native stack.
// Predicates, let values, call heads and arguments evaluate recursively.
func (c *Context) Eval(expr Expr) (Expr, error) {
	for {
		if expr == nil {
			return nil, nil
		}

		switch e := expr.(type) {
		case Symbol:
			v, ok := c.environment[string(e)]
			if !ok {
				return nil, &UnboundVariableError{Name: string(e)}
			}
			return v, nil
		case Number, BuiltIn, Quote:
			return e, nil
		case Let:
			for _, b := range e {
				name, ok := b.Name.(Symbol)
				if !ok {
					return nil, &TypeError{Want: "a symbol", Got: b.Name}
				}
				v, err := c.Eval(b.Value)
				if err != nil {
					return nil, err
				}
				c.environment[string(name)] = v
			}
			return nil, nil
		case *If:
			pred, err := c.Eval(e.Pred)
			if err != nil {
				return nil, err
			}
			if Truthy(pred) {
				expr = e.Then
				continue
			}
			if e.Otherwise != nil {
				expr = e.Otherwise
				continue
			}
			return nil, &NoBranchError{Predicate: pred}
		case *Call:
			head, err := c.Eval(e.Head)
			if err != nil {
				return nil, err
			}
			args := make([]Expr, len(e.Args))
			for i, arg := range e.Args {
				if args[i], err = c.Eval(arg); err != nil {
					return nil, err
				}
			}

			switch h := head.(type) {
			case *Function:
				body, residual, err := c.applyFunction(h, args)
				if err != nil {
					return nil, err
				}
				if residual != nil {
					return residual, nil
				}
				expr = body
				continue
			case BuiltIn:
				return h.apply(args)
			default:
				// Calling a non-callable is not an error: the call
				// degenerates to the callee, discarding the arguments.
				return head, nil
			}
		default:
			// Function values and anything else already reduced.
			return e, nil
		}
	}
}

// applyFunction substitutes args into f's body and splits the outcome: a
// saturated call returns the substituted body for the trampoline, an
// under-applied one returns a residual function carrying the parameters that
// were not consumed.
//
// Only the supplied prefix of the parameter list takes part in substitution;
// occurrences of later parameters stay in the body, unmarked, so they remain
// formals of the residual.
func (c *Context) applyFunction(f *Function, args []Expr) (body Expr, residual *Function, err error) {
	marked := make([]bool, len(f.Params))

	supplied := f.Params
	if len(args) < len(supplied) {
		supplied = supplied[:len(args)]
	}

	body, err = curry(f.Body, supplied, args, marked[:len(supplied)])
	if err != nil {
		return nil, nil, err
	}

	var rest []Expr
	for i, p := range f.Params {
		if !marked[i] {
			rest = append(rest, p)
		}
	}
	if len(rest) == 0 {
		return body, nil, nil
	}
	return nil, &Function{Params: rest, Body: body}, nil
}

// EvalString parses src and evaluates each top-level expression in order
// against the context, returning every result. The first failure stops the
// run; results and bindings from earlier expressions are kept.
func (c *Context) EvalString(src string) ([]Expr, error) {
	exprs, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	results := make([]Expr, 0, len(exprs))
	for _, x := range exprs {
		v, err := c.Eval(x)
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}
