package crisp

// curry substitutes actual arguments for parameter occurrences in body,
// rebuilding the tree as it goes. A node equal to params[i] is replaced by
// args[i] and slot i is marked as consumed; if no argument was supplied for
// that position the substitution fails. marked must be at least as long as
// params and all-false on entry.
//
// Substitution walks through calls and conditionals only. It does not
// descend into nested functions, lets, or quotes: a parameter name occurring
// there is left as a free symbol for later resolution.
func curry(body Expr, params, args []Expr, marked []bool) (Expr, error) {
	for i, param := range params {
		if equal(body, param) {
			marked[i] = true
			if i >= len(args) {
				return nil, &SubstitutionIndexError{Index: i}
			}
			return args[i], nil
		}
	}

	switch e := body.(type) {
	case *Call:
		head, err := curry(e.Head, params, args, marked)
		if err != nil {
			return nil, err
		}
		tail := make([]Expr, len(e.Args))
		for i, arg := range e.Args {
			if tail[i], err = curry(arg, params, args, marked); err != nil {
				return nil, err
			}
		}
		return &Call{Head: head, Args: tail}, nil
	case *If:
		pred, err := curry(e.Pred, params, args, marked)
		if err != nil {
			return nil, err
		}
		then, err := curry(e.Then, params, args, marked)
		if err != nil {
			return nil, err
		}
		otherwise := e.Otherwise
		if otherwise != nil {
			// A failure inside the else branch does not fail the whole
			// substitution; the branch is kept as written. Marks set during
			// the failed walk persist.
			if sub, err := curry(otherwise, params, args, marked); err == nil {
				otherwise = sub
			}
		}
		return &If{Pred: pred, Then: then, Otherwise: otherwise}, nil
	default:
		return body, nil
	}
}
