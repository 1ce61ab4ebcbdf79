package crisp

// asNumber succeeds only for a Number atom.
func asNumber(e Expr) (Number, error) {
	n, ok := e.(Number)
	if !ok {
		return 0, &TypeError{Want: "a number", Got: e}
	}
	return n, nil
}

// Truthy returns the truth value of e. Nil and the empty quote are false;
// every other expression, including the number zero, is true.
func Truthy(e Expr) bool {
	switch e := e.(type) {
	case nil:
		return false
	case Quote:
		return len(e) > 0
	default:
		return true
	}
}

// boolExpr maps true to the symbol T and false to nil. There is no dedicated
// boolean atom at this layer.
func boolExpr(b bool) Expr {
	if b {
		return Symbol("T")
	}
	return nil
}

// numbers coerces a whole argument list, stopping at the first non-number.
func numbers(tail []Expr) ([]Number, error) {
	ns := make([]Number, len(tail))
	for i, e := range tail {
		n, err := asNumber(e)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}

// booleans coerces a whole argument list. Truthiness is total, so unlike
// numbers this cannot fail.
func booleans(tail []Expr) []bool {
	bs := make([]bool, len(tail))
	for i, e := range tail {
		bs[i] = Truthy(e)
	}
	return bs
}
