package crisp

// equal reports whether a and b are structurally identical expressions. It is
// the relation behind the = and != chains and behind parameter matching in
// the substitution engine. Expression trees cannot be self-referential, so
// plain recursion suffices.
func equal(a, b Expr) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b
	case BuiltIn:
		b, ok := b.(BuiltIn)
		return ok && a == b
	case Quote:
		b, ok := b.(Quote)
		if !ok || len(a) != len(b) {
			return false
		}
		for i, e := range a {
			if !equal(e, b[i]) {
				return false
			}
		}
		return true
	case Let:
		b, ok := b.(Let)
		if !ok || len(a) != len(b) {
			return false
		}
		for i, bind := range a {
			if !equal(bind.Name, b[i].Name) || !equal(bind.Value, b[i].Value) {
				return false
			}
		}
		return true
	case *If:
		b, ok := b.(*If)
		return ok && equal(a.Pred, b.Pred) && equal(a.Then, b.Then) && equal(a.Otherwise, b.Otherwise)
	case *Call:
		b, ok := b.(*Call)
		if !ok || !equal(a.Head, b.Head) || len(a.Args) != len(b.Args) {
			return false
		}
		for i, arg := range a.Args {
			if !equal(arg, b.Args[i]) {
				return false
			}
		}
		return true
	case *Function:
		b, ok := b.(*Function)
		if !ok || len(a.Params) != len(b.Params) || !equal(a.Body, b.Body) {
			return false
		}
		for i, p := range a.Params {
			if !equal(p, b.Params[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
