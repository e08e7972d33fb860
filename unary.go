package bignum

// Neg returns -x. Zero negates to itself (spec.md §4.8).
func (x Integer) Neg() Integer { return x.negated() }

// Pos returns x unchanged; provided for symmetry with Neg.
func (x Integer) Pos() Integer { return x }

// LogicalNot reports whether x is falsy, i.e. its magnitude is zero
// (spec.md §4.8's "!x is true iff the magnitude is zero").
func (x Integer) LogicalNot() bool { return x.IsZero() }

// PreInc adds one to *x in place and returns the new value.
func (x *Integer) PreInc() Integer {
	*x = x.Add(One())
	return *x
}

// PostInc adds one to *x in place and returns the value *x held
// before the increment.
func (x *Integer) PostInc() Integer {
	prev := *x
	*x = x.Add(One())
	return prev
}

// PreDec subtracts one from *x in place and returns the new value.
func (x *Integer) PreDec() Integer {
	*x = x.Sub(One())
	return *x
}

// PostDec subtracts one from *x in place and returns the value *x held
// before the decrement.
func (x *Integer) PostDec() Integer {
	prev := *x
	*x = x.Sub(One())
	return prev
}
