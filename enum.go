package enumbits

import (
	"golang.org/x/exp/constraints"
)

// Underlying returns the integer value backing an enum constant.
// It is the single position mapping used by every BitSet operation.
func Underlying[E constraints.Integer](e E) int {
	return int(e)
}

// Steppable constrains enum types that declared support for Inc/Dec
// stepping. An enum opts in by defining an empty SteppableEnum method:
//
//	func (Track) SteppableEnum() {}
//
// Enums without the method are rejected at compile time.
type Steppable interface {
	constraints.Integer
	SteppableEnum()
}

// Flags constrains enum types that declared bitwise flag semantics.
// An enum opts in by defining an empty FlagsEnum method:
//
//	func (WindowFlag) FlagsEnum() {}
type Flags interface {
	constraints.Integer
	FlagsEnum()
}

// Addable constrains enum types whose values act as numeric offsets
// applied to other enums via Add. An enum opts in by defining an empty
// AddableEnum method.
type Addable interface {
	constraints.Integer
	AddableEnum()
}

// Inc steps e to the next enum value and returns it.
// Stepping past the enum's last declared value is not checked, exactly
// like raw integer increment; callers validate range where it matters.
func Inc[E Steppable](e *E) E {
	*e++
	return *e
}

// PostInc steps e to the next enum value and returns the value it held
// before.
func PostInc[E Steppable](e *E) E {
	prev := *e
	Inc(e)
	return prev
}

// Dec steps e to the previous enum value and returns it. Stepping below
// the first declared value is not checked, like raw integer decrement.
func Dec[E Steppable](e *E) E {
	*e--
	return *e
}

// PostDec steps e to the previous enum value and returns the value it
// held before.
func PostDec[E Steppable](e *E) E {
	prev := *e
	Dec(e)
	return prev
}

// Or returns the bitwise union of two flag values.
func Or[E Flags](x, y E) E {
	return x | y
}

// And returns the bitwise intersection of two flag values.
func And[E Flags](x, y E) E {
	return x & y
}

// Xor returns the bitwise symmetric difference of two flag values.
func Xor[E Flags](x, y E) E {
	return x ^ y
}

// Not returns the bitwise complement of a flag value.
func Not[E Flags](x E) E {
	return ^x
}

// OrAssign sets the flags of y in x and returns the new value.
func OrAssign[E Flags](x *E, y E) E {
	*x = Or(*x, y)
	return *x
}

// AndAssign keeps only the flags of y in x and returns the new value.
func AndAssign[E Flags](x *E, y E) E {
	*x = And(*x, y)
	return *x
}

// XorAssign toggles the flags of y in x and returns the new value.
func XorAssign[E Flags](x *E, y E) E {
	*x = Xor(*x, y)
	return *x
}

// Add offsets an enum value by an addable constant, producing a value
// of the offset enum's type.
func Add[E constraints.Integer, A Addable](e E, a A) E {
	return e + E(Underlying(a))
}

// HasFlag reports whether all flags of y are set in x.
func HasFlag[E Flags](x, y E) bool {
	return And(x, y) == y
}

// ToggleFlag clears y in x if it is currently set, otherwise sets it.
func ToggleFlag[E Flags](x *E, y E) {
	if HasFlag(*x, y) {
		AndAssign(x, Not(y))
	} else {
		OrAssign(x, y)
	}
}
