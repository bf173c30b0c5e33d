/*
Type-safe bit sets and flag arithmetic for enum-like constant types.

An enum opts into flag semantics by declaring a marker method:

	type WindowFlag uint8

	func (WindowFlag) FlagsEnum() {}

	const (
		Sticky WindowFlag = 1 << iota
		Shaded
		Hidden
	)

	f := Sticky
	enumbits.OrAssign(&f, Hidden) // f == Sticky|Hidden
	enumbits.HasFlag(f, Shaded)   // false

A BitSet tracks a subset of ordinal enum values in one storage word:

	type Direction uint8

	const (
		North Direction = iota
		East
		South
		West
	)

	type directionBound struct{}

	func (directionBound) End() int { return int(West) + 1 }

	type DirectionSet = enumbits.BitSet[Direction, uint8, directionBound]

	ds := enumbits.New[Direction, uint8, directionBound](North, South)
	ds.Test(East) // false
	ds.Base()     // 0b0000_0101
*/
package enumbits
