package enumbits

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Bounds supplies the exclusive upper bound of valid values for a
// BitSet. Bounds are stateless zero-size types; End is called on the
// zero value and must be a constant in [0, width of the storage word].
type Bounds interface {
	End() int
}

// Full bounds a BitSet to the full width of its storage word S.
type Full[S constraints.Unsigned] struct{}

func (Full[S]) End() int {
	return width[S]()
}

// Mask returns the storage word with every valid bit position set for
// the bound B over storage type S.
func Mask[S constraints.Unsigned, B Bounds]() S {
	var b B
	return ^S(0) >> (width[S]() - b.End())
}

func width[S constraints.Unsigned]() int {
	return bits.OnesCount64(uint64(^S(0)))
}

// BitSet is a set of values of the enum type E, packed one bit per
// value into a single storage word S. The bound B fixes which bit
// positions are valid; bits outside Mask are never set through this
// API. The zero value is an empty set.
//
// A BitSet is a plain value: copy and compare with ==, and synchronize
// externally if one instance is mutated from multiple goroutines.
type BitSet[E constraints.Integer, S constraints.Unsigned, B Bounds] struct {
	data S
}

// New returns a BitSet holding the given enum values. Duplicates are
// harmless.
func New[E constraints.Integer, S constraints.Unsigned, B Bounds](values ...E) BitSet[E, S, B] {
	var b BitSet[E, S, B]
	for _, v := range values {
		b.Set(v)
	}
	return b
}

// NewFromBase returns a BitSet over the given raw storage word. Bits
// outside the valid mask are silently dropped, so a word arriving from
// storage wider than the declared bound still yields a valid set.
func NewFromBase[E constraints.Integer, S constraints.Unsigned, B Bounds](raw S) BitSet[E, S, B] {
	return BitSet[E, S, B]{data: raw & Mask[S, B]()}
}

// Set adds the enum value to the set and returns the set for chaining.
func (b *BitSet[E, S, B]) Set(v E) *BitSet[E, S, B] {
	b.data |= 1 << Underlying(v)
	return b
}

// Reset removes the enum value from the set and returns the set for
// chaining.
func (b *BitSet[E, S, B]) Reset(v E) *BitSet[E, S, B] {
	b.data &^= 1 << Underlying(v)
	return b
}

// Flip removes the enum value if it is in the set, otherwise adds it,
// and returns the set for chaining.
func (b *BitSet[E, S, B]) Flip(v E) *BitSet[E, S, B] {
	if b.Test(v) {
		return b.Reset(v)
	}
	return b.Set(v)
}

// Test reports whether the enum value is in the set.
func (b BitSet[E, S, B]) Test(v E) bool {
	return b.data&(1<<Underlying(v)) != 0
}

// All reports whether every value of other is also in b.
func (b BitSet[E, S, B]) All(other BitSet[E, S, B]) bool {
	return b.data&other.data == other.data
}

// Any reports whether b and other share at least one value.
func (b BitSet[E, S, B]) Any(other BitSet[E, S, B]) bool {
	return b.data&other.data != 0
}

// Union returns the set of values in b, other, or both.
func (b BitSet[E, S, B]) Union(other BitSet[E, S, B]) BitSet[E, S, B] {
	return NewFromBase[E, S, B](b.data | other.data)
}

// Intersect returns the set of values in both b and other.
func (b BitSet[E, S, B]) Intersect(other BitSet[E, S, B]) BitSet[E, S, B] {
	return NewFromBase[E, S, B](b.data & other.data)
}

// IsValid reports whether no bits outside the valid mask are set. Sets
// built through this API are always valid; IsValid exists to vet raw
// words arriving from untrusted storage.
func (b BitSet[E, S, B]) IsValid() bool {
	return b.data&Mask[S, B]() == b.data
}

// Count returns the number of values in the set.
func (b BitSet[E, S, B]) Count() int {
	return bits.OnesCount64(uint64(b.data))
}

// Compare orders two sets by their raw storage words. The order has no
// subset meaning; it exists for sorted containers and deduplication.
func (b BitSet[E, S, B]) Compare(other BitSet[E, S, B]) int {
	return cmp.Compare(b.data, other.data)
}

// Base returns the raw storage word, for serialization or logging by
// the caller. No byte-order or width guarantee beyond S itself is made.
func (b BitSet[E, S, B]) Base() S {
	return b.data
}

// Iterator returns a closure yielding each value in the set in
// ascending order. It reports false once the set is exhausted.
func (b BitSet[E, S, B]) Iterator() func() (E, bool) {
	rest := b.data
	return func() (E, bool) {
		if rest == 0 {
			var zero E
			return zero, false
		}
		pos := bits.TrailingZeros64(uint64(rest))
		rest &= rest - 1
		return E(pos), true
	}
}
