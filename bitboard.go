// bitboard.go implements the 81-square bitboard. Shogi's board does not fit
// a single machine word, so a Bitboard is stored as two lanes: lo covers
// squares 0..62, hi covers squares 63..80 (only its low 18 bits are ever
// used). Every mutating operation must leave bits 18..63 of hi at zero.

package shogo

import "math/bits"

// Bitboard is a set of up to 81 squares.
type Bitboard struct {
	lo uint64 // squares 0..62
	hi uint64 // squares 63..80, only bits 0..17 meaningful
}

// hiMask keeps only the 18 bits of hi that correspond to real squares.
const hiMask = (1 << 18) - 1

// full81 is the bitboard containing every one of the 81 squares.
var full81 = Bitboard{lo: ^uint64(0) &^ (1 << 63), hi: hiMask}

// EmptyBitboard is the empty set. The zero value already is empty; this
// constructor exists for readability at call sites.
func EmptyBitboard() Bitboard { return Bitboard{} }

// SquareBitboard returns the singleton set containing sq.
func SquareBitboard(sq Square) Bitboard {
	var b Bitboard
	return b.Set(sq)
}

// Set returns a copy of b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	if sq < 63 {
		b.lo |= 1 << uint(sq)
	} else {
		b.hi |= 1 << uint(sq-63)
	}
	return b
}

// Clear returns a copy of b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	if sq < 63 {
		b.lo &^= 1 << uint(sq)
	} else {
		b.hi &^= 1 << uint(sq-63)
	}
	return b
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	if sq < 63 {
		return b.lo&(1<<uint(sq)) != 0
	}
	return b.hi&(1<<uint(sq-63)) != 0
}

// Union returns b | other.
func (b Bitboard) Union(other Bitboard) Bitboard {
	return Bitboard{b.lo | other.lo, b.hi | other.hi}
}

// Intersect returns b & other.
func (b Bitboard) Intersect(other Bitboard) Bitboard {
	return Bitboard{b.lo & other.lo, b.hi & other.hi}
}

// Diff returns b with every square of other removed (b &^ other).
func (b Bitboard) Diff(other Bitboard) Bitboard {
	return Bitboard{b.lo &^ other.lo, b.hi &^ other.hi}
}

// Complement returns the squares of the 81-square universe not in b.
func (b Bitboard) Complement() Bitboard {
	return Bitboard{^b.lo &^ (1 << 63), ^b.hi & hiMask}
}

// Empty reports whether b has no members.
func (b Bitboard) Empty() bool {
	return b.lo == 0 && b.hi == 0
}

// Count returns the number of squares in b (popcount).
func (b Bitboard) Count() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

// Equal reports structural equality.
func (b Bitboard) Equal(other Bitboard) bool {
	return b.lo == other.lo && b.hi == other.hi
}

// FirstSquare returns the lowest-indexed square in b and true, or false if b
// is empty.
func (b Bitboard) FirstSquare() (Square, bool) {
	if b.lo != 0 {
		return Square(bits.TrailingZeros64(b.lo)), true
	}
	if b.hi != 0 {
		return Square(63 + bits.TrailingZeros64(b.hi)), true
	}
	return 0, false
}

// PopFirst removes and returns the lowest-indexed square in b.
func (b *Bitboard) PopFirst() (Square, bool) {
	sq, ok := b.FirstSquare()
	if !ok {
		return 0, false
	}
	*b = b.Clear(sq)
	return sq, true
}

// Squares returns every set square in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for !b.Empty() {
		sq, _ := b.PopFirst()
		out = append(out, sq)
	}
	return out
}

// shiftDir translates every square in b by (df files, dr ranks), dropping
// any result that would fall off the 9x9 board. This is file-boundary-safe
// by construction: it recomputes file/rank per square rather than
// performing a raw machine-word shift-and-mask.
func (b Bitboard) shiftDir(df, dr int) Bitboard {
	var out Bitboard
	for _, sq := range b.Squares() {
		f := sq.File() + df
		r := sq.Rank() + dr
		if f < 1 || f > 9 || r < 1 || r > 9 {
			continue
		}
		ns, _ := NewSquare(f, r)
		out = out.Set(ns)
	}
	return out
}

func (b Bitboard) North() Bitboard     { return b.shiftDir(0, -1) }
func (b Bitboard) South() Bitboard     { return b.shiftDir(0, 1) }
func (b Bitboard) East() Bitboard      { return b.shiftDir(1, 0) }
func (b Bitboard) West() Bitboard      { return b.shiftDir(-1, 0) }
func (b Bitboard) NorthEast() Bitboard { return b.shiftDir(1, -1) }
func (b Bitboard) NorthWest() Bitboard { return b.shiftDir(-1, -1) }
func (b Bitboard) SouthEast() Bitboard { return b.shiftDir(1, 1) }
func (b Bitboard) SouthWest() Bitboard { return b.shiftDir(-1, 1) }
