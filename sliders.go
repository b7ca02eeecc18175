// sliders.go implements attack generation for the sliding pieces (lance,
// bishop, rook, and their promotions) using occupancy-indexed lookup
// tables, built once by InitAttackTables.
//
// Grounded on the teacher's magic-bitboard approach (precalc.go/init.go:
// relevant-occupancy mask + per-square attack table indexed by occupancy),
// adapted to a software PEXT-style index instead of a multiply-by-magic
// hash: deriving real magic constants for an 81-square, 9-file board would
// require its own magic-number search, while PEXT indexing (spec ??4.2
// allows either) needs no search and is exact by construction.
package shogo

// sliderTable is the per-square occupancy-indexed attack lookup for one
// sliding piece kind.
type sliderTable struct {
	mask        Bitboard // relevant blocker squares (rays, edge excluded)
	maskSquares []Square // mask's squares, fixed order, used to build the index
	attacks     []Bitboard
}

func (t *sliderTable) lookup(occ Bitboard) Bitboard {
	relevant := occ.Intersect(t.mask)
	idx := 0
	for i, sq := range t.maskSquares {
		if relevant.Has(sq) {
			idx |= 1 << uint(i)
		}
	}
	return t.attacks[idx]
}

// rayAttack walks from sq in the (df, dr) direction until it falls off the
// board or hits an occupied square (inclusive of the blocker).
func rayAttack(sq Square, occ Bitboard, df, dr int) Bitboard {
	var out Bitboard
	f, r := sq.File(), sq.Rank()
	for {
		f += df
		r += dr
		if f < 1 || f > 9 || r < 1 || r > 9 {
			break
		}
		ns, _ := NewSquare(f, r)
		out = out.Set(ns)
		if occ.Has(ns) {
			break
		}
	}
	return out
}

// rayMask is rayAttack against an empty board, with the farthest (edge)
// square removed — that square's occupancy never changes the attack set,
// since there is nothing beyond it to block.
func rayMask(sq Square, df, dr int) Bitboard {
	full := rayAttack(sq, Bitboard{}, df, dr)
	if full.Empty() {
		return full
	}
	// Drop the farthest square (last one visited by the walk).
	f, r := sq.File(), sq.Rank()
	var last Square
	for {
		nf, nr := f+df, r+dr
		if nf < 1 || nf > 9 || nr < 1 || nr > 9 {
			break
		}
		f, r = nf, nr
		last, _ = NewSquare(f, r)
	}
	return full.Clear(last)
}

func buildSliderTable(mask Bitboard, gen func(occ Bitboard) Bitboard) sliderTable {
	squares := mask.Squares()
	size := 1 << uint(len(squares))
	table := make([]Bitboard, size)
	for idx := 0; idx < size; idx++ {
		var occ Bitboard
		for i, sq := range squares {
			if idx&(1<<uint(i)) != 0 {
				occ = occ.Set(sq)
			}
		}
		table[idx] = gen(occ)
	}
	return sliderTable{mask: mask, maskSquares: squares, attacks: table}
}

var (
	lanceTables  [2][81]sliderTable
	bishopTables [81]sliderTable
	rookTables   [81]sliderTable
)

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

func buildSliderTables() {
	for sq := Square(0); sq < 81; sq++ {
		for _, c := range [2]Color{Black, White} {
			_, fdr := forwardDir(c)
			mask := rayMask(sq, 0, fdr)
			lanceTables[c][sq] = buildSliderTable(mask, func(occ Bitboard) Bitboard {
				return rayAttack(sq, occ, 0, fdr)
			})
		}

		var bMask, rMask Bitboard
		for _, d := range bishopDirs {
			bMask = bMask.Union(rayMask(sq, d[0], d[1]))
		}
		for _, d := range rookDirs {
			rMask = rMask.Union(rayMask(sq, d[0], d[1]))
		}

		bishopTables[sq] = buildSliderTable(bMask, func(occ Bitboard) Bitboard {
			var out Bitboard
			for _, d := range bishopDirs {
				out = out.Union(rayAttack(sq, occ, d[0], d[1]))
			}
			return out
		})

		rookTables[sq] = buildSliderTable(rMask, func(occ Bitboard) Bitboard {
			var out Bitboard
			for _, d := range rookDirs {
				out = out.Union(rayAttack(sq, occ, d[0], d[1]))
			}
			return out
		})
	}
}

// lanceAttacks returns the squares a lance of color c on sq attacks given
// occupancy occ.
func lanceAttacks(c Color, sq Square, occ Bitboard) Bitboard {
	return lanceTables[c][sq].lookup(occ)
}

// bishopAttacks returns the squares a bishop on sq attacks given occ.
func bishopAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopTables[sq].lookup(occ)
}

// rookAttacks returns the squares a rook on sq attacks given occ.
func rookAttacks(sq Square, occ Bitboard) Bitboard {
	return rookTables[sq].lookup(occ)
}

// horseAttacks (promoted bishop, "dragon horse"): bishop slides plus a
// king step.
func horseAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopAttacks(sq, occ).Union(kingAttacks[sq])
}

// dragonAttacks (promoted rook, "dragon king"): rook slides plus a king
// step.
func dragonAttacks(sq Square, occ Bitboard) Bitboard {
	return rookAttacks(sq, occ).Union(kingAttacks[sq])
}

// pieceAttacks returns the full attack set of a piece of type pt and color
// c standing on sq, given the board occupancy occ. This is the single
// entry point move generation uses to query "what does this piece
// threaten", covering both sliders and non-sliders.
func pieceAttacks(pt PieceType, c Color, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnAttacks[c][sq]
	case Knight:
		return knightAttacks[c][sq]
	case Silver:
		return silverAttacks[c][sq]
	case King:
		return kingAttacks[sq]
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return goldAttacks[c][sq]
	case Lance:
		return lanceAttacks(c, sq, occ)
	case Bishop:
		return bishopAttacks(sq, occ)
	case Rook:
		return rookAttacks(sq, occ)
	case ProBishop:
		return horseAttacks(sq, occ)
	case ProRook:
		return dragonAttacks(sq, occ)
	}
	return Bitboard{}
}
