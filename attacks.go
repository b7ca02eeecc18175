// attacks.go implements the precomputed attack tables for the non-sliding
// piece kinds (pawn, knight, silver, gold and every gold-like promoted
// piece, and king). Sliding pieces are handled in sliders.go.
//
// Tables are process-wide immutable state after InitAttackTables runs; see
// init.go for the idempotent initializer.

package shogo

var (
	pawnAttacks   [2][81]Bitboard
	knightAttacks [2][81]Bitboard
	silverAttacks [2][81]Bitboard
	goldAttacks   [2][81]Bitboard
	kingAttacks   [81]Bitboard
)

// forwardDir returns the (file-delta, rank-delta) unit step a piece of the
// given color considers "forward". Black advances toward rank 1, White
// toward rank 9.
func forwardDir(c Color) (df, dr int) {
	if c == Black {
		return 0, -1
	}
	return 0, 1
}

func stepBitboard(sq Square, steps [][2]int) Bitboard {
	var out Bitboard
	f, r := sq.File(), sq.Rank()
	for _, d := range steps {
		nf, nr := f+d[0], r+d[1]
		if nf < 1 || nf > 9 || nr < 1 || nr > 9 {
			continue
		}
		ns, _ := NewSquare(nf, nr)
		out = out.Set(ns)
	}
	return out
}

func buildNonSliderTables() {
	for sq := Square(0); sq < 81; sq++ {
		for _, c := range [2]Color{Black, White} {
			_, fdr := forwardDir(c)

			pawnAttacks[c][sq] = stepBitboard(sq, [][2]int{{0, fdr}})

			knightAttacks[c][sq] = stepBitboard(sq, [][2]int{
				{1, 2 * fdr}, {-1, 2 * fdr},
			})

			silverAttacks[c][sq] = stepBitboard(sq, [][2]int{
				{0, fdr}, {1, fdr}, {-1, fdr}, {1, -fdr}, {-1, -fdr},
			})

			goldAttacks[c][sq] = stepBitboard(sq, [][2]int{
				{0, fdr}, {0, -fdr}, {1, 0}, {-1, 0}, {1, fdr}, {-1, fdr},
			})
		}

		kingAttacks[sq] = stepBitboard(sq, [][2]int{
			{0, 1}, {0, -1}, {1, 0}, {-1, 0},
			{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
		})
	}
}

// goldLikeAttacks returns the gold-style attack set for pt (Gold, or any of
// the four non-sliding promoted kinds) at sq for color c.
func goldLikeAttacks(pt PieceType, c Color, sq Square) Bitboard {
	_ = pt // all gold-like kinds share the same movement pattern.
	return goldAttacks[c][sq]
}

// promotionZone returns the far three ranks for color c: ranks 1-3 for
// Black, ranks 7-9 for White.
func promotionZone(c Color) Bitboard {
	var z Bitboard
	for file := 1; file <= 9; file++ {
		ranks := [3]int{1, 2, 3}
		if c == White {
			ranks = [3]int{7, 8, 9}
		}
		for _, r := range ranks {
			sq, _ := NewSquare(file, r)
			z = z.Set(sq)
		}
	}
	return z
}

// lastRank returns the single farthest rank for color c (rank 1 for Black,
// rank 9 for White) — the rank on which a pawn/lance would have no further
// move.
func lastRank(c Color) int {
	if c == Black {
		return 1
	}
	return 9
}

// lastTwoRanks returns the two farthest ranks for color c, on which a
// knight would have no further move.
func lastTwoRanks(c Color) (int, int) {
	if c == Black {
		return 1, 2
	}
	return 9, 8
}
