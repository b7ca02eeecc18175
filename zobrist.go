// zobrist.go implements Zobrist hashing to support sennichite (repetition)
// detection. A position's hash folds together board placement, both
// hands, and the side to move, using the same math/rand/v2 keyed-XOR
// scheme the teacher corpus uses for chess.

package shogo

import "math/rand/v2"

var (
	pieceSquareKeys [numPieces][81]uint64
	// handKeys[color][pieceType][count] is XORed in for that exact count,
	// so adding/removing a piece just swaps one key for its neighbor.
	handKeys [2][7][19]uint64
	sideKey  uint64
)

// seedZobristKeys fills every table with fresh pseudo-random keys. It must
// run once, via InitZobristKeys, before any Position computes a hash.
func seedZobristKeys() {
	for p := 0; p < numPieces; p++ {
		for sq := 0; sq < 81; sq++ {
			pieceSquareKeys[p][sq] = rand.Uint64()
		}
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			for n := 0; n < 19; n++ {
				handKeys[c][pt][n] = rand.Uint64()
			}
		}
	}
	sideKey = rand.Uint64()
}

// computeHashKey recomputes the Zobrist hash for p from scratch. It runs at
// construction and after every move in MakeMove; UnmakeMove restores the
// previous hash from the MoveRecord instead.
func (p *Position) computeHashKey() uint64 {
	var h uint64
	for sq := Square(0); sq < 81; sq++ {
		if piece := p.Board.PieceAt(sq); piece != PieceNone {
			h ^= pieceSquareKeys[piece][sq]
		}
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			h ^= handKeys[c][pt][p.Hands[c].counts[pt]]
		}
	}
	if p.Side == White {
		h ^= sideKey
	}
	return h
}

// HashKey returns the position's current stored Zobrist hash, used by
// sennichite detection.
func (p *Position) HashKey() uint64 { return p.hashKey }
