package shogo

import "testing"

func TestPawnAttacksForward(t *testing.T) {
	sq, _ := NewSquare(5, 5)
	wantBlack, _ := NewSquare(5, 4)
	wantWhite, _ := NewSquare(5, 6)

	bb := pawnAttacks[Black][sq]
	if bb.Count() != 1 || !bb.Has(wantBlack) {
		t.Fatalf("Black pawn at 5e should attack only 5d")
	}
	bb = pawnAttacks[White][sq]
	if bb.Count() != 1 || !bb.Has(wantWhite) {
		t.Fatalf("White pawn at 5e should attack only 5f")
	}
}

func TestPawnAttacksEdgeOfBoard(t *testing.T) {
	sq, _ := NewSquare(5, 1)
	if !pawnAttacks[Black][sq].Empty() {
		t.Fatalf("Black pawn on rank 1 should have no forward square")
	}
}

func TestKnightAttacksForward(t *testing.T) {
	sq, _ := NewSquare(5, 5)
	a, _ := NewSquare(4, 3)
	b, _ := NewSquare(6, 3)
	bb := knightAttacks[Black][sq]
	if bb.Count() != 2 || !bb.Has(a) || !bb.Has(b) {
		t.Fatalf("Black knight at 5e should attack 4c and 6c, got %v", bb.Squares())
	}
}

func TestKnightAttacksNearEdgeHasNone(t *testing.T) {
	sq, _ := NewSquare(5, 2)
	if !knightAttacks[Black][sq].Empty() {
		t.Fatalf("Black knight on rank 2 has no legal landing squares")
	}
}

func TestSilverAttacksPattern(t *testing.T) {
	sq, _ := NewSquare(5, 5)
	bb := silverAttacks[Black][sq]
	if bb.Count() != 5 {
		t.Fatalf("silver should have 5 attack squares in the middle of the board, got %d", bb.Count())
	}
	// Silver does not step straight sideways.
	left, _ := NewSquare(4, 5)
	right, _ := NewSquare(6, 5)
	if bb.Has(left) || bb.Has(right) {
		t.Fatalf("silver should not attack directly sideways")
	}
}

func TestGoldAttacksPattern(t *testing.T) {
	sq, _ := NewSquare(5, 5)
	bb := goldAttacks[Black][sq]
	if bb.Count() != 6 {
		t.Fatalf("gold should have 6 attack squares in the middle of the board, got %d", bb.Count())
	}
	// Gold does not step to the two back diagonals.
	backLeft, _ := NewSquare(4, 6)
	backRight, _ := NewSquare(6, 6)
	if bb.Has(backLeft) || bb.Has(backRight) {
		t.Fatalf("gold should not attack the two back diagonals")
	}
}

func TestKingAttacksAllEightDirections(t *testing.T) {
	sq, _ := NewSquare(5, 5)
	bb := kingAttacks[sq]
	if bb.Count() != 8 {
		t.Fatalf("king in the middle of the board should have 8 attack squares, got %d", bb.Count())
	}
}

func TestKingAttacksCorner(t *testing.T) {
	sq, _ := NewSquare(1, 1)
	bb := kingAttacks[sq]
	if bb.Count() != 3 {
		t.Fatalf("king in the corner should have 3 attack squares, got %d", bb.Count())
	}
}

func TestPromotionZone(t *testing.T) {
	z := promotionZone(Black)
	if z.Count() != 27 {
		t.Fatalf("promotion zone should cover 27 squares, got %d", z.Count())
	}
	inZone, _ := NewSquare(5, 3)
	outZone, _ := NewSquare(5, 4)
	if !z.Has(inZone) || z.Has(outZone) {
		t.Fatalf("Black promotion zone should be ranks 1-3")
	}

	zw := promotionZone(White)
	inZoneW, _ := NewSquare(5, 7)
	outZoneW, _ := NewSquare(5, 6)
	if !zw.Has(inZoneW) || zw.Has(outZoneW) {
		t.Fatalf("White promotion zone should be ranks 7-9")
	}
}

func TestLastRankAndLastTwoRanks(t *testing.T) {
	if lastRank(Black) != 1 || lastRank(White) != 9 {
		t.Fatalf("unexpected lastRank values")
	}
	a, b := lastTwoRanks(Black)
	if a != 1 || b != 2 {
		t.Fatalf("unexpected Black lastTwoRanks, got (%d, %d)", a, b)
	}
	a, b = lastTwoRanks(White)
	if a != 9 || b != 8 {
		t.Fatalf("unexpected White lastTwoRanks, got (%d, %d)", a, b)
	}
}
