package shogo

import "testing"

func TestBoardPlaceRemoveConsistency(t *testing.T) {
	b := NewBoard()
	sq, _ := NewSquare(5, 5)
	p := NewPiece(Rook, Black)

	b.place(p, sq)
	if b.PieceAt(sq) != p {
		t.Fatalf("PieceAt should report the placed piece")
	}
	if !b.PieceBB(Rook, Black).Has(sq) {
		t.Fatalf("PieceBB should reflect the placed piece")
	}
	if !b.ColorBB(Black).Has(sq) {
		t.Fatalf("ColorBB should reflect the placed piece's color")
	}
	if !b.Occupancy().Has(sq) {
		t.Fatalf("Occupancy should reflect the placed piece")
	}

	b.remove(p, sq)
	if b.PieceAt(sq) != PieceNone {
		t.Fatalf("PieceAt should be PieceNone after remove")
	}
	if b.PieceBB(Rook, Black).Has(sq) || b.ColorBB(Black).Has(sq) || b.Occupancy().Has(sq) {
		t.Fatalf("all board representations should be cleared after remove")
	}
}

func TestBoardKing(t *testing.T) {
	b := NewBoard()
	sq, _ := NewSquare(5, 9)
	b.place(NewPiece(King, Black), sq)

	got, ok := b.King(Black)
	if !ok || got != sq {
		t.Fatalf("King(Black) should report the placed king's square")
	}
	if _, ok := b.King(White); ok {
		t.Fatalf("King(White) should report false when no White king is on the board")
	}
}

func TestNewPositionDefaults(t *testing.T) {
	p := NewPosition()
	if p.SideToMove() != Black {
		t.Fatalf("a fresh position should have Black to move")
	}
	if p.PlyCount() != 1 {
		t.Fatalf("a fresh position should start at ply 1, got %d", p.PlyCount())
	}
	if _, ok := p.FindKing(Black); ok {
		t.Fatalf("an empty board should report no king")
	}
}

func TestPositionPlayerBB(t *testing.T) {
	p := NewPosition()
	sq, _ := NewSquare(1, 1)
	p.Board.place(NewPiece(Pawn, White), sq)
	if !p.PlayerBB(White).Has(sq) {
		t.Fatalf("PlayerBB(White) should include the placed piece's square")
	}
	if p.PlayerBB(Black).Has(sq) {
		t.Fatalf("PlayerBB(Black) should not include a White piece's square")
	}
}
