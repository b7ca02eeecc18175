package shogo

import "testing"

func TestHandAddRemoveCount(t *testing.T) {
	var h Hand
	h.Add(Pawn)
	h.Add(Pawn)
	if h.Count(Pawn) != 2 {
		t.Fatalf("expected 2 pawns in hand, got %d", h.Count(Pawn))
	}
	if !h.Remove(Pawn) {
		t.Fatalf("Remove should succeed while a pawn is held")
	}
	if h.Count(Pawn) != 1 {
		t.Fatalf("expected 1 pawn left, got %d", h.Count(Pawn))
	}
}

func TestHandRemoveFromEmptyFails(t *testing.T) {
	var h Hand
	if h.Remove(Rook) {
		t.Fatalf("Remove from an empty hand should fail")
	}
}

func TestHandAddPromotedUnpromotesFirst(t *testing.T) {
	var h Hand
	h.Add(ProPawn)
	if h.Count(Pawn) != 1 {
		t.Fatalf("a captured promoted pawn should be added to hand as a base pawn")
	}
	if h.Count(ProPawn) != 0 {
		// ProPawn is out of range of the 7-slot hand array; Count must not
		// alias it onto the Pawn slot.
		t.Fatalf("Count(ProPawn) should not report a positive count")
	}
}

func TestHandRemovePromotedUnpromotesFirst(t *testing.T) {
	var h Hand
	h.Add(Rook)
	if !h.Remove(ProRook) {
		t.Fatalf("Remove(ProRook) should remove the base Rook from hand")
	}
	if h.Count(Rook) != 0 {
		t.Fatalf("expected hand to be empty after removing the only rook")
	}
}

func TestHandEmpty(t *testing.T) {
	var h Hand
	if !h.Empty() {
		t.Fatalf("a fresh hand should be empty")
	}
	h.Add(Gold)
	if h.Empty() {
		t.Fatalf("hand should not be empty after Add")
	}
}

func TestMaxHandCount(t *testing.T) {
	cases := []struct {
		pt   PieceType
		want int
	}{
		{Pawn, 18}, {Lance, 4}, {Knight, 4}, {Silver, 4},
		{Gold, 4}, {Bishop, 2}, {Rook, 2}, {King, 0},
	}
	for _, c := range cases {
		if got := maxHandCount(c.pt); got != c.want {
			t.Fatalf("maxHandCount(%s) = %d, want %d", c.pt, got, c.want)
		}
	}
}

func TestHandOrderCoversAllDroppableTypes(t *testing.T) {
	if len(handOrder) != 7 {
		t.Fatalf("expected 7 droppable piece types, got %d", len(handOrder))
	}
	seen := map[PieceType]bool{}
	for _, pt := range handOrder {
		seen[pt] = true
	}
	for _, pt := range []PieceType{Pawn, Lance, Knight, Silver, Gold, Bishop, Rook} {
		if !seen[pt] {
			t.Fatalf("handOrder missing %s", pt)
		}
	}
}
