package shogo

import "testing"

func TestNewSquareRoundTrip(t *testing.T) {
	for file := 1; file <= 9; file++ {
		for rank := 1; rank <= 9; rank++ {
			sq, err := NewSquare(file, rank)
			if err != nil {
				t.Fatalf("NewSquare(%d, %d): %v", file, rank, err)
			}
			if sq.File() != file || sq.Rank() != rank {
				t.Fatalf("NewSquare(%d, %d) round trip gave file=%d rank=%d", file, rank, sq.File(), sq.Rank())
			}
		}
	}
}

func TestNewSquareOutOfRange(t *testing.T) {
	cases := [][2]int{{0, 5}, {10, 5}, {5, 0}, {5, 10}}
	for _, c := range cases {
		if _, err := NewSquare(c[0], c[1]); err == nil {
			t.Fatalf("NewSquare(%d, %d) should have failed", c[0], c[1])
		}
	}
}

func TestSquareString(t *testing.T) {
	sq, err := NewSquare(7, 7)
	if err != nil {
		t.Fatalf("NewSquare: %v", err)
	}
	if got := sq.String(); got != "7g" {
		t.Fatalf("expected %q, got %q", "7g", got)
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("7g")
	if err != nil {
		t.Fatalf("ParseSquare: %v", err)
	}
	want, _ := NewSquare(7, 7)
	if sq != want {
		t.Fatalf("expected %v, got %v", want, sq)
	}

	if _, err := ParseSquare("xx"); err == nil {
		t.Fatalf("expected error for malformed square")
	}
	if _, err := ParseSquare("7"); err == nil {
		t.Fatalf("expected error for short square string")
	}
}
