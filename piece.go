// piece.go defines the 14 shogi piece kinds and the (type, color) pairs that
// populate the board.

package shogo

// PieceType identifies one of the 14 shogi piece kinds.
type PieceType int

const (
	Pawn PieceType = iota
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	ProPawn   // Tokin.
	ProLance
	ProKnight
	ProSilver
	ProBishop // Horse: bishop slides + king steps.
	ProRook   // Dragon: rook slides + king steps.
	numPieceTypes
)

var pieceTypeLetters = [numPieceTypes]byte{
	'P', 'L', 'N', 'S', 'G', 'B', 'R', 'K',
	'P', 'L', 'N', 'S', 'B', 'R', // promoted forms reuse their base letter with a '+' prefix.
}

// Letter returns the SFEN base letter for the piece type (uppercase).
func (pt PieceType) Letter() byte {
	return pieceTypeLetters[pt]
}

// IsPromoted reports whether pt is one of the six promoted kinds.
func (pt PieceType) IsPromoted() bool {
	return pt >= ProPawn
}

// IsPromotable reports whether pt may legally be promoted. King and Gold
// (and the already-promoted kinds) are not promotable.
func (pt PieceType) IsPromotable() bool {
	switch pt {
	case Pawn, Lance, Knight, Silver, Bishop, Rook:
		return true
	default:
		return false
	}
}

// Promote returns the promoted form of pt. Calling Promote on a piece for
// which IsPromotable is false is undefined; callers must check first.
func (pt PieceType) Promote() PieceType {
	switch pt {
	case Pawn:
		return ProPawn
	case Lance:
		return ProLance
	case Knight:
		return ProKnight
	case Silver:
		return ProSilver
	case Bishop:
		return ProBishop
	case Rook:
		return ProRook
	default:
		return pt
	}
}

// Unpromote returns the base form of pt. Unpromoting a base piece returns
// itself.
func (pt PieceType) Unpromote() PieceType {
	switch pt {
	case ProPawn:
		return Pawn
	case ProLance:
		return Lance
	case ProKnight:
		return Knight
	case ProSilver:
		return Silver
	case ProBishop:
		return Bishop
	case ProRook:
		return Rook
	default:
		return pt
	}
}

// IsSlider reports whether the piece type moves along an unbounded ray
// (lance, bishop, rook, and their promotions).
func (pt PieceType) IsSlider() bool {
	switch pt {
	case Lance, Bishop, Rook, ProBishop, ProRook:
		return true
	default:
		return false
	}
}

// GoldLike reports whether pt moves like a gold general (gold and every
// non-slider promoted piece).
func (pt PieceType) GoldLike() bool {
	switch pt {
	case Gold, ProPawn, ProLance, ProKnight, ProSilver:
		return true
	default:
		return false
	}
}

func (pt PieceType) String() string {
	names := [numPieceTypes]string{
		"Pawn", "Lance", "Knight", "Silver", "Gold", "Bishop", "Rook", "King",
		"ProPawn", "ProLance", "ProKnight", "ProSilver", "ProBishop", "ProRook",
	}
	if pt < 0 || pt >= numPieceTypes {
		return "?"
	}
	return names[pt]
}

// Piece is a dense index over the 28 legal (PieceType, Color) combinations,
// used directly as an index into Position's per-piece bitboard array.
// PieceNone is the sentinel for an empty mailbox square.
type Piece int

// PieceNone marks an empty square.
const PieceNone Piece = -1

// NewPiece builds the dense index for the given type and color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece(int(pt)*2 + int(c))
}

// Type extracts the PieceType from a dense Piece index.
func (p Piece) Type() PieceType {
	return PieceType(int(p) / 2)
}

// Color extracts the Color from a dense Piece index.
func (p Piece) Color() Color {
	return Color(int(p) % 2)
}

// numPieces is the number of legal (type, color) combinations, used to size
// per-piece bitboard arrays.
const numPieces = int(numPieceTypes) * 2

// Letter returns the SFEN board letter for the piece, with case set by
// color and a leading '+' for promoted kinds.
func (p Piece) Letter() string {
	t := p.Type()
	letter := t.Letter()
	if p.Color() == White {
		letter = letter + ('a' - 'A')
	}
	if t.IsPromoted() {
		return "+" + string(letter)
	}
	return string(letter)
}
