// movegen.go implements legal move generation, per spec section 4.4. It
// runs the three phases the spec names: king-safety context (checkers,
// pins), board moves, and drop moves (nifu, uchifuzume).

package shogo

// goldLikeTypes are the piece types that move like a gold general.
var goldLikeTypes = [5]PieceType{Gold, ProPawn, ProLance, ProKnight, ProSilver}

func (p *Position) goldLikeBB(c Color) Bitboard {
	var bb Bitboard
	for _, pt := range goldLikeTypes {
		bb = bb.Union(p.Board.PieceBB(pt, c))
	}
	return bb
}

// checkersAttacking returns the set of squares holding an enemy piece that
// attacks kingOwner's king at kingSq. It uses the "attack from the king
// square" reciprocity trick for every piece kind: for directional pieces
// (pawn/knight/silver/gold/lance) the lookup is keyed by kingOwner's own
// color, since their move pattern is colour-asymmetric and the reciprocal
// relation only holds that way; bishop/rook/king attacks are
// colour-symmetric so the plain lookup from the king square already works
// in both directions.
func (p *Position) checkersAttacking(kingOwner Color, kingSq Square) Bitboard {
	enemy := kingOwner.Flip()
	occ := p.Board.Occupancy()
	var checkers Bitboard

	checkers = checkers.Union(pawnAttacks[kingOwner][kingSq].Intersect(p.Board.PieceBB(Pawn, enemy)))
	checkers = checkers.Union(knightAttacks[kingOwner][kingSq].Intersect(p.Board.PieceBB(Knight, enemy)))
	checkers = checkers.Union(silverAttacks[kingOwner][kingSq].Intersect(p.Board.PieceBB(Silver, enemy)))
	checkers = checkers.Union(goldAttacks[kingOwner][kingSq].Intersect(p.goldLikeBB(enemy)))
	checkers = checkers.Union(lanceAttacks(kingOwner, kingSq, occ).Intersect(p.Board.PieceBB(Lance, enemy)))

	bishopLike := p.Board.PieceBB(Bishop, enemy).Union(p.Board.PieceBB(ProBishop, enemy))
	checkers = checkers.Union(bishopAttacks(kingSq, occ).Intersect(bishopLike))

	rookLike := p.Board.PieceBB(Rook, enemy).Union(p.Board.PieceBB(ProRook, enemy))
	checkers = checkers.Union(rookAttacks(kingSq, occ).Intersect(rookLike))

	checkers = checkers.Union(kingAttacks[kingSq].Intersect(p.Board.PieceBB(King, enemy)))

	return checkers
}

// attacksBy returns every square attacked by color c's pieces, given an
// explicit occupancy (the caller removes the defending king from occ
// before calling this to avoid "shadow" legality through the king's own
// square — spec section 4.4/4.9).
func (p *Position) attacksBy(c Color, occ Bitboard) Bitboard {
	var out Bitboard
	for _, sq := range p.Board.PieceBB(Lance, c).Squares() {
		out = out.Union(lanceAttacks(c, sq, occ))
	}
	for _, sq := range p.Board.PieceBB(Bishop, c).Squares() {
		out = out.Union(bishopAttacks(sq, occ))
	}
	for _, sq := range p.Board.PieceBB(Rook, c).Squares() {
		out = out.Union(rookAttacks(sq, occ))
	}
	for _, sq := range p.Board.PieceBB(ProBishop, c).Squares() {
		out = out.Union(horseAttacks(sq, occ))
	}
	for _, sq := range p.Board.PieceBB(ProRook, c).Squares() {
		out = out.Union(dragonAttacks(sq, occ))
	}
	for _, sq := range p.Board.PieceBB(Pawn, c).Squares() {
		out = out.Union(pawnAttacks[c][sq])
	}
	for _, sq := range p.Board.PieceBB(Knight, c).Squares() {
		out = out.Union(knightAttacks[c][sq])
	}
	for _, sq := range p.Board.PieceBB(Silver, c).Squares() {
		out = out.Union(silverAttacks[c][sq])
	}
	for _, pt := range goldLikeTypes {
		for _, sq := range p.Board.PieceBB(pt, c).Squares() {
			out = out.Union(goldAttacks[c][sq])
		}
	}
	for _, sq := range p.Board.PieceBB(King, c).Squares() {
		out = out.Union(kingAttacks[sq])
	}
	return out
}

// pinInfo pairs each pinned square with the ray it is permitted to move
// along (including capturing the pinner).
type pinInfo struct {
	squares map[Square]Bitboard
}

func newPinInfo() pinInfo { return pinInfo{squares: make(map[Square]Bitboard)} }

type pinDirection struct {
	df, dr  int
	pinners []PieceType
}

// pinDirections lists every ray a slider could pin along, annotated with
// the enemy piece kinds capable of pinning along that specific ray. The
// king-owner's own forward direction additionally allows Lance, since a
// lance only ever attacks in its own forward direction — which, from the
// king's perspective, is the king owner's own forward axis (same relation
// checkersAttacking relies on for lance checks).
func pinDirections(kingOwner Color) []pinDirection {
	_, fdr := forwardDir(kingOwner)
	return []pinDirection{
		{0, fdr, []PieceType{Lance, Rook, ProRook}},
		{0, -fdr, []PieceType{Rook, ProRook}},
		{1, 0, []PieceType{Rook, ProRook}},
		{-1, 0, []PieceType{Rook, ProRook}},
		{1, 1, []PieceType{Bishop, ProBishop}},
		{1, -1, []PieceType{Bishop, ProBishop}},
		{-1, 1, []PieceType{Bishop, ProBishop}},
		{-1, -1, []PieceType{Bishop, ProBishop}},
	}
}

func isOneOf(pt PieceType, set []PieceType) bool {
	for _, x := range set {
		if pt == x {
			return true
		}
	}
	return false
}

// computePinned finds, for kingOwner's king at kingSq, every own piece
// pinned against the king by an enemy slider "x-ray": walk each ray from
// the king, find the first blocker; if it is an own piece, keep walking
// the same ray for a matching enemy slider beyond it.
func (p *Position) computePinned(kingOwner Color, kingSq Square) pinInfo {
	info := newPinInfo()
	enemy := kingOwner.Flip()
	occ := p.Board.Occupancy()

	for _, d := range pinDirections(kingOwner) {
		var ray Bitboard
		f, r := kingSq.File(), kingSq.Rank()
		var blocker Square
		foundBlocker := false
		for {
			f += d.df
			r += d.dr
			if f < 1 || f > 9 || r < 1 || r > 9 {
				break
			}
			sq, _ := NewSquare(f, r)
			ray = ray.Set(sq)
			if !foundBlocker {
				if occ.Has(sq) {
					blocker = sq
					foundBlocker = true
				}
				continue
			}
			if occ.Has(sq) {
				pc := p.Board.PieceAt(sq)
				if pc.Color() == enemy && isOneOf(pc.Type(), d.pinners) {
					if p.Board.PieceAt(blocker).Color() == kingOwner {
						info.squares[blocker] = ray
					}
				}
				break
			}
		}
	}
	return info
}

// rayBetween returns the squares strictly between a and b if they are
// aligned on a rank, file, or diagonal; otherwise empty. Used to build the
// interposition mask when in check from a single slider.
func rayBetween(a, b Square) Bitboard {
	df := sign(b.File() - a.File())
	dr := sign(b.Rank() - a.Rank())
	if df == 0 && dr == 0 {
		return Bitboard{}
	}
	if df != 0 && dr != 0 && abs(b.File()-a.File()) != abs(b.Rank()-a.Rank()) {
		return Bitboard{}
	}
	var out Bitboard
	f, r := a.File()+df, a.Rank()+dr
	for f != b.File() || r != b.Rank() {
		if f < 1 || f > 9 || r < 1 || r > 9 {
			return Bitboard{}
		}
		sq, _ := NewSquare(f, r)
		out = out.Set(sq)
		f += df
		r += dr
	}
	return out
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// boardPieceTypes lists every non-king piece type, in a fixed order, used
// to iterate the mover's own pieces during board-move generation.
var boardPieceTypes = [13]PieceType{
	Pawn, Lance, Knight, Silver, Gold, Bishop, Rook,
	ProPawn, ProLance, ProKnight, ProSilver, ProBishop, ProRook,
}

// promotionChoice decides, for a piece of type pt and color c moving from
// "from" to "to", whether the non-promoting and/or promoting form of the
// move should be emitted (spec section 4.4(b)).
func promotionChoice(pt PieceType, c Color, from, to Square) (emitPlain, emitPromote bool) {
	if !pt.IsPromotable() {
		return true, false
	}
	zone := promotionZone(c)
	if !zone.Has(from) && !zone.Has(to) {
		return true, false
	}
	switch pt {
	case Pawn, Lance:
		if to.Rank() == lastRank(c) {
			return false, true
		}
	case Knight:
		r1, r2 := lastTwoRanks(c)
		if to.Rank() == r1 || to.Rank() == r2 {
			return false, true
		}
	}
	return true, true
}

// GenerateLegalMoves returns the complete set of legal moves for the side
// to move.
func (p *Position) GenerateLegalMoves() []Move {
	return p.generateLegalMoves(false)
}

func (p *Position) generateLegalMoves(skipUchifuzume bool) []Move {
	c := p.Side
	kingSq, hasKing := p.Board.King(c)
	if !hasKing {
		return nil
	}
	occ := p.Board.Occupancy()
	ownOcc := p.Board.ColorBB(c)

	checkers := p.checkersAttacking(c, kingSq)
	numCheckers := checkers.Count()

	moves := p.genKingMoves(c, kingSq, occ)

	if numCheckers > 1 {
		return moves
	}

	blockMask := full81
	inCheck := numCheckers == 1
	if inCheck {
		checkerSq, _ := checkers.FirstSquare()
		blockMask = SquareBitboard(checkerSq).Union(rayBetween(kingSq, checkerSq))
	}

	pins := p.computePinned(c, kingSq)

	for _, pt := range boardPieceTypes {
		for _, from := range p.Board.PieceBB(pt, c).Squares() {
			dests := pieceAttacks(pt, c, from, occ).Diff(ownOcc)
			if ray, isPinned := pins.squares[from]; isPinned {
				dests = dests.Intersect(ray)
			}
			if inCheck {
				dests = dests.Intersect(blockMask)
			}
			for _, to := range dests.Squares() {
				emitPlain, emitPromote := promotionChoice(pt, c, from, to)
				if emitPlain {
					moves = append(moves, NewNormalMove(from, to, false))
				}
				if emitPromote {
					moves = append(moves, NewNormalMove(from, to, true))
				}
			}
		}
	}

	moves = append(moves, p.genDropMoves(c, occ, blockMask, inCheck, skipUchifuzume)...)

	return moves
}

// genKingMoves generates the king's moves: one step to any square not
// occupied by an own piece and not attacked by the enemy once the king has
// vacated its square.
func (p *Position) genKingMoves(c Color, kingSq Square, occ Bitboard) []Move {
	occWithoutKing := occ.Clear(kingSq)
	enemy := c.Flip()
	attacked := p.attacksBy(enemy, occWithoutKing)

	dests := kingAttacks[kingSq].Diff(p.Board.ColorBB(c)).Diff(attacked)

	var moves []Move
	for _, to := range dests.Squares() {
		moves = append(moves, NewNormalMove(kingSq, to, false))
	}
	return moves
}

// genDropMoves generates every legal drop for the side to move.
func (p *Position) genDropMoves(c Color, occ Bitboard, blockMask Bitboard, inCheck, skipUchifuzume bool) []Move {
	var moves []Move
	empty := occ.Complement()

	kingSq, hasEnemyKing := p.Board.King(c.Flip())

	for _, pt := range handOrder {
		if p.Hands[c].Count(pt) == 0 {
			continue
		}
		dests := empty
		if inCheck {
			dests = dests.Intersect(blockMask)
		}
		for _, to := range dests.Squares() {
			if !dropDestinationValid(pt, c, to) {
				continue
			}
			if pt == Pawn {
				if p.hasUnpromotedPawnOnFile(c, to.File()) {
					continue // nifu
				}
				if hasEnemyKing && !skipUchifuzume && pawnAttacks[c][to].Has(kingSq) {
					if p.wouldBeUchifuzume(c, to) {
						continue
					}
				}
			}
			moves = append(moves, NewDropMove(pt, to))
		}
	}
	return moves
}

// dropDestinationValid reports whether a piece of type pt dropped by color
// c on sq would have at least one subsequent move (spec section 4.4(c)).
func dropDestinationValid(pt PieceType, c Color, sq Square) bool {
	switch pt {
	case Pawn, Lance:
		return sq.Rank() != lastRank(c)
	case Knight:
		r1, r2 := lastTwoRanks(c)
		return sq.Rank() != r1 && sq.Rank() != r2
	default:
		return true
	}
}

func (p *Position) hasUnpromotedPawnOnFile(c Color, file int) bool {
	for _, sq := range p.Board.PieceBB(Pawn, c).Squares() {
		if sq.File() == file {
			return true
		}
	}
	return false
}

// wouldBeUchifuzume checks whether dropping a pawn of color c on sq (which
// gives check, per the caller) would be an illegal pawn-drop mate: the
// drop is simulated, the opponent's legal replies are generated (without
// re-entering uchifuzume checking, bounding the recursion to one extra
// ply per spec section 4.4/4.9), and then undone.
func (p *Position) wouldBeUchifuzume(c Color, sq Square) bool {
	piece := NewPiece(Pawn, c)
	p.Board.place(piece, sq)
	p.Hands[c].counts[Pawn]--

	p.Side = c.Flip()
	replies := p.generateLegalMoves(true)
	p.Side = c

	p.Hands[c].counts[Pawn]++
	p.Board.remove(piece, sq)

	return len(replies) == 0
}

// LegalMovesFrom returns the destination squares reachable by a legal
// board move originating at sq, for the side to move.
func (p *Position) LegalMovesFrom(sq Square) Bitboard {
	var out Bitboard
	for _, m := range p.GenerateLegalMoves() {
		if !m.IsDrop && m.From == sq {
			out = out.Set(m.To)
		}
	}
	return out
}
