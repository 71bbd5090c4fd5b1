// Package movegen implements the Move Generator as a resumable state
// machine: each call to Next produces exactly one pseudo-legal move and
// persists its enumeration cursor in the arena, never as a language-level
// iterator or goroutine.
package movegen

import "github.com/hailam/chess75/internal/arena"

// Move is one pseudo-legal move produced by the generator.
type Move struct {
	From, To int
	Promo    bool
}

// direction deltas shared by bishop, rook, queen and king, in the fixed
// order: left, right, up, down, up-left, up-right, down-right, down-left.
var rayDirs = [8][2]int{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

var bishopDirs = rayDirs[4:8]
var rookDirs = rayDirs[0:4]
var queenDirs = rayDirs[0:8]
var kingDirs = rayDirs[0:8]

// knightOffsets is fixed by the observable move-order contract; it is
// not derivable from a simpler rule and must not be reordered.
var knightOffsets = [8][2]int{
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
}

func maxDir(k arena.Kind) int {
	switch k {
	case arena.KindPawn:
		return 4
	case arena.KindKnight, arena.KindQueen, arena.KindKing:
		return 8
	case arena.KindBishop, arena.KindRook:
		return 4
	}
	return 0
}

// Reset clears the enumeration cursor so the next call to Next starts
// scanning from the first square.
func Reset(a *arena.Arena) {
	a.Mem[arena.CursorPieceYX] = 0
	a.Mem[arena.CursorFromSq] = 0
	a.Mem[arena.CursorToSq] = 0
	a.Mem[arena.CursorDir] = 0
}

// ordinalOf places square (y,x) at ordinal (8-y)*8+(x-1): rank 8 first,
// descending to rank 1, ascending by file within a rank. This is the
// order the generator advances through squares looking for the side to
// move's next piece.
func ordinalOf(yx int) int {
	y, x := yx/10, yx%10
	return (8-y)*8 + (x - 1)
}

func squareAt(ord int) int {
	y := 8 - ord/8
	x := ord%8 + 1
	return 10*y + x
}

func scanNextOwnPiece(a *arena.Arena, side arena.Color, afterYX int) (int, bool) {
	start := -1
	if afterYX != 0 {
		start = ordinalOf(afterYX)
	}
	for ord := start + 1; ord < 64; ord++ {
		yx := squareAt(ord)
		id := a.Read(yx)
		if !id.IsEmpty() && id.Color == side {
			return yx, true
		}
	}
	return 0, false
}

// Next advances the cursor and returns the next pseudo-legal move for
// side, or ok=false when enumeration is exhausted. Exhaustion resets the
// cursor, so calling Next again afterwards starts the enumeration over.
func Next(a *arena.Arena, side arena.Color) (m Move, ok bool) {
	pieceYX := a.Mem[arena.CursorPieceYX]
	fromSq := a.Mem[arena.CursorFromSq]
	toSq := a.Mem[arena.CursorToSq]
	dir := a.Mem[arena.CursorDir]

	for {
		if dir == 0 {
			next, found := scanNextOwnPiece(a, side, pieceYX)
			if !found {
				Reset(a)
				return Move{}, false
			}
			pieceYX, fromSq, toSq = next, next, next
			dir = 1
		}

		kind := a.Read(fromSq).Kind
		if dir > maxDir(kind) {
			dir = 0
			pieceYX = fromSq
			continue
		}

		switch kind {
		case arena.KindPawn:
			mv, consumed, advance := pawnCandidate(a, side, fromSq, dir)
			if !consumed {
				dir++
				continue
			}
			if advance {
				dir++
			}
			save(a, pieceYX, fromSq, toSq, dir)
			return mv, true

		case arena.KindKnight:
			dy, dx := knightOffsets[dir-1][0], knightOffsets[dir-1][1]
			to := fromSq + dy*10 + dx
			dir++
			if arena.IsOffBoard(to) {
				continue
			}
			occ := a.Read(to)
			if !occ.IsEmpty() && occ.Color == side {
				continue
			}
			save(a, pieceYX, fromSq, toSq, dir)
			return Move{From: fromSq, To: to}, true

		case arena.KindKing:
			dy, dx := kingDirs[dir-1][0], kingDirs[dir-1][1]
			to := fromSq + dy*10 + dx
			dir++
			if arena.IsOffBoard(to) {
				continue
			}
			occ := a.Read(to)
			if !occ.IsEmpty() && occ.Color == side {
				continue
			}
			save(a, pieceYX, fromSq, toSq, dir)
			return Move{From: fromSq, To: to}, true

		case arena.KindBishop, arena.KindRook, arena.KindQueen:
			dirs := rayDirs[0:8]
			switch kind {
			case arena.KindBishop:
				dirs = bishopDirs
			case arena.KindRook:
				dirs = rookDirs
			case arena.KindQueen:
				dirs = queenDirs
			}
			dy, dx := dirs[dir-1][0], dirs[dir-1][1]
			to := toSq + dy*10 + dx
			if arena.IsOffBoard(to) {
				dir++
				toSq = fromSq
				continue
			}
			occ := a.Read(to)
			if occ.IsEmpty() {
				toSq = to
				save(a, pieceYX, fromSq, toSq, dir)
				return Move{From: fromSq, To: to}, true
			}
			if occ.Color == side {
				dir++
				toSq = fromSq
				continue
			}
			// enemy piece: emit the capture, ray terminates
			dir++
			toSq = fromSq
			save(a, pieceYX, fromSq, toSq, dir)
			return Move{From: fromSq, To: to}, true

		default:
			dir = 0
			pieceYX = fromSq
		}
	}
}

func save(a *arena.Arena, pieceYX, fromSq, toSq, dir int) {
	a.Mem[arena.CursorPieceYX] = pieceYX
	a.Mem[arena.CursorFromSq] = fromSq
	a.Mem[arena.CursorToSq] = toSq
	a.Mem[arena.CursorDir] = dir
}

// pawnCandidate computes the candidate move for a pawn's phase `dir`
// (1=single push, 2=double push, 3=diagonal-left capture, 4=diagonal-
// right capture). consumed reports whether this phase produced a move
// at all (double push is skipped entirely off the home rank); advance
// reports whether the phase is exhausted after this call (pawn phases
// never continue as a ray, so advance is always true when consumed).
func pawnCandidate(a *arena.Arena, side arena.Color, fromSq, dir int) (m Move, consumed bool, advance bool) {
	forward := 1
	homeRank, promoRank := 2, 8
	if side == arena.Black {
		forward = -1
		homeRank, promoRank = 7, 1
	}

	switch dir {
	case 1: // single push
		to := fromSq + forward*10
		if arena.IsOffBoard(to) || !a.Read(to).IsEmpty() {
			return Move{}, false, true
		}
		return Move{From: fromSq, To: to, Promo: to/10 == promoRank}, true, true

	case 2: // double push
		if fromSq/10 != homeRank {
			return Move{}, false, true
		}
		mid := fromSq + forward*10
		to := fromSq + forward*20
		if arena.IsOffBoard(mid) || !a.Read(mid).IsEmpty() {
			return Move{}, false, true
		}
		if arena.IsOffBoard(to) || !a.Read(to).IsEmpty() {
			return Move{}, false, true
		}
		return Move{From: fromSq, To: to}, true, true

	case 3, 4: // diagonal captures, left then right
		fileDelta := -1
		if dir == 4 {
			fileDelta = 1
		}
		to := fromSq + forward*10 + fileDelta
		if arena.IsOffBoard(to) {
			return Move{}, false, true
		}
		occ := a.Read(to)
		if occ.IsEmpty() || occ.Color == side {
			return Move{}, false, true
		}
		return Move{From: fromSq, To: to, Promo: to/10 == promoRank}, true, true
	}
	return Move{}, false, true
}
