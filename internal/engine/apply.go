package engine

import "github.com/hailam/chess75/internal/arena"

// Frame captures everything ApplyMove needs UnapplyMove to reverse: a
// strict inverse pair over the arena's board cells, position trackers,
// running score, and side-to-move digit. The search driver owns an
// array of these indexed by ply so applying a move never allocates.
type Frame struct {
	FromSq, ToSq int
	Promo        bool
	FromPiece    arena.Identity
	Captured     arena.Identity
	ScoreBefore  int
	SideBefore   arena.Color
}

// ApplyMove mutates the arena to perform the move from->to (with promo
// indicating a pawn reaching the last rank), and fills f with enough
// state for UnapplyMove to exactly reverse it.
func ApplyMove(a *arena.Arena, f *Frame, from, to int, promo bool) {
	f.FromSq, f.ToSq, f.Promo = from, to, promo
	f.Captured = a.Read(to)
	f.FromPiece = a.Read(from)
	f.ScoreBefore = a.Mem[arena.Score]
	f.SideBefore = a.SideToMove()

	a.Empty(from)

	moved := f.FromPiece
	if promo {
		moved = arena.Identity{Kind: arena.KindQueen, Color: f.FromPiece.Color}
	}
	a.Write(to, arena.CodeOf(moved))

	if moved.Kind == arena.KindKing {
		a.SetKing(moved.Color, to)
	} else if moved.Kind == arena.KindRook && moved.Color == arena.White {
		a.SetWhiteRook(moved.Slot, to)
	}

	if f.Captured.Kind == arena.KindRook && f.Captured.Color == arena.White {
		a.SetWhiteRook(f.Captured.Slot, 0)
	} else if f.Captured.Kind == arena.KindKing {
		a.SetKing(f.Captured.Color, 0)
	}

	delta := pieceValue(f.Captured) + centerDelta(from, to, f.SideBefore)
	applyScoreDelta(a, f.SideBefore, delta)

	a.SetSideToMove(f.SideBefore.Other())
}

// UnapplyMove strictly reverses the move described by f.
func UnapplyMove(a *arena.Arena, f *Frame) {
	restored := f.FromPiece // promotion undo always restores the original pawn

	a.Write(f.FromSq, arena.CodeOf(restored))
	if restored.Kind == arena.KindKing {
		a.SetKing(restored.Color, f.FromSq)
	} else if restored.Kind == arena.KindRook && restored.Color == arena.White {
		a.SetWhiteRook(restored.Slot, f.FromSq)
	}

	a.Write(f.ToSq, arena.CodeOf(f.Captured))
	if f.Captured.Kind == arena.KindRook && f.Captured.Color == arena.White {
		a.SetWhiteRook(f.Captured.Slot, f.ToSq)
	} else if f.Captured.Kind == arena.KindKing {
		a.SetKing(f.Captured.Color, f.ToSq)
	}

	a.Mem[arena.Score] = f.ScoreBefore
	a.SetSideToMove(f.SideBefore)
}

// applyScoreDelta adds delta to the score from side's perspective
// (white's gain is added, black's gain is subtracted) and checks the
// result against the 0..99 range. An out-of-range result is an invariant violation: per
// spec.md's own stated default, this implementation treats it as fatal
// rather than saturating.
func applyScoreDelta(a *arena.Arena, side arena.Color, delta int) {
	if side == arena.Black {
		delta = -delta
	}
	score := a.Mem[arena.Score] + delta
	if score < ScoreMin || score > ScoreMax {
		panic("engine: score delta overflowed the 0..99 invariant")
	}
	a.Mem[arena.Score] = score
}
