package engine

import (
	"sync/atomic"

	"github.com/hailam/chess75/internal/arena"
	"github.com/hailam/chess75/internal/movegen"
)

// MaxPly is the fixed nominal search depth: four plies, not iterative.
const MaxPly = 4

// NoMove is the resignation sentinel token.
const NoMove = "0000"

// Searcher runs the fixed-depth alpha-beta Search Driver over an
// explicit, pre-allocated stack of frames so a search never allocates.
type Searcher struct {
	frames      [MaxPly]Frame
	cursorSaves [MaxPly][4]int

	nodes    uint64
	stopFlag atomic.Bool

	bestFrom, bestTo int
}

// NewSearcher returns a ready-to-use Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Stop asynchronously requests early termination; the search unwinds to
// the root and returns the best move found so far. Stop is cooperative
// and checked at move-iteration granularity, never preemptively.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Nodes reports how many positions were visited during the last search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs one fixed-depth search from the arena's current position
// and returns the chosen from/to squares, or resign=true if no move
// improved on the worst possible outcome for the side to move.
func (s *Searcher) Search(a *arena.Arena) (from, to int, resign bool) {
	s.nodes = 0
	s.stopFlag.Store(false)
	s.bestFrom, s.bestTo = 0, 0

	s.negamax(a, MaxPly, 0, ScoreMin, ScoreMax)

	if s.bestFrom == 0 && s.bestTo == 0 {
		return 0, 0, true
	}
	return s.bestFrom, s.bestTo, false
}

func snapshotCursor(a *arena.Arena) [4]int {
	return [4]int{
		a.Mem[arena.CursorPieceYX], a.Mem[arena.CursorFromSq],
		a.Mem[arena.CursorToSq], a.Mem[arena.CursorDir],
	}
}

func restoreCursor(a *arena.Arena, c [4]int) {
	a.Mem[arena.CursorPieceYX] = c[0]
	a.Mem[arena.CursorFromSq] = c[1]
	a.Mem[arena.CursorToSq] = c[2]
	a.Mem[arena.CursorDir] = c[3]
}

// negamax searches to depthLeft plies from ply, maintaining alpha/beta
// in the 0..99 biased absolute representation: white maximizes, black
// minimizes directly, no negation required. Capturing a king is the
// engine's sole check-legality enforcement: that branch terminates
// immediately with the dominating king value already folded into score
// by ApplyMove, never recursing further.
func (s *Searcher) negamax(a *arena.Arena, depthLeft, ply int, alpha, beta int) int {
	if depthLeft == 0 {
		return a.Mem[arena.Score]
	}

	side := a.SideToMove()
	movegen.Reset(a)

	bestScore := ScoreMin
	if side == arena.Black {
		bestScore = ScoreMax
	}
	any := false

	for {
		// Cooperative stop: checked once per move, never mid-instruction.
		if s.stopFlag.Load() {
			break
		}
		m, ok := movegen.Next(a, side)
		if !ok {
			break
		}

		f := &s.frames[ply]
		ApplyMove(a, f, m.From, m.To, m.Promo)
		any = true
		s.nodes++

		var score int
		if f.Captured.Kind == arena.KindKing {
			score = a.Mem[arena.Score]
		} else {
			s.cursorSaves[ply] = snapshotCursor(a)
			score = s.negamax(a, depthLeft-1, ply+1, alpha, beta)
			restoreCursor(a, s.cursorSaves[ply])
		}

		UnapplyMove(a, f)

		improves := (side == arena.White && score > bestScore) ||
			(side == arena.Black && score < bestScore)
		if improves {
			bestScore = score
			if ply == 0 {
				s.bestFrom, s.bestTo = m.From, m.To
			}
			if side == arena.White {
				if score > alpha {
					alpha = score
				}
			} else {
				if score < beta {
					beta = score
				}
			}
		}

		if side == arena.White && bestScore >= beta {
			break
		}
		if side == arena.Black && bestScore <= alpha {
			break
		}
	}

	if !any {
		return a.Mem[arena.Score]
	}
	return bestScore
}
