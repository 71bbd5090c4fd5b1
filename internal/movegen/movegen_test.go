package movegen

import (
	"testing"

	"github.com/hailam/chess75/internal/arena"
)

func allMoves(a *arena.Arena, side arena.Color) []Move {
	Reset(a)
	var moves []Move
	for {
		m, ok := Next(a, side)
		if !ok {
			return moves
		}
		moves = append(moves, m)
	}
}

func TestOpeningPositionMoveOrder(t *testing.T) {
	a := arena.New()
	arena.SetupStartingPosition(a)

	moves := allMoves(a, arena.White)
	if len(moves) != 20 {
		t.Fatalf("got %d moves, want 20", len(moves))
	}

	wantOrigins := []int{21, 22, 23, 24, 25, 26, 27, 28, 12, 17}
	var gotOrigins []int
	for _, m := range moves {
		if len(gotOrigins) == 0 || gotOrigins[len(gotOrigins)-1] != m.From {
			gotOrigins = append(gotOrigins, m.From)
		}
	}
	if len(gotOrigins) != len(wantOrigins) {
		t.Fatalf("got %d distinct origins %v, want %v", len(gotOrigins), gotOrigins, wantOrigins)
	}
	for i := range wantOrigins {
		if gotOrigins[i] != wantOrigins[i] {
			t.Errorf("origin[%d] = %d, want %d (full origin sequence %v)", i, gotOrigins[i], wantOrigins[i], gotOrigins)
		}
	}
}

func TestPawnDoublePushOrder(t *testing.T) {
	a := arena.New()
	a.Write(22, arena.WhitePawn)
	a.SetSideToMove(arena.White)

	moves := allMoves(a, arena.White)
	want := []Move{{From: 22, To: 32}, {From: 22, To: 42}}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves %v, want %v", len(moves), moves, want)
	}
	for i, w := range want {
		if moves[i].From != w.From || moves[i].To != w.To {
			t.Errorf("move[%d] = %+v, want %+v", i, moves[i], w)
		}
	}
}

func TestKnightOnD4MoveOrder(t *testing.T) {
	a := arena.New()
	a.Write(44, arena.WhiteKnight)
	a.SetSideToMove(arena.White)

	moves := allMoves(a, arena.White)
	wantTo := []int{52, 56, 63, 65, 23, 25, 32, 36}
	if len(moves) != len(wantTo) {
		t.Fatalf("got %d moves, want %d: %v", len(moves), len(wantTo), moves)
	}
	for i, want := range wantTo {
		if moves[i].From != 44 || moves[i].To != want {
			t.Errorf("move[%d] = %+v, want from=44 to=%d", i, moves[i], want)
		}
	}
}
