package engine

import "github.com/hailam/chess75/internal/arena"

// Evaluation constants. Values are small by construction: the running
// score is a single 0..99 decimal word biased by +50, and two captures
// per side must fit inside that range.
const (
	PawnValue   = 3
	KnightValue = 9
	BishopValue = 9
	RookValue   = 15
	QueenValue  = 24
	KingValue   = 25

	ScoreBias = 50
	ScoreMin  = 0
	ScoreMax  = 99

	centerBonus = 1
)

// pieceValue returns the material value of an identity, from white's
// perspective (always non-negative; sign is applied by the caller).
func pieceValue(id arena.Identity) int {
	switch id.Kind {
	case arena.KindPawn:
		return PawnValue
	case arena.KindKnight:
		return KnightValue
	case arena.KindBishop:
		return BishopValue
	case arena.KindRook:
		return RookValue
	case arena.KindQueen:
		return QueenValue
	case arena.KindKing:
		return KingValue
	}
	return 0
}

// centerDelta returns the center bonus earned by placing a piece on to,
// inside the central 4x4 region (files c-f, ranks 3-6). from and color
// are accepted to match the evaluator's documented signature but do not
// affect the geometric test.
func centerDelta(from, to int, color arena.Color) int {
	y, x := to/10, to%10
	if y >= 3 && y <= 6 && x >= 3 && x <= 6 {
		return centerBonus
	}
	return 0
}
