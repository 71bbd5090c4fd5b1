// Package arena implements the Board Store: the 75-word decimal memory
// that holds the position (board, piece trackers, side to move, score) and
// the move generator's cursor. The search stack is not kept here: its
// frames live in the engine's Searcher, and cells 56..74 are unused.
package arena

import "fmt"

// Size is the total word count of the engine's memory.
const Size = 75

// Cell offsets, fixed by the memory layout contract.
const (
	BoardLo        = 0  // board[0..31]: packed 8x8 board, two squares per word
	BoardHi        = 31
	WhiteKingSq    = 32
	BlackKingSq    = 33
	WhiteRook1Sq   = 34
	SideToMove     = 35 // high digit: 0=white,10=black; low digit: from_piece scratch
	CapturedPiece  = 36
	FromSq         = 37
	ToSq           = 38
	Promo          = 39
	CursorPieceYX  = 40
	CursorFromSq   = 41
	CursorToSq     = 42
	CursorDir      = 43
	WhiteRook2Sq   = 45
	Score          = 55
	StackBase      = 56
	StackEnd       = 74
)

// Piece codes, one decimal digit per square.
const (
	Empty      = 0
	CodeOther  = 1 // king or black rook; resolved via position trackers
	WhitePawn  = 2
	WhiteKnight = 3
	WhiteBishop = 4
	WhiteQueen  = 5
	BlackPawn   = 6
	BlackKnight = 7
	BlackBishop = 8
	BlackQueen  = 9
)

// Kind identifies a piece's role, independent of color.
type Kind int

const (
	KindNone Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// RookSlot names which tracked white-rook cell (if any) a square occupies.
type RookSlot int

const (
	NoSlot RookSlot = iota
	Slot1
	Slot2
	BlackRookSlot // untracked: any code-1 square that is not a king
)

// Color is the side owning a piece.
type Color int

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Identity is the fully-resolved, sum-typed description of a square's
// occupant, built once by Read and pattern-matched everywhere else.
type Identity struct {
	Kind  Kind
	Color Color
	Slot  RookSlot // only meaningful when Kind == KindRook
}

// IsEmpty reports whether the identity denotes an empty square.
func (id Identity) IsEmpty() bool { return id.Kind == KindNone }

// Arena is the 75-word decimal memory arena. It is a plain value;
// callers own it by mutable reference, never by global state.
type Arena struct {
	Mem [Size]int
}

// New returns a zeroed arena (every cell 0, i.e. the empty board).
func New() *Arena {
	return &Arena{}
}

// Copy returns a deep copy of the arena.
func (a *Arena) Copy() *Arena {
	cp := *a
	return &cp
}

// IsOffBoard reports whether yx is off the playable 8x8 board: either
// digit being 0 or 9 is the sole edge-detection rule, checked before
// any memory read is attempted.
func IsOffBoard(yx int) bool {
	if yx < 0 || yx > 99 {
		return true
	}
	y, x := yx/10, yx%10
	return y == 0 || y == 9 || x == 0 || x == 9
}

// cellIndex returns the packed-board word offset and whether yx occupies
// the high or low digit of it. Squares are packed in yx order two per word.
func cellIndex(yx int) (word int, high bool) {
	y, x := yx/10, yx%10
	sq := (y-1)*8 + (x - 1) // 0..63 ordinal for on-board yx
	return sq / 2, sq%2 == 1
}

func packedDigit(word int, high bool) int {
	if high {
		return word / 10
	}
	return word % 10
}

func withDigit(word int, high bool, digit int) int {
	if high {
		return (word % 10) + digit*10
	}
	return (word/10)*10 + digit
}

// rawCode returns the packed decimal digit stored at yx, without
// disambiguating code-1 squares. yx must be on-board.
func (a *Arena) rawCode(yx int) int {
	w, hi := cellIndex(yx)
	return packedDigit(a.Mem[BoardLo+w], hi)
}

func (a *Arena) setRawCode(yx int, code int) {
	w, hi := cellIndex(yx)
	a.Mem[BoardLo+w] = withDigit(a.Mem[BoardLo+w], hi, code)
}

// Read resolves the piece occupying yx into a full Identity. Off-board
// squares return an empty identity (the off-board sentinel); callers that
// need edge detection should call IsOffBoard directly instead.
func (a *Arena) Read(yx int) Identity {
	if IsOffBoard(yx) {
		return Identity{}
	}
	code := a.rawCode(yx)
	switch code {
	case Empty:
		return Identity{}
	case WhitePawn:
		return Identity{Kind: KindPawn, Color: White}
	case WhiteKnight:
		return Identity{Kind: KindKnight, Color: White}
	case WhiteBishop:
		return Identity{Kind: KindBishop, Color: White}
	case WhiteQueen:
		return Identity{Kind: KindQueen, Color: White}
	case BlackPawn:
		return Identity{Kind: KindPawn, Color: Black}
	case BlackKnight:
		return Identity{Kind: KindKnight, Color: Black}
	case BlackBishop:
		return Identity{Kind: KindBishop, Color: Black}
	case BlackQueen:
		return Identity{Kind: KindQueen, Color: Black}
	case CodeOther:
		return a.resolveCodeOne(yx)
	default:
		return Identity{}
	}
}

// resolveCodeOne disambiguates a code-1 square by cross-referencing the
// position-tracking cells, in the fixed order white king, black king,
// white rook 1, white rook 2; anything left over is a black rook.
func (a *Arena) resolveCodeOne(yx int) Identity {
	if yx == a.Mem[WhiteKingSq] {
		return Identity{Kind: KindKing, Color: White}
	}
	if yx == a.Mem[BlackKingSq] {
		return Identity{Kind: KindKing, Color: Black}
	}
	if yx == a.Mem[WhiteRook1Sq] {
		return Identity{Kind: KindRook, Color: White, Slot: Slot1}
	}
	if yx == a.Mem[WhiteRook2Sq] {
		return Identity{Kind: KindRook, Color: White, Slot: Slot2}
	}
	return Identity{Kind: KindRook, Color: Black, Slot: BlackRookSlot}
}

// Write stores code at yx. For code == CodeOther the caller is
// responsible for separately updating the relevant position-tracking
// cell via SetKing/SetWhiteRook.
func (a *Arena) Write(yx, code int) {
	if IsOffBoard(yx) {
		return
	}
	a.setRawCode(yx, code)
}

// Empty writes the empty code to yx.
func (a *Arena) Empty(yx int) {
	a.Write(yx, Empty)
}

// SetKing updates the position-tracking cell for colour's king.
func (a *Arena) SetKing(c Color, yx int) {
	if c == White {
		a.Mem[WhiteKingSq] = yx
	} else {
		a.Mem[BlackKingSq] = yx
	}
}

// KingSquare returns the tracked king square for colour.
func (a *Arena) KingSquare(c Color) int {
	if c == White {
		return a.Mem[WhiteKingSq]
	}
	return a.Mem[BlackKingSq]
}

// SetWhiteRook updates the position-tracking cell for the given white
// rook slot (Slot1 or Slot2). Passing 0 marks that rook captured or
// promoted away.
func (a *Arena) SetWhiteRook(slot RookSlot, yx int) {
	switch slot {
	case Slot1:
		a.Mem[WhiteRook1Sq] = yx
	case Slot2:
		a.Mem[WhiteRook2Sq] = yx
	}
}

// WhiteRookSquare returns the tracked square for the given white rook slot.
func (a *Arena) WhiteRookSquare(slot RookSlot) int {
	switch slot {
	case Slot1:
		return a.Mem[WhiteRook1Sq]
	case Slot2:
		return a.Mem[WhiteRook2Sq]
	}
	return 0
}

// SideToMove returns the side whose turn it is, from the high digit of
// cell 35.
func (a *Arena) SideToMove() Color {
	if a.Mem[SideToMove]/10 == 0 {
		return White
	}
	return Black
}

// SetSideToMove overwrites the high digit of cell 35, preserving the
// from_piece scratch digit in the low position.
func (a *Arena) SetSideToMove(c Color) {
	digit := 0
	if c == Black {
		digit = 10
	}
	a.Mem[SideToMove] = digit + a.Mem[SideToMove]%10
}

// CodeOf returns the raw decimal digit that encodes identity id. King and
// rook identities both encode to CodeOther; the caller is responsible for
// also updating the corresponding position-tracking cell.
func CodeOf(id Identity) int {
	switch id.Kind {
	case KindNone:
		return Empty
	case KindPawn:
		if id.Color == White {
			return WhitePawn
		}
		return BlackPawn
	case KindKnight:
		if id.Color == White {
			return WhiteKnight
		}
		return BlackKnight
	case KindBishop:
		if id.Color == White {
			return WhiteBishop
		}
		return BlackBishop
	case KindQueen:
		if id.Color == White {
			return WhiteQueen
		}
		return BlackQueen
	case KindKing, KindRook:
		return CodeOther
	}
	return Empty
}

// String renders the arena for debugging.
func (a *Arena) String() string {
	return fmt.Sprintf("score=%d stm=%v wk=%d bk=%d wr1=%d wr2=%d",
		a.Mem[Score], a.SideToMove(), a.Mem[WhiteKingSq], a.Mem[BlackKingSq],
		a.Mem[WhiteRook1Sq], a.Mem[WhiteRook2Sq])
}
