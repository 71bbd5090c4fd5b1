package arena

import (
	"strings"
	"testing"
)

func TestIsOffBoard(t *testing.T) {
	tests := []struct {
		yx   int
		want bool
	}{
		{11, false},
		{88, false},
		{10, true},
		{19, true},
		{91, true},
		{99, true},
		{55, false},
	}
	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := IsOffBoard(tc.yx); got != tc.want {
				t.Errorf("IsOffBoard(%d) = %v, want %v", tc.yx, got, tc.want)
			}
		})
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	a := New()
	a.Write(44, WhiteQueen)
	id := a.Read(44)
	if id.Kind != KindQueen || id.Color != White {
		t.Fatalf("got %+v, want white queen", id)
	}
	a.Empty(44)
	if !a.Read(44).IsEmpty() {
		t.Fatalf("expected empty after Empty()")
	}
}

func TestCodeOneDisambiguation(t *testing.T) {
	a := New()
	a.Write(15, CodeOther)
	a.SetKing(White, 15)
	a.Write(85, CodeOther)
	a.SetKing(Black, 85)
	a.Write(11, CodeOther)
	a.SetWhiteRook(Slot1, 11)
	a.Write(18, CodeOther)
	a.SetWhiteRook(Slot2, 18)
	a.Write(81, CodeOther) // untracked black rook

	tests := []struct {
		yx       int
		wantKind Kind
		wantClr  Color
		wantSlot RookSlot
	}{
		{15, KindKing, White, NoSlot},
		{85, KindKing, Black, NoSlot},
		{11, KindRook, White, Slot1},
		{18, KindRook, White, Slot2},
		{81, KindRook, Black, BlackRookSlot},
	}
	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			id := a.Read(tc.yx)
			if id.Kind != tc.wantKind || id.Color != tc.wantClr || id.Slot != tc.wantSlot {
				t.Errorf("Read(%d) = %+v, want kind=%v color=%v slot=%v", tc.yx, id, tc.wantKind, tc.wantClr, tc.wantSlot)
			}
		})
	}
}

func TestStartingPositionPieceCounts(t *testing.T) {
	a := New()
	SetupStartingPosition(a)

	counts := map[Kind]int{}
	for rank := 1; rank <= 8; rank++ {
		for file := 1; file <= 8; file++ {
			id := a.Read(rank*10 + file)
			if !id.IsEmpty() {
				counts[id.Kind]++
			}
		}
	}

	want := map[Kind]int{
		KindPawn: 16, KindKnight: 4, KindBishop: 4,
		KindRook: 4, KindQueen: 2, KindKing: 2,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("count[%v] = %d, want %d", k, counts[k], n)
		}
	}
	if a.SideToMove() != White {
		t.Errorf("expected white to move at game start")
	}
	if a.Mem[Score] != 50 {
		t.Errorf("expected initial score bias 50, got %d", a.Mem[Score])
	}
}

func TestLoadRecordsSentinelRequired(t *testing.T) {
	a := New()
	err := a.LoadRecords([]Record{{Address: 10, Value: 3, Discriminator: 0}})
	if err == nil {
		t.Fatalf("expected error for missing sentinel")
	}
}

func TestLoadRecordsAppliesCells(t *testing.T) {
	a := New()
	err := a.LoadRecords([]Record{
		{Address: 0, Value: 23, Discriminator: 0},
		{Address: SentinelAddress, Value: 0, Discriminator: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Mem[0] != 23 {
		t.Errorf("cell 0 = %d, want 23", a.Mem[0])
	}
}

func TestScanRecordsAppliesThroughLoadRecords(t *testing.T) {
	records, err := ScanRecords(strings.NewReader("0 23 0\n55 50 0\n99 0 0\n"))
	if err != nil {
		t.Fatalf("ScanRecords failed: %v", err)
	}

	a := New()
	if err := a.LoadRecords(records); err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if a.Mem[0] != 23 || a.Mem[Score] != 50 {
		t.Errorf("cell 0 = %d, cell %d = %d, want 23 and 50", a.Mem[0], Score, a.Mem[Score])
	}
}

func TestScanRecordsRejectsMissingSentinel(t *testing.T) {
	if _, err := ScanRecords(strings.NewReader("0 23 0\n")); err == nil {
		t.Fatalf("expected error for a record stream missing the sentinel")
	}
}

func TestScanRecordsRejectsTruncatedRecord(t *testing.T) {
	if _, err := ScanRecords(strings.NewReader("0 23\n")); err == nil {
		t.Fatalf("expected error for a truncated record")
	}
}
