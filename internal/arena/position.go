package arena

import (
	"bufio"
	"fmt"
	"io"
)

// SentinelAddress terminates a record stream.
const SentinelAddress = 99

// Record is one (address, value, discriminator) triple of the external
// position-input format.
type Record struct {
	Address       int
	Value         int
	Discriminator int
}

// LoadRecords populates the arena from a stream of records, one cell per
// non-zero word, terminated by a record whose address is SentinelAddress.
// Any cell never mentioned stays zero. The discriminator digit is
// reserved wire framing (0..9); this loader validates its range but does
// not otherwise interpret it, since every cell address in this arena is
// already unambiguous.
func (a *Arena) LoadRecords(records []Record) error {
	for _, r := range records {
		if r.Address == SentinelAddress {
			return nil
		}
		if r.Address < 0 || r.Address >= Size {
			return fmt.Errorf("record address %d out of range [0,%d)", r.Address, Size)
		}
		if r.Value < 0 || r.Value > 99 {
			return fmt.Errorf("record value %d out of range [0,99]", r.Value)
		}
		if r.Discriminator < 0 || r.Discriminator > 9 {
			return fmt.Errorf("record discriminator %d out of range [0,9]", r.Discriminator)
		}
		a.Mem[r.Address] = r.Value
	}
	return fmt.Errorf("record stream ended without sentinel address %d", SentinelAddress)
}

// ScanRecords reads whitespace-separated "addr value disc" triples from r
// until the sentinel address is seen or input is exhausted.
func ScanRecords(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var records []Record
	for {
		addr, ok, err := nextInt(sc)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("record stream ended without sentinel address %d", SentinelAddress)
		}
		if addr == SentinelAddress {
			return append(records, Record{Address: SentinelAddress}), nil
		}
		val, ok, err := nextInt(sc)
		if err != nil || !ok {
			return nil, fmt.Errorf("truncated record at address %d", addr)
		}
		disc, ok, err := nextInt(sc)
		if err != nil || !ok {
			return nil, fmt.Errorf("truncated record at address %d", addr)
		}
		records = append(records, Record{Address: addr, Value: val, Discriminator: disc})
	}
}

func nextInt(sc *bufio.Scanner) (int, bool, error) {
	if !sc.Scan() {
		return 0, false, sc.Err()
	}
	var n int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
		return 0, false, fmt.Errorf("invalid integer token %q: %v", sc.Text(), err)
	}
	return n, true, nil
}

// SetupStartingPosition fills the arena with the standard initial array
// and resets side-to-move and score to their start-of-game values.
func SetupStartingPosition(a *Arena) {
	*a = Arena{}

	backRank := []int{0, WhiteKnight, WhiteBishop, WhiteQueen, 0, WhiteBishop, WhiteKnight, 0}
	for file := 1; file <= 8; file++ {
		yx := 10 + file
		code := backRank[file-1]
		if code == 0 {
			code = CodeOther // king or rook, resolved below
		}
		a.Write(yx, code)
		a.Write(20+file, WhitePawn)
		a.Write(70+file, BlackPawn)
		blackBack := backRank[file-1]
		if blackBack == 0 {
			a.Write(80+file, CodeOther)
		} else {
			a.Write(80+file, blackBack+4) // white code -> black code, +4 offset
		}
	}

	a.SetKing(White, 15)
	a.SetKing(Black, 85)
	a.SetWhiteRook(Slot1, 11)
	a.SetWhiteRook(Slot2, 18)

	a.SetSideToMove(White)
	a.Mem[Score] = 50
}
