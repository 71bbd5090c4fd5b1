// Package host implements the three-operation contract a driver uses to
// talk to the engine core (load_position, search, stop) over a simple
// line-oriented stdin/stdout protocol, in the shape of a UCI handler.
package host

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hailam/chess75/internal/arena"
	"github.com/hailam/chess75/internal/engine"
	"github.com/hailam/chess75/internal/telemetry"
)

// Protocol reads commands from stdin and writes results to stdout. A
// search runs on its own goroutine so the stdin-reading loop stays live
// and can observe a "stop" command while the search is in flight.
type Protocol struct {
	eng   *engine.Engine
	store *telemetry.Store // nil disables telemetry
	out   io.Writer
	seq   int

	searching  atomic.Bool
	searchDone chan struct{}
}

// New returns a protocol handler bound to eng. store may be nil.
func New(eng *engine.Engine, store *telemetry.Store, out io.Writer) *Protocol {
	return &Protocol{eng: eng, store: store, out: out}
}

// Run reads commands from in until "quit" or EOF. The reader is shared
// across commands: "load" reads the record stream that follows line by
// line from the same buffered reader, stopping after the sentinel line,
// so any commands after it stay in that reader for this loop.
func (p *Protocol) Run(in io.Reader) {
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) > 0 {
			switch fields[0] {
			case "load":
				if p.searching.Load() {
					log.Printf("load: ignored while a search is in flight")
				} else if loadErr := p.handleLoad(r); loadErr != nil {
					log.Printf("load: %v", loadErr)
				}
			case "go":
				p.handleGo()
			case "stop":
				p.handleStop()
			case "quit":
				p.handleStop()
				return
			default:
				log.Printf("unknown command: %s", fields[0])
			}
		}
		if err != nil {
			return
		}
	}
}

// handleLoad consumes the "addr value disc" record stream that follows a
// load command, terminated by the sentinel address, and applies it.
func (p *Protocol) handleLoad(r io.Reader) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var stream strings.Builder
	for {
		line, readErr := br.ReadString('\n')
		stream.WriteString(line)
		if f := strings.Fields(line); len(f) > 0 && f[0] == fmt.Sprint(arena.SentinelAddress) {
			break
		}
		if readErr != nil {
			break
		}
	}
	records, err := arena.ScanRecords(strings.NewReader(stream.String()))
	if err != nil {
		return err
	}
	return p.eng.LoadPosition(records)
}

// handleGo starts a search on its own goroutine and returns immediately,
// so the command loop keeps reading stdin and can still deliver a "stop"
// while the search is running.
func (p *Protocol) handleGo() {
	if p.searching.Load() {
		log.Printf("go: ignored, a search is already in flight")
		return
	}

	p.searching.Store(true)
	p.searchDone = make(chan struct{})

	go func() {
		defer close(p.searchDone)
		defer p.searching.Store(false)

		cells := 0
		for _, v := range p.eng.Arena().Mem {
			if v != 0 {
				cells++
			}
		}

		start := time.Now()
		token := p.eng.Search()
		elapsed := time.Since(start)

		fmt.Fprintln(p.out, token)

		if p.store != nil {
			p.seq++
			rec := telemetry.SessionRecord{
				ID:        fmt.Sprintf("%d-%d", start.UnixNano(), p.seq),
				Records:   cells,
				MoveToken: token,
				Nodes:     p.eng.Nodes(),
				Depth:     engine.MaxPly,
				Elapsed:   elapsed,
				When:      start,
			}
			if err := p.store.Record(rec); err != nil {
				log.Printf("telemetry: %v", err)
			}
		}
	}()
}

// handleStop signals an in-flight search to unwind and blocks until it
// has actually finished. It is a no-op when no search is running.
func (p *Protocol) handleStop() {
	if !p.searching.Load() {
		return
	}
	p.eng.Stop()
	<-p.searchDone
}
