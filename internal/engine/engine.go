// Package engine ties the Board Store, Move Generator, Move
// Applier/Unapplier, Evaluator and Search Driver together into the
// three-operation contract a host driver consumes: load a position,
// search it, and cooperatively stop an in-flight search.
package engine

import (
	"fmt"

	"github.com/hailam/chess75/internal/arena"
)

// Engine owns one arena and one searcher. It is not safe for concurrent
// use: the engine core is strictly single-threaded and synchronous, with
// exactly one mutator of the arena at a time.
type Engine struct {
	arena    *arena.Arena
	searcher *Searcher
}

// New returns an engine with an empty arena.
func New() *Engine {
	return &Engine{
		arena:    arena.New(),
		searcher: NewSearcher(),
	}
}

// LoadPosition bulk-initializes the arena from a record stream.
func (e *Engine) LoadPosition(records []arena.Record) error {
	e.arena = arena.New()
	return e.arena.LoadRecords(records)
}

// LoadStartingPosition resets the arena to the standard initial array.
func (e *Engine) LoadStartingPosition() {
	e.arena = arena.New()
	arena.SetupStartingPosition(e.arena)
}

// Search runs one fixed-depth search and returns the chosen move as a
// four-digit YXYX token, or "0000" if no move improves on the worst
// outcome for the side to move.
func (e *Engine) Search() string {
	from, to, resign := e.searcher.Search(e.arena)
	if resign {
		return NoMove
	}
	return fmt.Sprintf("%02d%02d", from, to)
}

// Stop signals the in-flight search to unwind to the root and return the
// best move found so far.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// Nodes reports how many positions the last search visited.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}

// Arena exposes the underlying arena for callers that need read access,
// e.g. telemetry recording the position a search ran against.
func (e *Engine) Arena() *arena.Arena {
	return e.arena
}
