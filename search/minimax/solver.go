// Package minimax is a plain minimax solver with no pruning. Each child is
// searched on its own copy of the board. It is slow but simple, and is kept
// as a reference to check the alpha-beta searcher against.
package minimax

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/zobrist"
)

const winValue = 999

var ErrGameOver = errors.New("game is over")

type Solver struct {
	zobrist *zobrist.Zobrist
	ttable  *TranspositionTable
	nodes   int
}

func NewSolver() *Solver {
	return &Solver{}
}

// SetTranspositionTable turns on caching of subtree values. A nil table
// turns it off.
func (s *Solver) SetTranspositionTable(tt *TranspositionTable) {
	s.ttable = tt
	if tt != nil && s.zobrist == nil {
		s.zobrist = &zobrist.Zobrist{}
		s.zobrist.Initialize()
	}
}

func (s *Solver) Nodes() int {
	return s.nodes
}

// MoveValues returns, for each square, the value to X of playing it, and
// whether it can be played at all.
func (s *Solver) MoveValues(b *board.Board) ([board.NumSquares]int, [board.NumSquares]bool, error) {
	var values [board.NumSquares]int
	var legal [board.NumSquares]bool
	if b.Outcome().Terminal() {
		return values, legal, ErrGameOver
	}
	s.nodes = 0
	var key uint64
	if s.ttable != nil {
		key = s.zobrist.Hash(b)
	}
	mover := b.ToMove()
	for m := 0; m < board.NumSquares; m++ {
		child := b.Copy()
		if !child.ApplyMove(m) {
			continue
		}
		legal[m] = true
		var ckey uint64
		if s.ttable != nil {
			ckey = s.zobrist.AddMove(key, m, mover)
		}
		values[m] = s.value(child, ckey, 1)
	}
	log.Debug().Int("nodes", s.nodes).Msg("reference-solve-complete")
	if s.ttable != nil {
		log.Debug().Str("tt-stats", s.ttable.Stats()).Msg("transposition-table")
	}
	return values, legal, nil
}

// Value returns the value to X of b, as if it were reached depth plies
// below some root.
func (s *Solver) Value(b *board.Board, depth int) int {
	var key uint64
	if s.ttable != nil {
		key = s.zobrist.Hash(b)
	}
	return s.value(b, key, depth)
}

func (s *Solver) value(b *board.Board, key uint64, depth int) int {
	s.nodes++
	switch b.Outcome() {
	case board.XWin:
		return winValue / depth
	case board.OWin:
		return -winValue / depth
	case board.Draw:
		return 0
	}
	if s.ttable != nil {
		if v, ok := s.ttable.lookup(key, depth); ok {
			return v
		}
	}

	mover := b.ToMove()
	best := 0
	first := true
	for m := 0; m < board.NumSquares; m++ {
		child := b.Copy()
		if !child.ApplyMove(m) {
			continue
		}
		var ckey uint64
		if s.ttable != nil {
			ckey = s.zobrist.AddMove(key, m, mover)
		}
		v := s.value(child, ckey, depth+1)
		switch {
		case first:
			best = v
			first = false
		case mover == board.X:
			best = max(best, v)
		default:
			best = min(best, v)
		}
	}

	if s.ttable != nil {
		s.ttable.store(key, depth, best)
	}
	return best
}
