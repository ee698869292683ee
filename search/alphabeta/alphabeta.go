// Package alphabeta implements an exhaustive tic-tac-toe solver using
// minimax with alpha-beta pruning.
package alphabeta

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/tictactoe/board"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if node is a terminal node then
        return the value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth + 1, α, β, FALSE))
            α := max(α, value)
            if value ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth + 1, α, β, TRUE))
            β := min(β, value)
            if value ≤ α then
                break (* α cut-off *)
        return value
**/

const (
	// Infinity bounds every reachable value.
	Infinity = 1000
	// WinValue is the value of a win one ply deep. Deeper wins are worth
	// WinValue / depth, so faster wins are preferred.
	WinValue = 999
	// IllegalScore is what an occupied square scores at the root. It is
	// below any real value, so such a square is never chosen.
	IllegalScore = -Infinity
)

var ErrGameOver = errors.New("game is over; there are no moves to search")

// Searcher finds the best move for the side to move, assuming perfect play
// from both sides. It mutates the board it is given while searching, and
// always restores it before returning.
type Searcher struct {
	picker         Picker
	disablePruning bool
	nodes          int
}

// NewSearcher creates a searcher that breaks ties among equally good moves
// with the given picker. A nil picker picks uniformly at random.
func NewSearcher(p Picker) *Searcher {
	if p == nil {
		p = NewRandomPicker()
	}
	return &Searcher{picker: p}
}

func (s *Searcher) SetPicker(p Picker) {
	s.picker = p
}

// SetPruningDisabled makes the searcher visit every node. Values are the
// same either way.
func (s *Searcher) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

// withMove applies m, runs fn and undoes m, even if fn panics. ok is false
// when m could not be applied.
func withMove(b *board.Board, m int, fn func() int) (v int, ok bool) {
	if !b.ApplyMove(m) {
		return 0, false
	}
	defer b.UndoMove(m)
	return fn(), true
}

// Evaluate scores every square for the side to move.
func (s *Searcher) Evaluate(b *board.Board) (*SearchResult, error) {
	if b.Outcome().Terminal() {
		return nil, ErrGameOver
	}
	tstart := time.Now()
	s.nodes = 0
	res := &SearchResult{
		Mover:     b.ToMove(),
		BestScore: IllegalScore,
	}
	for m := 0; m < board.NumSquares; m++ {
		// A fresh window for every root move, so every root value is exact
		// and ties can be found.
		v, ok := withMove(b, m, func() int {
			return s.minimax(b, 1, -Infinity, Infinity)
		})
		if !ok {
			continue
		}
		res.Legal[m] = true
		res.Evals[m] = v
		res.BestScore = max(res.BestScore, res.Score(m))
	}
	res.BestMoves = lo.Filter(lo.Range(board.NumSquares), func(m int, _ int) bool {
		return res.Legal[m] && res.Score(m) == res.BestScore
	})
	res.Nodes = s.nodes
	res.Elapsed = time.Since(tstart)

	log.Debug().
		Str("mover", res.Mover.String()).
		Ints("best-moves", res.BestMoves).
		Int("best-score", res.BestScore).
		Int("nodes", res.Nodes).
		Bool("pruning", !s.disablePruning).
		Dur("elapsed", res.Elapsed).
		Msg("search-complete")
	return res, nil
}

// BestMove returns one of the best moves for the side to move. If several
// moves are equally good, the picker chooses among them.
func (s *Searcher) BestMove(b *board.Board) (int, error) {
	res, err := s.Evaluate(b)
	if err != nil {
		return -1, err
	}
	return s.Pick(res), nil
}

// Pick chooses one of the best moves of an earlier Evaluate.
func (s *Searcher) Pick(res *SearchResult) int {
	return s.picker.Pick(res.BestMoves)
}

// minimax returns the value of the position to X. depth is the number of
// plies played since the root.
func (s *Searcher) minimax(b *board.Board, depth int, α, β int) int {
	s.nodes++
	switch b.Outcome() {
	case board.XWin:
		return WinValue / depth
	case board.OWin:
		return -WinValue / depth
	case board.Draw:
		return 0
	}

	if b.ToMove() == board.X {
		maxEval := -Infinity
		for m := 0; m < board.NumSquares; m++ {
			v, ok := withMove(b, m, func() int {
				return s.minimax(b, depth+1, α, β)
			})
			if !ok {
				continue
			}
			maxEval = max(maxEval, v)
			α = max(α, maxEval)
			if !s.disablePruning && β <= maxEval {
				break // β cut-off
			}
		}
		return maxEval
	}

	minEval := Infinity
	for m := 0; m < board.NumSquares; m++ {
		v, ok := withMove(b, m, func() int {
			return s.minimax(b, depth+1, α, β)
		})
		if !ok {
			continue
		}
		minEval = min(minEval, v)
		β = min(β, minEval)
		if !s.disablePruning && minEval <= α {
			break // α cut-off
		}
	}
	return minEval
}
