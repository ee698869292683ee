package alphabeta

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/domino14/tictactoe/board"
)

// SearchResult holds the evaluation of every square for one position.
type SearchResult struct {
	// Mover is the side to move at the root.
	Mover board.Mark
	// Evals holds the value to X of playing each square. It is only set
	// where Legal is true.
	Evals [board.NumSquares]int
	Legal [board.NumSquares]bool
	// BestScore is the best value for the mover, and BestMoves are all the
	// squares that reach it, in increasing order.
	BestScore int
	BestMoves []int

	Nodes   int
	Elapsed time.Duration
}

// Score returns the value of square m to the side to move, or IllegalScore
// if m cannot be played.
func (r *SearchResult) Score(m int) int {
	if m < 0 || m >= board.NumSquares || !r.Legal[m] {
		return IllegalScore
	}
	if r.Mover == board.O {
		return -r.Evals[m]
	}
	return r.Evals[m]
}

// IsBest returns true if m is one of the tied best moves.
func (r *SearchResult) IsBest(m int) bool {
	return lo.Contains(r.BestMoves, m)
}

// Describe turns a value to X into words.
func Describe(v int) string {
	switch {
	case v == 0:
		return "draw"
	case v > 0:
		return fmt.Sprintf("X wins in %d", WinValue/v)
	default:
		return fmt.Sprintf("O wins in %d", WinValue/(-v))
	}
}

func resultTableHeader() string {
	return fmt.Sprintf("%-6s%8s%10s  %s", "Move", "Eval(X)", "Score", "Verdict")
}

// ToDisplayText renders a table of all legal moves, best first.
func (r *SearchResult) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v to move; best score %d, %d nodes in %v\n",
		r.Mover, r.BestScore, r.Nodes, r.Elapsed.Round(time.Microsecond)))
	sb.WriteString(resultTableHeader() + "\n")
	moves := lo.Filter(lo.Range(board.NumSquares), func(m int, _ int) bool {
		return r.Legal[m]
	})
	// stable order: by score, then by square
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && r.Score(moves[j]) > r.Score(moves[j-1]); j-- {
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
	for _, m := range moves {
		marker := ""
		if r.IsBest(m) {
			marker = " *"
		}
		sb.WriteString(fmt.Sprintf("%-6d%8d%10d  %s%s\n",
			m+1, r.Evals[m], r.Score(m), Describe(r.Evals[m]), marker))
	}
	return sb.String()
}
