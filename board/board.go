// Package board holds the 3x3 tic-tac-toe grid and the rules for deciding
// whether a game is over.
package board

import (
	"errors"

	"github.com/samber/lo"
)

const (
	// Dim is the number of rows (and columns) on the board.
	Dim = 3
	// NumSquares is the number of cells. Moves are indexes in
	// [0, NumSquares), row-major from the top-left cell.
	NumSquares = Dim * Dim
)

var ErrIllegalPosition = errors.New("position cannot arise from alternating play starting with X")

// Lines are the 8 winning lines: rows, columns, then the two diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is the canonical game state. It is mutated in place by ApplyMove and
// UndoMove so that search does not need to allocate per node.
type Board struct {
	squares [NumSquares]Mark
	xToMove bool
}

// NewBoard returns an empty board with X to move.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// FromCells builds a board from a cell layout. The side to move follows from
// the counts of each mark.
func FromCells(cells [NumSquares]Mark) (*Board, error) {
	b := &Board{squares: cells}
	for _, c := range cells {
		if c > O {
			return nil, ErrIllegalPosition
		}
	}
	switch b.Count(X) - b.Count(O) {
	case 0:
		b.xToMove = true
	case 1:
		b.xToMove = false
	default:
		return nil, ErrIllegalPosition
	}
	return b, nil
}

// Reset clears every square and gives the move to X.
func (b *Board) Reset() {
	for i := range b.squares {
		b.squares[i] = Empty
	}
	b.xToMove = true
}

// ToMove returns the mark of the player whose turn it is.
func (b *Board) ToMove() Mark {
	if b.xToMove {
		return X
	}
	return O
}

// ApplyMove puts the mark of the side to move on the given square and passes
// the turn. It returns false, without touching the board, if the square is
// out of range or already taken.
func (b *Board) ApplyMove(m int) bool {
	if m < 0 || m >= NumSquares || b.squares[m] != Empty {
		return false
	}
	b.squares[m] = b.ToMove()
	b.xToMove = !b.xToMove
	return true
}

// UndoMove takes back a move made with ApplyMove. Calls must unwind in the
// exact reverse order of the ApplyMove calls; this is not checked.
func (b *Board) UndoMove(m int) {
	b.squares[m] = Empty
	b.xToMove = !b.xToMove
}

// Outcome checks the board for a finished game. X lines are checked before O
// lines, so a (non-reachable) board with both would be an X win.
func (b *Board) Outcome() Outcome {
	if b.hasLine(X) {
		return XWin
	}
	if b.hasLine(O) {
		return OWin
	}
	if b.Full() {
		return Draw
	}
	return Continue
}

func (b *Board) hasLine(m Mark) bool {
	for _, l := range Lines {
		if b.squares[l[0]] == m && b.squares[l[1]] == m && b.squares[l[2]] == m {
			return true
		}
	}
	return false
}

// Full returns true if there are no empty squares left.
func (b *Board) Full() bool {
	for _, s := range b.squares {
		if s == Empty {
			return false
		}
	}
	return true
}

// Legal returns true if m can be played: the game is not over and the square
// is empty.
func (b *Board) Legal(m int) bool {
	if m < 0 || m >= NumSquares || b.squares[m] != Empty {
		return false
	}
	return b.Outcome() == Continue
}

// LegalMoves returns the legal moves in increasing square order.
func (b *Board) LegalMoves() []int {
	if b.Outcome() != Continue {
		return nil
	}
	return lo.Filter(lo.Range(NumSquares), func(m int, _ int) bool {
		return b.squares[m] == Empty
	})
}

// At returns the mark on square i.
func (b *Board) At(i int) Mark {
	return b.squares[i]
}

// Cells returns a copy of the squares, for display.
func (b *Board) Cells() [NumSquares]Mark {
	return b.squares
}

// Count returns how many squares hold the given mark.
func (b *Board) Count(m Mark) int {
	return lo.Count(b.squares[:], m)
}

// NumPlayed is the number of marks on the board.
func (b *Board) NumPlayed() int {
	return NumSquares - b.Count(Empty)
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	n := *b
	return &n
}

// CopyFrom copies the state of another board into this one.
func (b *Board) CopyFrom(other *Board) {
	b.squares = other.squares
	b.xToMove = other.xToMove
}

// Equals compares squares and side to move.
func (b *Board) Equals(other *Board) bool {
	return b.squares == other.squares && b.xToMove == other.xToMove
}
