// Package move turns human input into board squares and back.
package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/tictactoe/board"
)

var (
	ErrMoveOutOfRange = errors.New("move is off the board")
	ErrBadMoveFormat  = errors.New("move must be a square number 1-9 or a coordinate like b2")
)

// Move is a mark placed on a square. Moves are kept in a game's history.
type Move struct {
	cell int
	mark board.Mark
}

var reFileRank, reRankFile *regexp.Regexp

func init() {
	reFileRank = regexp.MustCompile(`^(?P<file>[a-z])(?P<rank>[0-9]+)$`)
	reRankFile = regexp.MustCompile(`^(?P<rank>[0-9]+)(?P<file>[a-z])$`)
}

func NewMove(cell int, mark board.Mark) *Move {
	return &Move{cell: cell, mark: mark}
}

func (m *Move) Cell() int {
	return m.cell
}

func (m *Move) Mark() board.Mark {
	return m.mark
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p mark: %v square: %d coords: %v>",
		m, m.mark, m.cell+1, ToBoardGameCoords(m.cell))
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	return fmt.Sprintf("%v %v", m.mark, ToBoardGameCoords(m.cell))
}

func (m *Move) Equals(o *Move) bool {
	return m.cell == o.cell && m.mark == o.mark
}

// ToBoardGameCoords converts a square index to a coordinate such as "a3".
// Files run a to c from left to right; ranks run 3 to 1 from top to bottom,
// so square 0 is a3 and square 8 is c1.
func ToBoardGameCoords(cell int) string {
	row, col := cell/board.Dim, cell%board.Dim
	return string(rune('a'+col)) + strconv.Itoa(board.Dim-row)
}

// FromBoardGameCoords converts a coordinate to a square index. Both "b2"
// and "2b" are accepted. It returns false if c is not a coordinate on the
// board.
func FromBoardGameCoords(c string) (int, bool) {
	c = strings.ToLower(c)
	var file, rank string
	if m := reFileRank.FindStringSubmatch(c); len(m) == 3 {
		file, rank = m[1], m[2]
	} else if m := reRankFile.FindStringSubmatch(c); len(m) == 3 {
		rank, file = m[1], m[2]
	} else {
		return 0, false
	}
	col := int(file[0] - 'a')
	r, _ := strconv.Atoi(rank)
	if col >= board.Dim || r < 1 || r > board.Dim {
		return 0, false
	}
	return (board.Dim-r)*board.Dim + col, true
}

// FromString parses a human move. Numbers are the 1-based squares of the
// guide grid; anything else is read as a coordinate.
func FromString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrBadMoveFormat
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > board.NumSquares {
			return 0, fmt.Errorf("%w: %d", ErrMoveOutOfRange, n)
		}
		return n - 1, nil
	}
	if cell, ok := FromBoardGameCoords(s); ok {
		return cell, nil
	}
	if reFileRank.MatchString(strings.ToLower(s)) || reRankFile.MatchString(strings.ToLower(s)) {
		return 0, fmt.Errorf("%w: %v", ErrMoveOutOfRange, s)
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMoveFormat, s)
}
