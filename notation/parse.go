// Package notation reads and writes positions as text. A position looks
// like
//
//	XX1/OO1/3 x
//
// Rows are separated by slashes and listed top to bottom. Within a row, X and
// O are marks, digits are runs of empty squares, and '.' or '_' is a single
// empty square. The optional second field is the side to move; it must agree
// with the number of marks on the board.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/tictactoe/board"
)

var (
	ErrWrongRowCount    = errors.New("position must have 3 rows")
	ErrWrongSquareCount = errors.New("row must describe exactly 3 squares")
	ErrUnknownChar      = errors.New("unknown character in position")
	ErrBadSideToMove    = errors.New("side to move must be x or o")
	ErrTurnMismatch     = errors.New("side to move does not match the marks on the board")
	ErrTooManyFields    = errors.New("position takes at most 2 space-separated fields")
	ErrEmptyPosition    = errors.New("empty position")
)

// rowToMarks expands a single row.
func rowToMarks(row string) ([]board.Mark, error) {
	marks := make([]board.Mark, 0, board.Dim)
	for _, ch := range row {
		switch {
		case ch == 'X' || ch == 'x':
			marks = append(marks, board.X)
		case ch == 'O' || ch == 'o':
			marks = append(marks, board.O)
		case ch == '.' || ch == '_':
			marks = append(marks, board.Empty)
		case ch >= '1' && ch <= '9':
			n, _ := strconv.Atoi(string(ch))
			for i := 0; i < n; i++ {
				marks = append(marks, board.Empty)
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownChar, ch)
		}
	}
	return marks, nil
}

// Parse returns the board described by the given position string.
func Parse(pos string) (*board.Board, error) {
	fields := strings.Fields(pos)
	if len(fields) == 0 {
		return nil, ErrEmptyPosition
	}
	if len(fields) > 2 {
		return nil, ErrTooManyFields
	}

	var cells [board.NumSquares]board.Mark
	if strings.Contains(fields[0], "/") {
		rows := strings.Split(fields[0], "/")
		if len(rows) != board.Dim {
			return nil, ErrWrongRowCount
		}
		for r, row := range rows {
			marks, err := rowToMarks(row)
			if err != nil {
				return nil, err
			}
			if len(marks) != board.Dim {
				return nil, fmt.Errorf("%w: row %d (%q)", ErrWrongSquareCount, r+1, row)
			}
			copy(cells[r*board.Dim:], marks)
		}
	} else {
		marks, err := rowToMarks(fields[0])
		if err != nil {
			return nil, err
		}
		if len(marks) != board.NumSquares {
			return nil, fmt.Errorf("%w: got %d squares in total", ErrWrongSquareCount, len(marks))
		}
		copy(cells[:], marks)
	}

	b, err := board.FromCells(cells)
	if err != nil {
		return nil, err
	}

	if len(fields) == 2 {
		var onturn board.Mark
		switch strings.ToLower(fields[1]) {
		case "x":
			onturn = board.X
		case "o":
			onturn = board.O
		default:
			return nil, ErrBadSideToMove
		}
		if onturn != b.ToMove() {
			return nil, ErrTurnMismatch
		}
	}
	return b, nil
}

// Format writes the board in the notation that Parse reads, always with
// the side to move.
func Format(b *board.Board) string {
	var sb strings.Builder
	cells := b.Cells()
	for r := 0; r < board.Dim; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empties := 0
		for c := 0; c < board.Dim; c++ {
			m := cells[r*board.Dim+c]
			if m == board.Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteByte(m.Char())
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(strings.ToLower(b.ToMove().String()))
	return sb.String()
}
