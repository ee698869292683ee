package notation

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tictactoe/board"
)

func TestRowToMarks(t *testing.T) {
	is := is.New(t)
	testcases := []struct {
		row    string
		parsed []board.Mark
	}{
		{"3", []board.Mark{board.Empty, board.Empty, board.Empty}},
		{"XX1", []board.Mark{board.X, board.X, board.Empty}},
		{"1O1", []board.Mark{board.Empty, board.O, board.Empty}},
		{"x._", []board.Mark{board.X, board.Empty, board.Empty}},
		{"XOX", []board.Mark{board.X, board.O, board.X}},
	}
	for _, tc := range testcases {
		parsed, err := rowToMarks(tc.row)
		is.NoErr(err)
		is.Equal(parsed, tc.parsed)
	}
}

func TestParse(t *testing.T) {
	is := is.New(t)
	b, err := Parse("XX1/OO1/3 x")
	is.NoErr(err)
	is.Equal(b.Cells(), [board.NumSquares]board.Mark{
		board.X, board.X, board.Empty,
		board.O, board.O, board.Empty,
		board.Empty, board.Empty, board.Empty,
	})
	is.Equal(b.ToMove(), board.X)

	// Same position without row separators or side to move.
	b2, err := Parse("XX.OO....")
	is.NoErr(err)
	is.True(b.Equals(b2))

	b3, err := Parse("XX1OO4")
	is.NoErr(err)
	is.True(b.Equals(b3))
}

func TestParseErrors(t *testing.T) {
	testcases := []struct {
		pos string
		err error
	}{
		{"", ErrEmptyPosition},
		{"XX1/OO1/3 x extra", ErrTooManyFields},
		{"XX1/OO1", ErrWrongRowCount},
		{"XX1/OO2/3", ErrWrongSquareCount},
		{"XX1OO", ErrWrongSquareCount},
		{"XZ1/OO1/3", ErrUnknownChar},
		{"XX1/OO1/3 q", ErrBadSideToMove},
		{"XX1/OO1/3 o", ErrTurnMismatch},
		{"XXX/3/3", board.ErrIllegalPosition},
	}
	for _, tc := range testcases {
		_, err := Parse(tc.pos)
		if !errors.Is(err, tc.err) {
			t.Errorf("Parse(%q): expected %v, got %v", tc.pos, tc.err, err)
		}
	}
}

func TestFormat(t *testing.T) {
	is := is.New(t)
	is.Equal(Format(board.NewBoard()), "3/3/3 x")

	b := board.NewBoard()
	for _, m := range []int{0, 4, 8} {
		is.True(b.ApplyMove(m))
	}
	is.Equal(Format(b), "X2/1O1/2X o")

	for _, pos := range []string{"XX1/OO1/3 x", "XOX/OXO/OXX o", "1X1/O2/3 x"} {
		b, err := Parse(pos)
		is.NoErr(err)
		is.Equal(Format(b), pos)
	}
}
