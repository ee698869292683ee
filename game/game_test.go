package game

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/notation"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.True(g.Playing())
	is.Equal(g.Turn(), 0)
	is.Equal(g.PlayerOnTurn(), board.X)
	is.Equal(g.Outcome(), board.Continue)
	is.True(!g.BotOnTurn())
}

func TestPlayAndUndo(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.PlayMove(4))
	is.NoErr(g.PlayMove(0))
	is.Equal(g.Turn(), 2)
	is.Equal(g.PlayerOnTurn(), board.X)

	h := g.History()
	is.Equal(len(h), 2)
	is.Equal(h[0].Cell(), 4)
	is.Equal(h[0].Mark(), board.X)
	is.Equal(h[1].Mark(), board.O)

	is.NoErr(g.UnplayLastMove())
	is.NoErr(g.UnplayLastMove())
	is.True(g.Board().Equals(board.NewBoard()))
	is.Equal(g.UnplayLastMove(), ErrNothingToUndo)
}

func TestInvalidMoveLeavesBoardAlone(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.PlayMove(4))
	before := g.Board().Copy()

	err := g.PlayMove(4)
	is.True(errors.Is(err, ErrInvalidMove))
	is.True(strings.Contains(err.Error(), "5"))
	err = g.PlayMove(9)
	is.True(errors.Is(err, ErrInvalidMove))

	is.True(g.Board().Equals(before))
	is.Equal(g.Turn(), 1)
}

func TestGameOver(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	for _, m := range []int{0, 3, 1, 4, 2} {
		is.NoErr(g.PlayMove(m))
	}
	is.True(!g.Playing())
	is.Equal(g.Outcome(), board.XWin)
	is.Equal(g.PlayMove(5), ErrGameOver)

	g.SetBotPlayers(true, true)
	is.True(!g.BotOnTurn())

	// a takeback reopens the game
	is.NoErr(g.UnplayLastMove())
	is.True(g.Playing())
	is.True(g.BotOnTurn())
}

func TestBotSeats(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	g.SetBotPlayers(false, true)
	is.True(!g.BotOnTurn())
	is.NoErr(g.PlayMove(0))
	is.True(g.BotOnTurn())
	is.True(g.BotPlays(board.O))
	is.True(!g.BotPlays(board.X))

	// starting over keeps the seats
	g.StartGame()
	is.True(g.BotPlays(board.O))
	is.Equal(g.Turn(), 0)
}

func TestNewFromPosition(t *testing.T) {
	is := is.New(t)
	b, err := notation.Parse("XX1/OO1/3 x")
	is.NoErr(err)
	g := NewFromPosition(b)
	is.Equal(g.Turn(), 0)
	is.Equal(g.UnplayLastMove(), ErrNothingToUndo)
	is.NoErr(g.PlayMove(2))
	is.Equal(g.Outcome(), board.XWin)
	// the caller's board is not the game's board
	is.Equal(b.Outcome(), board.Continue)
	is.True(g.StartingPosition().Equals(b))
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	g.SetBotPlayers(false, true)
	is.NoErr(g.PlayMove(0))

	expected := strings.Join([]string{
		" X |   |           X: human",
		"-----------     -> O: bot",
		"   |   |   ",
		"-----------     Turn 1:",
		"   |   |        X a3",
		"",
		"X2/3/3 o",
	}, "\n")
	is.Equal(g.ToDisplayText(), expected)

	for _, m := range []int{3, 1, 4, 2} {
		is.NoErr(g.PlayMove(m))
	}
	text := g.ToDisplayText()
	is.True(strings.Contains(text, "\nX WINS\n"))
	is.True(strings.HasSuffix(text, "XXX/OO1/3 o"))
}
