// Package game holds a single tic-tac-toe session: one board, the moves
// that led to it, and which seats the bot holds.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/move"
)

var (
	ErrGameOver      = errors.New("cannot play a move on a game that is over")
	ErrInvalidMove   = errors.New("that square cannot be played")
	ErrNothingToUndo = errors.New("there are no moves to take back")
)

// Game is the session. A Game and its Board must not be shared between
// goroutines.
type Game struct {
	board *board.Board
	// start is the position the game was started or loaded from.
	start   *board.Board
	history []*move.Move
	// botPlays is indexed by seat: 0 for X, 1 for O.
	botPlays [2]bool
}

func NewGame() *Game {
	g := &Game{board: board.NewBoard()}
	g.StartGame()
	return g
}

// NewFromPosition starts a game from a position other than the empty board.
// Moves cannot be taken back past it.
func NewFromPosition(b *board.Board) *Game {
	g := &Game{board: b.Copy(), start: b.Copy()}
	return g
}

// StartGame resets the board and the history. Bot seats are kept.
func (g *Game) StartGame() {
	g.board.Reset()
	g.start = g.board.Copy()
	g.history = nil
	log.Debug().Msg("game-started")
}

func seat(m board.Mark) int {
	if m == board.O {
		return 1
	}
	return 0
}

// PlayMove puts the mark of the side to move on the given square. On error
// the board is untouched.
func (g *Game) PlayMove(cell int) error {
	if !g.Playing() {
		return ErrGameOver
	}
	mark := g.board.ToMove()
	if !g.board.ApplyMove(cell) {
		return fmt.Errorf("%w: %d", ErrInvalidMove, cell+1)
	}
	m := move.NewMove(cell, mark)
	g.history = append(g.history, m)
	log.Debug().Str("move", m.ShortDescription()).Int("turn", g.Turn()).Msg("played-move")
	if g.board.Outcome().Terminal() {
		log.Debug().Str("outcome", g.board.Outcome().String()).Msg("game-over")
	}
	return nil
}

// UnplayLastMove takes back the last move.
func (g *Game) UnplayLastMove() error {
	if len(g.history) == 0 {
		return ErrNothingToUndo
	}
	last := g.history[len(g.history)-1]
	g.board.UndoMove(last.Cell())
	g.history = g.history[:len(g.history)-1]
	log.Debug().Str("move", last.ShortDescription()).Msg("unplayed-move")
	return nil
}

func (g *Game) SetBotPlayers(x, o bool) {
	g.botPlays = [2]bool{x, o}
}

func (g *Game) BotPlays(m board.Mark) bool {
	return g.botPlays[seat(m)]
}

// BotOnTurn returns true if the game is not over and the bot holds the seat
// of the side to move.
func (g *Game) BotOnTurn() bool {
	return g.Playing() && g.BotPlays(g.board.ToMove())
}

func (g *Game) Outcome() board.Outcome {
	return g.board.Outcome()
}

func (g *Game) Playing() bool {
	return !g.board.Outcome().Terminal()
}

// Turn is the number of moves played since the game was started or loaded.
func (g *Game) Turn() int {
	return len(g.history)
}

func (g *Game) PlayerOnTurn() board.Mark {
	return g.board.ToMove()
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []*move.Move {
	h := make([]*move.Move, len(g.history))
	copy(h, g.history)
	return h
}

// Board returns the live board. Callers may search it, but must leave it as
// they found it.
func (g *Game) Board() *board.Board {
	return g.board
}

// StartingPosition returns a copy of the position the game began from.
func (g *Game) StartingPosition() *board.Board {
	return g.start.Copy()
}
