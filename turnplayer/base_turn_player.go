package turnplayer

import (
	"github.com/domino14/tictactoe/game"
)

// Basic game. Parse and make moves.

type BaseTurnPlayer struct {
	*game.Game
}

// BaseTurnPlayerFromOptions is a good entry point
func BaseTurnPlayerFromOptions(opts *GameOptions) *BaseTurnPlayer {
	g := game.NewGame()
	g.SetBotPlayers(opts.BotPlaysX, opts.BotPlaysO)
	return &BaseTurnPlayer{g}
}

// PlayUserMove parses a move typed by a person and plays it.
func (p *BaseTurnPlayer) PlayUserMove(fields []string) (int, error) {
	cell, err := p.ParseMove(fields)
	if err != nil {
		return -1, err
	}
	return cell, p.PlayMove(cell)
}

func (p *BaseTurnPlayer) IsPlaying() bool {
	return p.Playing()
}

func (p *BaseTurnPlayer) SetGame(g *game.Game) {
	p.Game = g
}
