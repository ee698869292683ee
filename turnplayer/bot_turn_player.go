package turnplayer

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/move"
	"github.com/domino14/tictactoe/search/alphabeta"
)

// BotTurnPlayer plays perfect tic-tac-toe for whichever side is to move.
type BotTurnPlayer struct {
	BaseTurnPlayer
	searcher *alphabeta.Searcher
}

func NewBotTurnPlayer(opts *GameOptions) *BotTurnPlayer {
	return &BotTurnPlayer{
		BaseTurnPlayer: *BaseTurnPlayerFromOptions(opts),
		searcher:       alphabeta.NewSearcher(opts.Picker()),
	}
}

// SetPicker changes how ties are broken from the next move on.
func (p *BotTurnPlayer) SetPicker(picker alphabeta.Picker) {
	p.searcher.SetPicker(picker)
}

// GenerateMove picks a move for the side to move without playing it.
func (p *BotTurnPlayer) GenerateMove() (int, *alphabeta.SearchResult, error) {
	res, err := p.searcher.Evaluate(p.Board())
	if err != nil {
		return -1, nil, err
	}
	return p.searcher.Pick(res), res, nil
}

// Evaluate scores every square for the side to move.
func (p *BotTurnPlayer) Evaluate() (*alphabeta.SearchResult, error) {
	return p.searcher.Evaluate(p.Board())
}

// PlayBestMove generates and plays the bot's move.
func (p *BotTurnPlayer) PlayBestMove() (int, error) {
	m, res, err := p.GenerateMove()
	if err != nil {
		return -1, err
	}
	mark := p.PlayerOnTurn()
	if err := p.PlayMove(m); err != nil {
		return -1, err
	}
	log.Info().
		Str("move", move.NewMove(m, mark).ShortDescription()).
		Int("score", res.Score(m)).
		Str("verdict", alphabeta.Describe(res.Evals[m])).
		Msgf("Calculated in %v", res.Elapsed)
	return m, nil
}
