// Package automatic plays computer-vs-computer games and collects what
// happened in them.
package automatic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/search/alphabeta"
	"github.com/domino14/tictactoe/stats"
	"github.com/domino14/tictactoe/turnplayer"
)

const logHeader = "gameID,outcome,plies,moves,nodes\n"

// GameRecord is one finished game.
type GameRecord struct {
	ID      uint64
	Outcome board.Outcome
	Moves   []int
	// Nodes holds the number of nodes searched for each move.
	Nodes      *stats.Statistic
	TotalNodes int
}

// outcomeCode is the outcome as it is written to the log file.
func outcomeCode(o board.Outcome) string {
	switch o {
	case board.XWin:
		return "xwin"
	case board.OWin:
		return "owin"
	case board.Draw:
		return "draw"
	}
	return "playing"
}

func parseOutcomeCode(s string) (board.Outcome, error) {
	switch s {
	case "xwin":
		return board.XWin, nil
	case "owin":
		return board.OWin, nil
	case "draw":
		return board.Draw, nil
	}
	return board.Continue, fmt.Errorf("unknown outcome %q", s)
}

func movesString(moves []int) string {
	ss := make([]string, len(moves))
	for i, m := range moves {
		ss[i] = strconv.Itoa(m + 1)
	}
	return strings.Join(ss, " ")
}

// gameID hashes the move sequence, so two games with the same moves share
// an ID.
func gameID(moves []int) uint64 {
	return xxhash.Sum64String(movesString(moves))
}

func (r *GameRecord) csvLine() string {
	return fmt.Sprintf("%016x,%v,%d,%v,%d\n",
		r.ID, outcomeCode(r.Outcome), len(r.Moves), movesString(r.Moves), r.TotalNodes)
}

// GameRunner is the master struct here for the automatic game logic. It
// owns its own game and searcher, so each goroutine needs its own runner.
type GameRunner struct {
	bot     *turnplayer.BotTurnPlayer
	config  *config.Config
	logchan chan *GameRecord
}

// NewGameRunner makes a runner where the bot holds both seats. A nil
// picker uses the configured tiebreak.
func NewGameRunner(logchan chan *GameRecord, cfg *config.Config, picker alphabeta.Picker) *GameRunner {
	opts := &turnplayer.GameOptions{}
	opts.SetDefaults(cfg)
	opts.BotPlaysX, opts.BotPlaysO = true, true
	bot := turnplayer.NewBotTurnPlayer(opts)
	if picker != nil {
		bot.SetPicker(picker)
	}
	return &GameRunner{bot: bot, config: cfg, logchan: logchan}
}

func (r *GameRunner) StartGame() {
	r.bot.StartGame()
}

// playFull plays a game from the empty board to the end.
func (r *GameRunner) playFull() (*GameRecord, error) {
	r.StartGame()
	nodes := &stats.Statistic{}
	total := 0
	for r.bot.IsPlaying() {
		m, res, err := r.bot.GenerateMove()
		if err != nil {
			return nil, err
		}
		if err := r.bot.PlayMove(m); err != nil {
			return nil, err
		}
		nodes.Push(float64(res.Nodes))
		total += res.Nodes
	}
	moves := make([]int, 0, board.NumSquares)
	for _, m := range r.bot.History() {
		moves = append(moves, m.Cell())
	}
	rec := &GameRecord{
		ID:         gameID(moves),
		Outcome:    r.bot.Outcome(),
		Moves:      moves,
		Nodes:      nodes,
		TotalNodes: total,
	}
	log.Debug().Str("moves", movesString(moves)).Str("outcome", rec.Outcome.String()).Msg("game-finished")
	if r.logchan != nil {
		r.logchan <- rec
	}
	return rec, nil
}
