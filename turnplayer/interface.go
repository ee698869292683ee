package turnplayer

// TurnPlayer encapsulates all the functions needed to play a single turn
// of tic-tac-toe.
type TurnPlayer interface {
	ParseMove(fields []string) (int, error)
	PlayUserMove(fields []string) (int, error)
	IsPlaying() bool
}

var _ TurnPlayer = (*BaseTurnPlayer)(nil)
var _ TurnPlayer = (*BotTurnPlayer)(nil)
