package turnplayer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/tictactoe/move"
)

var ErrUnrecognizedMove = errors.New("unrecognized move")

// ParseBool accepts the answers the console has always accepted to a yes/no
// question, plus the usual true/false spellings.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%q is not yes or no", s)
	}
	return b, nil
}

// ParseMove reads a move from the fields of a command: either a single
// square ("5", "b2") or "play" followed by one.
func (p *BaseTurnPlayer) ParseMove(fields []string) (int, error) {
	if len(fields) == 2 && fields[0] == "play" {
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return -1, fmt.Errorf("%w: %s", ErrUnrecognizedMove, strings.Join(fields, " "))
	}
	return move.FromString(fields[0])
}
