package game

import (
	"fmt"
	"strings"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/notation"
)

func addText(lines []string, row int, hpad int, text string) {
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
}

func (g *Game) seatString(m board.Mark) string {
	who := "human"
	if g.BotPlays(m) {
		who = "bot"
	}
	marker := "  "
	if g.Playing() && g.board.ToMove() == m {
		marker = "->"
	}
	return fmt.Sprintf("%s %v: %s", marker, m, who)
}

// ToPosition returns the position in notation form.
func (g *Game) ToPosition() string {
	return notation.Format(g.board)
}

// ToDisplayText turns the current state of the game into a displayable
// string: the grid with the seats and last move beside it, a banner if the
// game is over, and the position string.
func (g *Game) ToDisplayText() string {
	bt := strings.TrimRight(g.board.ToDisplayText(), "\n")
	bts := strings.Split(bt, "\n")
	hpadding := 5

	addText(bts, 0, hpadding, g.seatString(board.X))
	addText(bts, 1, hpadding, g.seatString(board.O))

	addText(bts, 3, hpadding, fmt.Sprintf("Turn %d:", g.Turn()))
	if n := len(g.history); n > 0 {
		addText(bts, 4, hpadding, g.history[n-1].ShortDescription())
	}

	bts = append(bts, "")
	if !g.Playing() {
		bts = append(bts, g.board.Outcome().String(), "")
	}
	return strings.Join(append(bts, g.ToPosition()), "\n")
}
