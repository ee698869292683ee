package board

import (
	"strings"
)

const rowSeparator = "-----------\n"

func displayRow(a, b, c Mark) string {
	return " " + string(a.Char()) + " | " + string(b.Char()) + " | " + string(c.Char()) + " \n"
}

// ToDisplayText draws the board the way it is shown at the console:
//
//	 X | O |
//	-----------
//	   | X |
//	-----------
//	   |   | O
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for r := 0; r < Dim; r++ {
		if r > 0 {
			sb.WriteString(rowSeparator)
		}
		i := r * Dim
		sb.WriteString(displayRow(b.squares[i], b.squares[i+1], b.squares[i+2]))
	}
	sb.WriteString("\n")
	return sb.String()
}

// ToGuideText draws the board with the 1-based numbers of the empty squares
// filled in, so that a player can see what to type.
func (b *Board) ToGuideText() string {
	var sb strings.Builder
	for r := 0; r < Dim; r++ {
		if r > 0 {
			sb.WriteString(rowSeparator)
		}
		cells := make([]string, Dim)
		for c := 0; c < Dim; c++ {
			i := r*Dim + c
			if b.squares[i] == Empty {
				cells[c] = string(rune('1' + i))
			} else {
				cells[c] = string(b.squares[i].Char())
			}
		}
		sb.WriteString(" " + strings.Join(cells, " | ") + " \n")
	}
	return sb.String()
}
