package board

// A Mark is the content of a single square: nothing, an X or an O.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// Opponent returns the mark of the other player. The opponent of Empty is
// Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// Char is the character used to draw the mark on a board.
func (m Mark) Char() byte {
	switch m {
	case X:
		return 'X'
	case O:
		return 'O'
	}
	return ' '
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "empty"
}

// Outcome classifies a board as won, drawn, or still in progress.
type Outcome int8

const (
	OWin     Outcome = -1
	Draw     Outcome = 0
	XWin     Outcome = 1
	Continue Outcome = 2
)

// Terminal returns true if no further moves can be made.
func (o Outcome) Terminal() bool {
	return o != Continue
}

// Winner returns the mark that won, or Empty for a draw or an unfinished
// game.
func (o Outcome) Winner() Mark {
	switch o {
	case XWin:
		return X
	case OWin:
		return O
	}
	return Empty
}

func (o Outcome) String() string {
	switch o {
	case XWin:
		return "X WINS"
	case OWin:
		return "O WINS"
	case Draw:
		return "DRAW"
	}
	return "PLAYING"
}
