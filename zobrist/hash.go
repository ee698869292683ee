package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/tictactoe/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a tic-tac-toe position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	oToMove  uint64
	posTable [board.NumSquares][2]uint64
}

func markIdx(m board.Mark) int {
	if m == board.O {
		return 1
	}
	return 0
}

func (z *Zobrist) Initialize() {
	for i := 0; i < board.NumSquares; i++ {
		for j := 0; j < 2; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.oToMove = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) Hash(b *board.Board) uint64 {
	key := uint64(0)
	for i, m := range b.Cells() {
		if m == board.Empty {
			continue
		}
		key ^= z.posTable[i][markIdx(m)]
	}
	if b.ToMove() == board.O {
		key ^= z.oToMove
	}
	return key
}

// AddMove updates key for mark being placed on (or removed from) cell. The
// turn always alternates, so the side-to-move key flips as well. Calling it
// twice with the same arguments returns the original key.
func (z *Zobrist) AddMove(key uint64, cell int, mark board.Mark) uint64 {
	key ^= z.posTable[cell][markIdx(mark)]
	key ^= z.oToMove
	return key
}
