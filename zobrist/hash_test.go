package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tictactoe/board"
)

func TestHashAfterMakingPlay(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	b := board.NewBoard()
	is.True(b.ApplyMove(4))
	h := z.Hash(b)

	// O plays the corner.
	h1 := z.AddMove(h, 0, board.O)
	is.True(b.ApplyMove(0))
	is.Equal(h1, z.Hash(b))
}

func TestPlayAndUnplay(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	b := board.NewBoard()
	h := z.Hash(b)
	moves := []int{4, 0, 8, 2}
	keys := []uint64{h}
	for _, m := range moves {
		mark := b.ToMove()
		is.True(b.ApplyMove(m))
		h = z.AddMove(h, m, mark)
		is.Equal(h, z.Hash(b))
		keys = append(keys, h)
	}
	// And unplay these moves in reverse order.
	for i := len(moves) - 1; i >= 0; i-- {
		b.UndoMove(moves[i])
		h = z.AddMove(h, moves[i], b.ToMove())
		is.Equal(h, keys[i])
	}
	is.Equal(h, z.Hash(board.NewBoard()))
}

func TestTransposedOrdersHashTheSame(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	b1 := board.NewBoard()
	for _, m := range []int{0, 4, 8} {
		b1.ApplyMove(m)
	}
	b2 := board.NewBoard()
	for _, m := range []int{8, 4, 0} {
		b2.ApplyMove(m)
	}
	is.True(b1.Equals(b2))
	is.Equal(z.Hash(b1), z.Hash(b2))

	// Same squares, different side to move is impossible by counts, but
	// different marks on the same squares must differ.
	b3 := board.NewBoard()
	for _, m := range []int{4, 0, 8} {
		b3.ApplyMove(m)
	}
	is.True(z.Hash(b1) != z.Hash(b3)) // extremely unlikely to collide
}
