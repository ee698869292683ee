package minimax

import (
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

const (
	// There are only 5478 reachable positions, times at most ten depths.
	minSizePowerOf2 = 10
	maxSizePowerOf2 = 16
)

var entrySize = uint64(unsafe.Sizeof(TableEntry{}))

// The same position can be worth a different amount depending on how far
// from the root it was reached, so entries are keyed on depth as well.
type TableEntry struct {
	hash  uint64
	score int16
	depth uint8
	valid bool
}

type TranspositionTable struct {
	table        []TableEntry
	sizePowerOf2 int
	sizeMask     uint64

	created atomic.Uint64
	lookups atomic.Uint64
	hits    atomic.Uint64
	// two different positions landing on the same slot.
	t2collisions atomic.Uint64
}

// NewTranspositionTable allocates 2^sizePowerOf2 entries. There are only
// 5478 reachable positions, so 2^14 leaves the table mostly empty.
func NewTranspositionTable(sizePowerOf2 int) *TranspositionTable {
	t := &TranspositionTable{}
	t.Reset(sizePowerOf2)
	return t
}

// SizeForMemory returns the biggest power of two such that a table of that
// many entries fits in the given fraction of system memory. The result is
// clamped to a range that suits the game.
func SizeForMemory(fractionOfMemory float64) int {
	totalMem := memory.TotalMemory()
	desiredNElems := fractionOfMemory * (float64(totalMem) / float64(entrySize))
	pow := minSizePowerOf2
	if desiredNElems >= 1 {
		pow = int(math.Log2(desiredNElems))
	}
	return max(minSizePowerOf2, min(pow, maxSizePowerOf2))
}

func (t *TranspositionTable) Reset(sizePowerOf2 int) {
	if sizePowerOf2 < 1 {
		sizePowerOf2 = 14
	}
	if len(t.table) != 1<<sizePowerOf2 {
		t.table = make([]TableEntry, 1<<sizePowerOf2)
	} else {
		clear(t.table)
	}
	t.sizePowerOf2 = sizePowerOf2
	t.sizeMask = uint64(1<<sizePowerOf2) - 1
	t.created.Store(0)
	t.lookups.Store(0)
	t.hits.Store(0)
	t.t2collisions.Store(0)
	log.Debug().Int("entries", len(t.table)).Msg("transposition-table-reset")
}

func (t *TranspositionTable) lookup(zval uint64, depth int) (int, bool) {
	t.lookups.Add(1)
	e := t.table[zval&t.sizeMask]
	if !e.valid {
		return 0, false
	}
	if e.hash != zval {
		t.t2collisions.Add(1)
		return 0, false
	}
	if int(e.depth) != depth {
		return 0, false
	}
	t.hits.Add(1)
	return int(e.score), true
}

// store always replaces whatever was in the slot.
func (t *TranspositionTable) store(zval uint64, depth, score int) {
	t.created.Add(1)
	t.table[zval&t.sizeMask] = TableEntry{
		hash:  zval,
		score: int16(score),
		depth: uint8(depth),
		valid: true,
	}
}

func (t *TranspositionTable) Stats() string {
	return fmt.Sprintf("created: %d lookups: %d hits: %d t2collisions: %d",
		t.created.Load(), t.lookups.Load(), t.hits.Load(), t.t2collisions.Load())
}
