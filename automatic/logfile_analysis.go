package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/move"
)

// AnalyzeLogFile reads back a file written by StartCompVComp. Every game is
// replayed, and a game whose moves do not lead to its recorded outcome is an
// error.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return analyzeLog(file)
}

func analyzeLog(rd io.Reader) (*Summary, error) {
	r := csv.NewReader(rd)
	// Record looks like:
	// gameID,outcome,plies,moves,nodes
	r.FieldsPerRecord = 5

	summary := newSummary()
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if record[0] == "gameID" {
			// this is the header line
			continue
		}
		rec, err := recordFromCSV(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		summary.add(rec)
	}
	summary.finish()
	return summary, nil
}

func recordFromCSV(record []string) (*GameRecord, error) {
	id, err := strconv.ParseUint(record[0], 16, 64)
	if err != nil {
		return nil, err
	}
	outcome, err := parseOutcomeCode(record[1])
	if err != nil {
		return nil, err
	}
	plies, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, err
	}
	nodes, err := strconv.Atoi(record[4])
	if err != nil {
		return nil, err
	}

	b := board.NewBoard()
	var moves []int
	for _, f := range strings.Fields(record[3]) {
		m, err := move.FromString(f)
		if err != nil {
			return nil, err
		}
		if !b.Legal(m) {
			return nil, fmt.Errorf("illegal move %v after %v", f, movesString(moves))
		}
		b.ApplyMove(m)
		moves = append(moves, m)
	}
	if len(moves) != plies {
		return nil, fmt.Errorf("expected %d plies, got %d moves", plies, len(moves))
	}
	if b.Outcome() != outcome {
		return nil, fmt.Errorf("moves end in %v, but outcome says %v", b.Outcome(), outcome)
	}
	if gameID(moves) != id {
		return nil, fmt.Errorf("game ID %016x does not match its moves", id)
	}
	return &GameRecord{ID: id, Outcome: outcome, Moves: moves, TotalNodes: nodes}, nil
}
