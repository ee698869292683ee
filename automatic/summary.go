package automatic

import (
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tictactoe/board"
	"github.com/domino14/tictactoe/stats"
)

const histogramBins = 10

// Node counts run into the hundreds of thousands; group their digits.
var printer = message.NewPrinter(language.English)

// Summary describes a batch of finished games.
type Summary struct {
	Games         int     `yaml:"games"`
	XWins         int     `yaml:"x_wins"`
	OWins         int     `yaml:"o_wins"`
	Draws         int     `yaml:"draws"`
	DistinctGames int     `yaml:"distinct_games"`
	MeanPlies     float64 `yaml:"mean_plies"`
	StdevPlies    float64 `yaml:"stdev_plies"`
	// Per-search figures. They are only known for games played in this
	// process, not for games read back from a log file.
	Searches     int     `yaml:"searches"`
	MeanNodes    float64 `yaml:"mean_nodes"`
	StdevNodes   float64 `yaml:"stdev_nodes"`
	NodesCI99    float64 `yaml:"mean_nodes_ci99"`
	MaxNodes     float64 `yaml:"max_nodes"`
	NodesPerGame float64 `yaml:"nodes_per_game"`

	plies     stats.Statistic
	nodes     stats.Statistic
	gameNodes stats.Statistic
	// total nodes for each game, for the histogram
	gameNodeCounts []float64
	seen           map[uint64]struct{}
}

func newSummary() *Summary {
	return &Summary{seen: make(map[uint64]struct{})}
}

func (s *Summary) add(rec *GameRecord) {
	s.Games++
	switch rec.Outcome {
	case board.XWin:
		s.XWins++
	case board.OWin:
		s.OWins++
	case board.Draw:
		s.Draws++
	}
	s.seen[rec.ID] = struct{}{}
	s.plies.Push(float64(len(rec.Moves)))
	if rec.Nodes != nil {
		s.nodes.Merge(rec.Nodes)
	}
	s.gameNodes.Push(float64(rec.TotalNodes))
	s.gameNodeCounts = append(s.gameNodeCounts, float64(rec.TotalNodes))
}

func (s *Summary) finish() {
	s.DistinctGames = len(s.seen)
	s.MeanPlies = s.plies.Mean()
	s.StdevPlies = s.plies.Stdev()
	s.Searches = s.nodes.Iterations()
	s.MeanNodes = s.nodes.Mean()
	s.StdevNodes = s.nodes.Stdev()
	if s.Searches > 0 {
		s.NodesCI99 = s.nodes.ConfidenceInterval(99)
	}
	s.MaxNodes = s.nodes.Max()
	s.NodesPerGame = s.gameNodes.Mean()
}

func pct(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return 100.0 * float64(n) / float64(d)
}

// ToDisplayText renders the summary with a histogram of nodes searched per
// game.
func (s *Summary) ToDisplayText() string {
	var ss strings.Builder
	printer.Fprintf(&ss, "Games played: %d (%d distinct)\n", s.Games, s.DistinctGames)
	printer.Fprintf(&ss, "X wins: %d (%.3f%%)\n", s.XWins, pct(s.XWins, s.Games))
	printer.Fprintf(&ss, "O wins: %d (%.3f%%)\n", s.OWins, pct(s.OWins, s.Games))
	printer.Fprintf(&ss, "Draws: %d (%.3f%%)\n", s.Draws, pct(s.Draws, s.Games))
	printer.Fprintf(&ss, "Game length: %.3f plies  Stdev: %.3f\n", s.MeanPlies, s.StdevPlies)
	if s.Searches > 0 {
		printer.Fprintf(&ss, "Nodes per search: %.1f ± %.1f (99%%)  Stdev: %.1f  Max: %.0f  over %d searches\n",
			s.MeanNodes, s.NodesCI99, s.StdevNodes, s.MaxNodes, s.Searches)
	}
	printer.Fprintf(&ss, "Nodes per game: %.1f\n", s.NodesPerGame)
	switch {
	case len(s.gameNodeCounts) == 0:
	case s.gameNodes.Min() == s.gameNodes.Max():
		printer.Fprintf(&ss, "Every game searched %.0f nodes\n", s.gameNodes.Min())
	default:
		ss.WriteString("\nNodes searched per game:\n")
		h := histogram.Hist(histogramBins, s.gameNodeCounts)
		if err := histogram.Fprint(&ss, h, histogram.Linear(40)); err != nil {
			printer.Fprintf(&ss, "(could not draw histogram: %v)\n", err)
		}
	}
	return ss.String()
}

func (s *Summary) ToYAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
