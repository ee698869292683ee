package shell

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -logfile /path/to/log.txt",
			&shellcmd{"autoplay", nil, CmdOptions{"logfile": {"/path/to/log.txt"}}},
			nil},
		{"autoplay stop",
			&shellcmd{"autoplay", []string{"stop"}, CmdOptions{}},
			nil},
		{"autoplay analyze /tmp/games.txt -yaml true ",
			&shellcmd{"autoplay",
				[]string{"analyze", "/tmp/games.txt"},
				CmdOptions{"yaml": {"true"}}},
			nil,
		},
		{"load XX1/OO1/3 x",
			&shellcmd{"load", []string{"XX1/OO1/3", "x"}, CmdOptions{}},
			nil},
		{"set seed -5",
			&shellcmd{"set", []string{"seed", "-5"}, CmdOptions{}},
			nil},
		{"autoplay -games 10 -threads",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	sc := newController(config.DefaultConfig(), "", "test")
	out := &bytes.Buffer{}
	sc.out = out
	sc.blocking = true
	return sc, out
}

func run(t *testing.T, sc *ShellController, line string) (*Response, error) {
	t.Helper()
	return sc.standardModeSwitch(line, nil)
}

func TestPlayAgainstBot(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	_, err := run(t, sc, "set tiebreak lowest")
	is.NoErr(err)
	_, err = run(t, sc, "new")
	is.NoErr(err)
	is.Equal(sc.bot.Turn(), 0)

	// a bare square is a move, and the bot answers it
	resp, err := run(t, sc, "5")
	is.NoErr(err)
	is.Equal(sc.bot.Turn(), 2)
	is.True(strings.Contains(resp.message, "X to move"))

	// the bot answered in the top left corner
	is.Equal(sc.bot.History()[1].Cell(), 0)
	resp, err = run(t, sc, "play c1")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Turn 4:"))
	is.Equal(sc.bot.Turn(), 4)

	_, err = run(t, sc, "5")
	is.True(errors.Is(err, game.ErrInvalidMove))

	// undo takes back the bot's reply too
	_, err = run(t, sc, "undo")
	is.NoErr(err)
	is.Equal(sc.bot.Turn(), 2)
	is.True(!sc.bot.BotOnTurn())
}

func TestBotPlaysX(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	_, err := run(t, sc, "new -botx yes -boto no")
	is.NoErr(err)
	// the bot opened
	is.Equal(sc.bot.Turn(), 1)
	is.True(sc.options.BotPlaysX)
	is.True(!sc.options.BotPlaysO)

	// the settings stick for the next game
	_, err = run(t, sc, "new")
	is.NoErr(err)
	is.Equal(sc.bot.Turn(), 1)

	// nothing is left to take back after the bot's opening move
	_, err = run(t, sc, "undo")
	is.NoErr(err)
	is.Equal(sc.bot.Turn(), 0)
	_, err = run(t, sc, "undo")
	is.Equal(err, game.ErrNothingToUndo)
	_, err = run(t, sc, "5")
	is.Equal(err, errBotOnTurn)
}

func TestBotVsBot(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := run(t, sc, "new -botx yes -boto yes")
	is.NoErr(err)
	is.Equal(sc.bot.Turn(), 9)
	is.True(strings.Contains(resp.message, "DRAW"))
	is.True(strings.Contains(resp.message, "Type `new` for another game"))

	_, err = run(t, sc, "bot")
	is.Equal(err, game.ErrGameOver)
}

func TestLoadAndWin(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := run(t, sc, "load XX1/OO1/3 x")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "XX1/OO1/3 x"))

	resp, err = run(t, sc, "eval")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "X wins in 1"))

	resp, err = run(t, sc, "3")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "X WINS"))
	is.Equal(sc.bot.Turn(), 1)

	_, err = run(t, sc, "9")
	is.Equal(err, game.ErrGameOver)
	_, err = run(t, sc, "eval")
	is.True(err != nil)

	resp, err = run(t, sc, "position")
	is.NoErr(err)
	is.Equal(resp.message, "XXX/OO1/3 o")

	_, err = run(t, sc, "load XX1/OO1 x")
	is.True(err != nil)
	_, err = run(t, sc, "load")
	is.True(err != nil)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := run(t, sc, "set")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "tiebreak: random"))

	resp, err = run(t, sc, "set boto n")
	is.NoErr(err)
	is.Equal(resp.message, "set boto to false")
	is.True(!sc.bot.BotPlays(sc.bot.PlayerOnTurn().Opponent()))

	resp, err = run(t, sc, "set seed 99")
	is.NoErr(err)
	is.Equal(resp.message, "set seed to 99")
	is.Equal(sc.config.GetUint64(config.ConfigSeed), uint64(99))

	_, err = run(t, sc, "set tiebreak best")
	is.True(err != nil)
	_, err = run(t, sc, "set colour red")
	is.True(err != nil)
	_, err = run(t, sc, "set seed")
	is.True(err != nil)
}

func TestHelpAndUnknown(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	resp, err := run(t, sc, "help")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "autoplay"))

	resp, err = run(t, sc, "help load")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "XX1/OO1/3 x"))

	resp, err = run(t, sc, "help nonsense")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "no help text"))

	_, err = run(t, sc, "frobnicate")
	is.True(err != nil)

	_, err = run(t, sc, "exit")
	is.Equal(err, errQuit)
}

func TestAutoplayAndAnalyze(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	logfile := filepath.Join(t.TempDir(), "games.txt")

	resp, err := run(t, sc, "autoplay -games 8 -threads 2 -logfile "+logfile)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Draws: 8 (100.000%)"))

	resp, err = run(t, sc, "autoplay analyze "+logfile)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Draws: 8 (100.000%)"))

	resp, err = run(t, sc, "autoplay analyze "+logfile+" -yaml true")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "draws: 8"))

	_, err = run(t, sc, "autoplay -games 0")
	is.True(err != nil)
	_, err = run(t, sc, "autoplay -plies 3")
	is.True(err != nil)
	_, err = run(t, sc, "autoplay stop")
	is.True(err != nil)
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "win.lua")
	script := `
tictactoe_set("tiebreak lowest")
tictactoe_load("XX1/OO1/3 x")
local scores = tictactoe_scores()
local bad = tictactoe_play("1")
tictactoe_play("3")
result = {outcome = tictactoe_outcome(), best = scores[3], taken = scores[1] == nil,
          bad = string.sub(bad, 1, 6)}
`
	is.NoErr(os.WriteFile(path, []byte(script), 0644))

	resp, err := run(t, sc, "script "+path)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, `"outcome":"X WINS"`))
	is.True(strings.Contains(resp.message, `"best":999`))
	is.True(strings.Contains(resp.message, `"taken":true`))
	is.True(strings.Contains(resp.message, `"bad":"ERROR:"`))
	is.Equal(sc.bot.ToPosition(), "XXX/OO1/3 o")

	_, err = run(t, sc, "script "+filepath.Join(dir, "missing.lua"))
	is.True(err != nil)
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)
	c := NewShellCompleter(sc)

	matches, n := c.Do([]rune("se"), 2)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("t")})

	line := []rune("set tiebreak ")
	matches, n = c.Do(line, len(line))
	is.Equal(n, 0)
	is.Equal(matches, [][]rune{[]rune("random"), []rune("lowest")})

	_, err := run(t, sc, "load XX1/OO1/3 x")
	is.NoErr(err)
	line = []rune("play ")
	matches, _ = c.Do(line, len(line))
	is.Equal(len(matches), 5)
}
