package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/automatic"
	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/game"
	"github.com/domino14/tictactoe/move"
	"github.com/domino14/tictactoe/notation"
	"github.com/domino14/tictactoe/turnplayer"
)

var errBotOnTurn = errors.New("it is the bot's turn; type `bot` to let it move")

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func (c CmdOptions) StringArray(key string) []string {
	return c[key]
}

func msg(message string) *Response {
	return &Response{message: message}
}

func looksLikeMove(s string) bool {
	_, err := move.FromString(s)
	return err == nil
}

// yourTurnText tells the person at the console what happens next.
func (sc *ShellController) yourTurnText() string {
	switch {
	case !sc.bot.IsPlaying():
		return fmt.Sprintf("Game over: %v. Type `new` for another game.", sc.bot.Outcome())
	case sc.bot.BotOnTurn():
		return fmt.Sprintf("%v (bot) to move. Type `bot` to let it move.", sc.bot.PlayerOnTurn())
	default:
		return fmt.Sprintf("%v to move. Enter a square: 1-9, or a3 through c1.", sc.bot.PlayerOnTurn())
	}
}

func (sc *ShellController) gameText() string {
	return sc.bot.ToDisplayText() + "\n\n" + sc.yourTurnText()
}

// botReplies lets the bot move for as long as it holds the seat on turn.
func (sc *ShellController) botReplies() error {
	for sc.bot.BotOnTurn() {
		if _, err := sc.bot.PlayBestMove(); err != nil {
			return err
		}
	}
	return nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	for opt := range cmd.options {
		switch opt {
		case "botx", "boto":
			if err := sc.options.SetBot(opt, cmd.options.String(opt)); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("option " + opt + " not recognized")
		}
	}
	sc.bot.SetPicker(sc.options.Picker())
	sc.bot.SetBotPlayers(sc.options.BotPlaysX, sc.options.BotPlaysO)
	sc.bot.StartGame()
	if err := sc.botReplies(); err != nil {
		return nil, err
	}
	return msg(sc.gameText()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if !sc.bot.IsPlaying() {
		return nil, game.ErrGameOver
	}
	if sc.bot.BotOnTurn() {
		return nil, errBotOnTurn
	}
	if _, err := sc.bot.PlayUserMove(cmd.args); err != nil {
		return nil, err
	}
	if err := sc.botReplies(); err != nil {
		return nil, err
	}
	return msg(sc.gameText()), nil
}

// botPlay has the bot move for the side on turn, whoever holds that seat.
func (sc *ShellController) botPlay(cmd *shellcmd) (*Response, error) {
	if !sc.bot.IsPlaying() {
		return nil, game.ErrGameOver
	}
	if _, err := sc.bot.PlayBestMove(); err != nil {
		return nil, err
	}
	if err := sc.botReplies(); err != nil {
		return nil, err
	}
	return msg(sc.gameText()), nil
}

// undo takes back the last move. Against the bot it also takes back the
// bot's reply, so the person is on turn again.
func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if err := sc.bot.UnplayLastMove(); err != nil {
		return nil, err
	}
	bothBots := sc.options.BotPlaysX && sc.options.BotPlaysO
	if sc.bot.BotOnTurn() && !bothBots {
		if err := sc.bot.UnplayLastMove(); err != nil && err != game.ErrNothingToUndo {
			return nil, err
		}
	}
	return msg(sc.gameText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.bot.ToDisplayText() + "\n\nSquares:\n" + sc.bot.Board().ToGuideText()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	res, err := sc.bot.Evaluate()
	if err != nil {
		return nil, err
	}
	return msg(res.ToDisplayText()), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need a position, for example: load XX1/OO1/3 x")
	}
	b, err := notation.Parse(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	g := game.NewFromPosition(b)
	g.SetBotPlayers(sc.options.BotPlaysX, sc.options.BotPlaysO)
	sc.bot.SetGame(g)
	log.Debug().Str("position", notation.Format(b)).Msg("loaded-position")
	return msg(sc.gameText()), nil
}

func (sc *ShellController) position(cmd *shellcmd) (*Response, error) {
	return msg(sc.bot.ToPosition()), nil
}

type autoplayParams struct {
	games   int
	threads int
	logfile string
	yaml    bool
}

func (sc *ShellController) autoplayPrepare(cmd *shellcmd) (*autoplayParams, error) {
	params := &autoplayParams{
		games:   sc.config.GetInt(config.ConfigAutoplayGames),
		threads: sc.config.GetInt(config.ConfigAutoplayThreads),
		logfile: sc.config.GetString(config.ConfigAutoplayLogfile),
	}
	var err error
	for opt := range cmd.options {
		switch opt {
		case "games":
			params.games, err = cmd.options.Int(opt)
		case "threads":
			params.threads, err = cmd.options.Int(opt)
		case "logfile":
			params.logfile = cmd.options.String(opt)
		case "yaml":
			params.yaml = cmd.options.Bool(opt)
		default:
			return nil, errors.New("option " + opt + " not recognized")
		}
		if err != nil {
			return nil, err
		}
	}
	if params.games < 1 {
		return nil, errors.New("games must be at least 1")
	}
	return params, nil
}

func (sc *ShellController) autoplayRunSync(ctx context.Context, params *autoplayParams) (string, error) {
	var w io.Writer
	if params.logfile != "" {
		f, err := os.Create(params.logfile)
		if err != nil {
			return "", err
		}
		defer f.Close()
		w = f
	}
	summary, err := automatic.StartCompVComp(ctx, sc.config, params.games, params.threads, w)
	if err != nil {
		return "", err
	}
	if params.yaml {
		return summary.ToYAML()
	}
	return summary.ToDisplayText(), nil
}

func (sc *ShellController) autoplayAnalyze(cmd *shellcmd) (*Response, error) {
	path := sc.config.GetString(config.ConfigAutoplayLogfile)
	if len(cmd.args) > 1 {
		path = cmd.args[1]
	}
	summary, err := automatic.AnalyzeLogFile(path)
	if err != nil {
		return nil, err
	}
	if cmd.options.Bool("yaml") {
		out, err := summary.ToYAML()
		if err != nil {
			return nil, err
		}
		return msg(out), nil
	}
	return msg(summary.ToDisplayText()), nil
}

// autoplay runs bot-vs-bot games in the background.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		switch cmd.args[0] {
		case "stop":
			if sc.autoplayCancel == nil {
				return nil, errors.New("no games are being played")
			}
			sc.autoplayCancel()
			return msg("stopping; the summary follows once the running games finish"), nil
		case "analyze":
			return sc.autoplayAnalyze(cmd)
		default:
			return nil, errors.New("don't recognize " + cmd.args[0])
		}
	}
	if automatic.IsPlaying.Value() > 0 {
		return nil, automatic.ErrAlreadyPlaying
	}
	params, err := sc.autoplayPrepare(cmd)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	sc.autoplayCancel = cancel

	go func() {
		defer cancel()
		result, err := sc.autoplayRunSync(ctx, params)
		if err != nil {
			sc.showError(err)
			return
		}
		sc.showMessage(result)
		log.Debug().Msg("autoplay thread exiting...")
	}()
	return msg(fmt.Sprintf("Playing %d games; type `autoplay stop` to stop early.", params.games)), nil
}

func (sc *ShellController) autoplaySync(cmd *shellcmd) (*Response, error) {
	params, err := sc.autoplayPrepare(cmd)
	if err != nil {
		return nil, err
	}
	result, err := sc.autoplayRunSync(context.Background(), params)
	if err != nil {
		return nil, err
	}
	return msg(result), nil
}

func (sc *ShellController) settingsText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tiebreak: %v\n", sc.options.Tiebreak)
	fmt.Fprintf(&b, "botx:     %v\n", sc.options.BotPlaysX)
	fmt.Fprintf(&b, "boto:     %v\n", sc.options.BotPlaysO)
	fmt.Fprintf(&b, "seed:     %v", sc.options.Seed)
	return b.String()
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.settingsText()), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <tiebreak|botx|boto|seed> <value>")
	}
	opt, value := cmd.args[0], cmd.args[1]
	switch opt {
	case "tiebreak":
		if err := sc.options.SetTiebreak(value); err != nil {
			return nil, err
		}
		sc.config.Set(config.ConfigTiebreak, sc.options.Tiebreak)
		sc.bot.SetPicker(sc.options.Picker())
		value = sc.options.Tiebreak
	case "seed":
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed must be a non-negative integer: %w", err)
		}
		sc.options.Seed = seed
		sc.config.Set(config.ConfigSeed, seed)
		sc.bot.SetPicker(sc.options.Picker())
	case "botx", "boto":
		if err := sc.options.SetBot(opt, value); err != nil {
			return nil, err
		}
		sc.bot.SetBotPlayers(sc.options.BotPlaysX, sc.options.BotPlaysO)
		v, _ := turnplayer.ParseBool(value)
		value = strconv.FormatBool(v)
	default:
		return nil, fmt.Errorf("unknown setting %v; valid options: tiebreak, botx, boto, seed", opt)
	}
	return msg("set " + opt + " to " + value), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	} else {
		helptopic := cmd.args[0]
		return usageTopic(helptopic)
	}
}
