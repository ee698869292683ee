// Package shell is the interactive console: a human plays against the bot,
// or watches it play itself.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/turnplayer"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")
)

type ShellController struct {
	l *readline.Instance
	// out is where messages go when there is no readline instance.
	out io.Writer

	config     *config.Config
	options    *turnplayer.GameOptions
	bot        *turnplayer.BotTurnPlayer
	execPath   string
	gitVersion string

	autoplayCancel context.CancelFunc
	// blocking is set when there is no console to report back to once
	// background work finishes.
	blocking bool
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	opts := &turnplayer.GameOptions{}
	opts.SetDefaults(cfg)
	return &ShellController{
		config:     cfg,
		options:    opts,
		bot:        turnplayer.NewBotTurnPlayer(opts),
		execPath:   execPath,
		gitVersion: gitVersion,
		out:        os.Stderr,
	}
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := newController(cfg, execPath, gitVersion)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtictactoe>\033[0m ",
		HistoryFile:     "/tmp/tictactoe_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

func (sc *ShellController) stderr() io.Writer {
	if sc.l != nil {
		return sc.l.Stderr()
	}
	return sc.out
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its positional arguments and
// its -options. Every option takes exactly one value.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && !isNumber(fields[idx]) {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	log.Debug().Msgf("cmd: %v, args: %v, options: %v", cmd, args, options)
	return &shellcmd{
		cmd:     cmd,
		args:    args,
		options: options,
	}, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		if sig != nil {
			sig <- syscall.SIGINT
		}
		return nil, errQuit
	}
	return sc.dispatch(cmd)
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "play":
		return sc.play(cmd)
	case "bot":
		return sc.botPlay(cmd)
	case "undo":
		return sc.undo(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "eval":
		return sc.eval(cmd)
	case "load":
		return sc.load(cmd)
	case "position":
		return sc.position(cmd)
	case "autoplay":
		if sc.blocking && len(cmd.args) == 0 {
			return sc.autoplaySync(cmd)
		}
		return sc.autoplay(cmd)
	case "set":
		return sc.set(cmd)
	case "script":
		return sc.script(cmd)
	default:
		if looksLikeMove(cmd.cmd) {
			return sc.play(&shellcmd{cmd: "play", args: append([]string{cmd.cmd}, cmd.args...)})
		}
		log.Debug().Msgf("you said: %v", strconv.Quote(cmd.cmd))
		return nil, fmt.Errorf("unrecognized command %q; type help for a list", cmd.cmd)
	}
}

// Execute runs a single line, such as one given on the command line.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	sc.blocking = true
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		if err != errQuit {
			sc.showError(err)
		}
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage(sc.bot.ToDisplayText())
	sc.showMessage(sc.yourTurnText())

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		resp, err := sc.standardModeSwitch(line, sig)
		if err == errQuit {
			break
		}
		if err == errNoData {
			continue
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("shell cleanup")
}
