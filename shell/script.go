package shell

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	json "layeh.com/gopher-json"

	"github.com/domino14/tictactoe/board"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("tictactoe_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

type handler func(*ShellController, *shellcmd) (*Response, error)

// command wraps a shell command so that a script can call it with a single
// string holding the rest of the line. It returns the message, or the error
// prefixed with ERROR:.
func command(name string, h handler) lua.LGFunction {
	return func(L *lua.LState) int {
		line := strings.TrimSpace(name + " " + L.OptString(1, ""))
		sc := getShell(L)
		cmd, err := extractFields(line)
		if err != nil {
			log.Err(err).Msg("error-parsing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		r, err := h(sc, cmd)
		if err != nil {
			log.Err(err).Msg("error-executing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		if r == nil {
			L.Push(lua.LString(""))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

func Position(L *lua.LState) int {
	sc := getShell(L)
	L.Push(lua.LString(sc.bot.ToPosition()))
	return 1
}

func Outcome(L *lua.LState) int {
	sc := getShell(L)
	L.Push(lua.LString(sc.bot.Outcome().String()))
	return 1
}

// Scores returns a table from square number (1-9) to the score of that
// square for the side to move, or nil and a message if the game is over.
func Scores(L *lua.LState) int {
	sc := getShell(L)
	res, err := sc.bot.Evaluate()
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	t := L.NewTable()
	for m := 0; m < board.NumSquares; m++ {
		if res.Legal[m] {
			t.RawSetInt(m+1, lua.LNumber(res.Score(m)))
		}
	}
	L.Push(t)
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	json.Preload(L)
	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{}).Loader)

	lsc := L.NewUserData()
	lsc.Value = sc

	wasBlocking := sc.blocking
	sc.blocking = true
	defer func() { sc.blocking = wasBlocking }()

	L.SetGlobal("tictactoe_shell", lsc)
	L.SetGlobal("tictactoe_new", L.NewFunction(command("new", (*ShellController).newGame)))
	L.SetGlobal("tictactoe_play", L.NewFunction(command("play", (*ShellController).play)))
	L.SetGlobal("tictactoe_bot", L.NewFunction(command("bot", (*ShellController).botPlay)))
	L.SetGlobal("tictactoe_undo", L.NewFunction(command("undo", (*ShellController).undo)))
	L.SetGlobal("tictactoe_eval", L.NewFunction(command("eval", (*ShellController).eval)))
	L.SetGlobal("tictactoe_load", L.NewFunction(command("load", (*ShellController).load)))
	L.SetGlobal("tictactoe_show", L.NewFunction(command("show", (*ShellController).show)))
	L.SetGlobal("tictactoe_set", L.NewFunction(command("set", (*ShellController).set)))
	L.SetGlobal("tictactoe_autoplay", L.NewFunction(command("autoplay", (*ShellController).autoplaySync)))
	L.SetGlobal("tictactoe_position", L.NewFunction(Position))
	L.SetGlobal("tictactoe_outcome", L.NewFunction(Outcome))
	L.SetGlobal("tictactoe_scores", L.NewFunction(Scores))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return scriptResult(L.GetGlobal("result"))
}

// scriptResult turns the script's result global into a message. Tables are
// printed as JSON.
func scriptResult(lv lua.LValue) (*Response, error) {
	if lv == lua.LNil {
		return nil, nil
	}
	switch v := lv.(type) {
	case *lua.LTable:
		data, err := json.Encode(v)
		if err != nil {
			return nil, err
		}
		return msg(string(data)), nil
	default:
		return msg(lv.String()), nil
	}
}
