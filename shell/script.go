package shell

import (
	"errors"
	"net/http"
	"time"

	"github.com/cjoudrey/gluahttp"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("morris_shell")
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

// luaCommand exposes a shell command to Lua. The single string argument
// is parsed like the rest of a shell line.
func luaCommand(name string, fn func(*ShellController, *shellcmd) (*Response, error)) lua.LGFunction {
	return func(L *lua.LState) int {
		line := name
		if L.GetTop() > 0 {
			line += " " + L.ToString(1)
		}
		sc := getShell(L)
		cmd, err := extractFields(line)
		if err != nil {
			log.Err(err).Str("command", name).Msg("error-parsing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		r, err := fn(sc, cmd)
		if err != nil {
			log.Err(err).Str("command", name).Msg("error-executing-script-command")
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		if r == nil {
			L.Push(lua.LString(""))
			return 1
		}
		// return number of results pushed to stack.
		L.Push(lua.LString(r.message))
		return 1
	}
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("need arguments for script")
	}
	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	L.PreloadModule("http", gluahttp.NewHttpModule(&http.Client{Timeout: 30 * time.Second}).Loader)
	luajson.Preload(L)

	lsc := L.NewUserData()
	lsc.Value = sc
	L.SetGlobal("morris_shell", lsc)

	L.SetGlobal("morris_position", L.NewFunction(luaCommand("position", (*ShellController).position)))
	L.SetGlobal("morris_load", L.NewFunction(luaCommand("load", (*ShellController).load)))
	L.SetGlobal("morris_mode", L.NewFunction(luaCommand("mode", (*ShellController).setMode)))
	L.SetGlobal("morris_gen", L.NewFunction(luaCommand("gen", (*ShellController).generate)))
	L.SetGlobal("morris_eval", L.NewFunction(luaCommand("eval", (*ShellController).eval)))
	L.SetGlobal("morris_solve", L.NewFunction(luaCommand("solve", (*ShellController).solve)))
	L.SetGlobal("morris_set", L.NewFunction(luaCommand("set", (*ShellController).set)))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg(""), nil
}
