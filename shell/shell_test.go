package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/config"
	"github.com/domino14/morris/movegen"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"solve -algorithm minimax",
			&shellcmd{"solve", nil, map[string]string{"algorithm": "minimax"}},
			nil},
		{"mode game",
			&shellcmd{"mode", []string{"game"}, map[string]string{}},
			nil},
		{"solve 4 -side black -threads 2 ",
			&shellcmd{"solve",
				[]string{"4"},
				map[string]string{"side": "black", "threads": "2"}},
			nil,
		},
		{"set time-limit -1",
			&shellcmd{"set", []string{"time-limit", "-1"}, map[string]string{}},
			nil},
		{"load 'my boards/board1.txt'",
			&shellcmd{"load", []string{"my boards/board1.txt"}, map[string]string{}},
			nil},
		{"solve 4 -side",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func newTestController() *ShellController {
	return &ShellController{cfg: config.DefaultConfig(), mode: movegen.Opening}
}

func TestGenAndPlay(t *testing.T) {
	is := is.New(t)
	sc := newTestController()

	_, _, err := sc.Execute("gen")
	is.Equal(err, errNoPosition)

	_, _, err = sc.Execute("position " + board.EmptyBoard)
	is.NoErr(err)
	resp, _, err := sc.Execute("gen")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "23 successors for W (opening)"))
	is.Equal(len(sc.curGen), 23)

	_, _, err = sc.Execute("play 3")
	is.NoErr(err)
	is.Equal(sc.pos.String(), "xxWxxxxxxxxxxxxxxxxxxxx")

	_, _, err = sc.Execute("play 3")
	is.True(err != nil) // gen results are cleared by a new position

	resp, _, err = sc.Execute("gen -side black")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "22 successors for B"))
}

func TestSolveAndEval(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	_, _, err := sc.Execute("position " + board.EmptyBoard)
	is.NoErr(err)

	resp, _, err := sc.Execute("solve 2 -algorithm minimax")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message,
		"Board Position: Wxxxxxxxxxxxxxxxxxxxxxx\n"+
			"Positions evaluated by static estimation: 1012.\n"+
			"MINIMAX estimate: 0.\n"))

	_, _, err = sc.Execute("play best")
	is.NoErr(err)
	resp, _, err = sc.Execute("eval")
	is.NoErr(err)
	is.Equal(resp.message, "OpeningCalculator: 1")

	_, _, err = sc.Execute("mode game")
	is.NoErr(err)
	_, _, err = sc.Execute("position " + board.BlackDown)
	is.NoErr(err)
	resp, _, err = sc.Execute("solve 1 -threads 2")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "MINIMAX estimate: 10000."))
	is.True(strings.Contains(resp.message, "alphabeta, depth 1"))

	_, _, err = sc.Execute("solve 1 -counting sometimes")
	is.True(err != nil)
}

func TestSetHelpExit(t *testing.T) {
	is := is.New(t)
	sc := newTestController()

	_, _, err := sc.Execute("set threads 3")
	is.NoErr(err)
	is.Equal(sc.cfg.GetInt(config.ConfigThreads), 3)
	_, _, err = sc.Execute("set no-such-key 3")
	is.True(err != nil)

	resp, _, err := sc.Execute("help")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "solve [depth]"))
	_, _, err = sc.Execute("help nothing")
	is.True(err != nil)

	_, exit, err := sc.Execute("exit")
	is.NoErr(err)
	is.True(exit)

	_, exit, err = sc.Execute("frobnicate")
	is.Equal(err, errUnknownCommand)
	is.True(!exit)
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	dir := t.TempDir()
	script := filepath.Join(dir, "test.lua")
	is.NoErr(os.WriteFile(script, []byte(`
local json = require("json")
local doc = json.decode('{"board": "`+board.MillThreat+`"}')
morris_position(doc.board)
morris_set("evaluator improved")
local out = morris_solve("1 -algorithm ab")
if string.find(out, "ERROR") then
  error(out)
end
`), 0644))

	_, _, err := sc.Execute("script " + script)
	is.NoErr(err)
	is.Equal(sc.pos.String(), board.MillThreat)
	is.Equal(sc.cfg.GetString(config.ConfigEvaluator), "improved")
	is.True(sc.lastResult != nil)
}

func TestAutocomplete(t *testing.T) {
	is := is.New(t)
	sc := newTestController()
	c := NewShellCompleter(sc)

	matches, n := c.Do([]rune("sol"), 3)
	is.Equal(n, 3)
	is.Equal(matches, [][]rune{[]rune("ve")})

	line := "solve 3 -algorithm "
	matches, n = c.Do([]rune(line), len(line))
	is.Equal(n, 0)
	is.Equal(matches, [][]rune{[]rune("minimax"), []rune("ab")})
}
