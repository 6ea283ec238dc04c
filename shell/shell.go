// Package shell is an interactive REPL for exploring positions: load a
// board, list successors, evaluate and search.
package shell

import (
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

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/config"
	"github.com/domino14/morris/movegen"
	"github.com/domino14/morris/solver"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("wrong format for option")
	errNoPosition        = errors.New("please load a position first with the `load` or `position` command")
	errUnknownCommand    = errors.New("unknown command; try `help`")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	pos        *board.Position
	mode       movegen.Mode
	curGen     []board.Position
	lastResult *solver.Result
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

func NewShellController(cfg *config.Config) *ShellController {
	sc := &ShellController{cfg: cfg, mode: movegen.Opening}
	prompt := "morris"
	l, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("\033[31m%s>\033[0m ", prompt),
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

// extractFields splits a line into a command, its positional arguments
// and its -option value pairs. Quoting follows shell rules.
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
	options := map[string]string{}
	for idx := 1; idx < len(fields); idx++ {
		f := fields[idx]
		if strings.HasPrefix(f, "-") && len(f) > 1 {
			if _, err := strconv.Atoi(f); err == nil {
				// A negative number is an argument, not an option.
				args = append(args, f)
				continue
			}
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[f[1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, f)
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// standardModeSwitch dispatches a parsed command. exit is handled by the
// caller.
func (sc *ShellController) standardModeSwitch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "position", "pos":
		return sc.position(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "mode":
		return sc.setMode(cmd)
	case "gen":
		return sc.generate(cmd)
	case "play":
		return sc.play(cmd)
	case "eval":
		return sc.eval(cmd)
	case "solve":
		return sc.solve(cmd)
	case "svg":
		return sc.svg(cmd)
	case "set":
		return sc.set(cmd)
	case "script":
		return sc.script(cmd)
	}
	log.Debug().Msgf("you said: %v", strconv.Quote(cmd.cmd))
	return nil, errUnknownCommand
}

// Execute runs one line. It returns true if the shell should exit.
func (sc *ShellController) Execute(line string) (*Response, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false, nil
	}
	cmd, err := extractFields(line)
	if err != nil {
		return nil, false, err
	}
	if cmd.cmd == "exit" || cmd.cmd == "quit" {
		return nil, true, nil
	}
	resp, err := sc.standardModeSwitch(cmd)
	return resp, false, err
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

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
		resp, exit, err := sc.Execute(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
		if exit {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
