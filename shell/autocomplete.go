package shell

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names, options and option values.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"solve": {
		Options: []string{"-algorithm", "-side", "-threads", "-counting", "-evaluator"},
	},
	"gen": {
		Options: []string{"-side"},
	},
	"eval": {
		Options: []string{"-evaluator"},
	},
	"mode": {
		Args: []string{"opening", "game"},
	},
	"set": {
		Args: []string{
			"threads", "evaluator", "node-counting", "side", "eval-cache",
			"eval-cache-memory-fraction", "time-limit",
		},
	},
	"help": {
		Args: []string{"script", "solve"},
	},
}

var commandNames = []string{
	"help", "load", "position", "show", "mode", "gen", "play", "eval",
	"solve", "svg", "set", "script", "exit",
}

// Values for options that take one of a fixed set.
var optionValues = map[string][]string{
	"algorithm": {"minimax", "ab"},
	"side":      {"white", "black"},
	"counting":  {"literal", "uniform"},
	"evaluator": {"standard", "improved"},
}

// Do completes the word under the cursor. It returns the missing suffix of
// each candidate and the length of the word typed so far.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	// A trailing space starts a new, empty word.
	if text == "" || strings.HasSuffix(text, " ") {
		fields = append(fields, "")
	}
	word := fields[len(fields)-1]

	var matches [][]rune
	for _, cand := range c.candidates(fields) {
		if strings.HasPrefix(cand, word) {
			matches = append(matches, []rune(cand[len(word):]))
		}
	}
	return matches, len(word)
}

// candidates lists what may replace the last element of fields.
func (c *ShellCompleter) candidates(fields []string) []string {
	if len(fields) == 1 {
		return commandNames
	}
	cmd, word := fields[0], fields[len(fields)-1]
	if prev := fields[len(fields)-2]; strings.HasPrefix(prev, "-") {
		if vals, ok := optionValues[prev[1:]]; ok {
			return vals
		}
	}
	if cmd == "play" && !strings.HasPrefix(word, "-") {
		plays := []string{"best"}
		for i := range c.sc.curGen {
			plays = append(plays, strconv.Itoa(i+1))
		}
		return plays
	}
	meta := commandMetadata[cmd]
	if strings.HasPrefix(word, "-") || len(meta.Args) == 0 {
		return meta.Options
	}
	return meta.Args
}
