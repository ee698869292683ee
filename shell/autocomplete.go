package shell

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string // Available options for this command (e.g., "-games", "-threads")
	Args    []string // Possible argument values (for non-option arguments)
}

var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-botx", "-boto"},
	},
	"autoplay": {
		Options: []string{"-games", "-threads", "-logfile", "-yaml"},
		Args:    []string{"stop", "analyze"},
	},
	"set": {
		Args: []string{"tiebreak", "botx", "boto", "seed"},
	},
	"help": {
		Args: []string{"new", "play", "eval", "load", "autoplay", "set", "script"},
	},
}

// Common command names for command completion
var commandNames = []string{
	"help", "new", "play", "bot", "undo", "show", "s", "eval", "load",
	"position", "autoplay", "set", "script", "exit", "bye",
}

var boolValues = []string{"true", "false"}
var yesNoValues = []string{"yes", "no"}
var tiebreakValues = []string{"random", "lowest"}

// emptySquares lists the squares that can still be played, for completing
// the argument of play.
func (c *ShellCompleter) emptySquares() []string {
	var squares []string
	for _, m := range c.sc.bot.Board().LegalMoves() {
		squares = append(squares, strconv.Itoa(m+1))
	}
	return squares
}

// Do implements the readline.AutoComplete interface
// It provides context-aware autocomplete based on what's been typed
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Get the text up to the cursor position
	text := string(line[:pos])

	// Parse the line using shellquote to handle quoted strings properly
	fields, err := shellquote.Split(text)
	if err != nil {
		// If we can't parse, fall back to simple space splitting
		fields = strings.Fields(text)
	}

	// Check if we're in the middle of typing a word or just after a space
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]

		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if strings.HasPrefix(lastCompleteField, "-") {
			switch strings.TrimPrefix(lastCompleteField, "-") {
			case "botx", "boto":
				completions = yesNoValues
			case "yaml":
				completions = boolValues
			}
		}

		// set takes a value after the setting's name
		if cmdName == "set" && completions == nil && lastCompleteField != cmdName {
			switch lastCompleteField {
			case "tiebreak":
				completions = tiebreakValues
			case "botx", "boto":
				completions = yesNoValues
			}
			if completions == nil {
				return nil, 0
			}
		}

		if cmdName == "play" && completions == nil {
			completions = c.emptySquares()
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	// Filter completions based on prefix
	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			// Return only the part that needs to be added
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}
