package processor

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/vending/pkg/types"
)

// Command is one entry of the fixed command set.
type Command string

// Commands and the tokens that select them.
const (
	CommandAdd         Command = "1"
	CommandRemove      Command = "2"
	CommandFilterAbove Command = "3"
	CommandListAll     Command = "4"
	CommandSeed        Command = "seed"
	CommandQuit        Command = "0"
)

// commands is the complete token set. It is not extensible at runtime.
var commands = map[string]Command{
	string(CommandAdd):         CommandAdd,
	string(CommandRemove):      CommandRemove,
	string(CommandFilterAbove): CommandFilterAbove,
	string(CommandListAll):     CommandListAll,
	string(CommandSeed):        CommandSeed,
	string(CommandQuit):        CommandQuit,
}

// String names the command for logs.
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "add"
	case CommandRemove:
		return "remove"
	case CommandFilterAbove:
		return "filter-above"
	case CommandListAll:
		return "list-all"
	case CommandSeed:
		return "seed"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseCommand maps a token to its command. Surrounding whitespace is
// ignored. An unknown token yields a *types.UnrecognizedCommandError whose
// Numeric flag records whether the token was an integer.
func ParseCommand(token string) (Command, error) {
	token = strings.TrimSpace(token)
	if cmd, ok := commands[token]; ok {
		return cmd, nil
	}
	_, err := strconv.Atoi(token)
	return "", &types.UnrecognizedCommandError{Token: token, Numeric: err == nil}
}
