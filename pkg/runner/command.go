package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandKind classifies a parsed input line.
type CommandKind int

const (
	CommandEmpty CommandKind = iota
	CommandActivate
	CommandSetActor
	CommandList
	CommandQuit
)

// Command is a parsed input line.
type Command struct {
	Kind   CommandKind
	Number int    // CommandActivate
	Actor  string // CommandSetActor
}

// ErrUnknownCommand is returned by ParseCommand for unrecognized input.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand interprets one line of user input.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: CommandEmpty}, nil
	}

	switch strings.ToLower(line) {
	case "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	case "list":
		return Command{Kind: CommandList}, nil
	}

	if rest, ok := cutPrefixFold(line, "as "); ok {
		actor := strings.TrimSpace(rest)
		if actor == "" {
			return Command{}, fmt.Errorf("%w: missing actor after 'as'", ErrUnknownCommand)
		}
		return Command{Kind: CommandSetActor, Actor: actor}, nil
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	return Command{Kind: CommandActivate, Number: n}, nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
