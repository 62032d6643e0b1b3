package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type CommandKind uint8

const (
	CommandMove CommandKind = iota + 1
	CommandToggleMode
	CommandSetLevel
	CommandReset
	CommandQuit
)

type Command struct {
	Kind  CommandKind
	Move  entity.Move
	Level engine.Level
}

// ParseCommand - parses one input line.
// Keys: g toggles the mode, 0 and 1 pick the AI level, r resets, q quits.
// A move is two 0-based numbers, "row col" or "row,col".
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)

	switch strings.ToLower(line) {
	case "g":
		return Command{Kind: CommandToggleMode}, nil
	case "0":
		return Command{Kind: CommandSetLevel, Level: engine.LevelRandom}, nil
	case "1":
		return Command{Kind: CommandSetLevel, Level: engine.LevelMinimax}, nil
	case "r":
		return Command{Kind: CommandReset}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: bad row %q", apperror.ErrUnknownCommand, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: bad column %q", apperror.ErrUnknownCommand, fields[1])
	}

	return Command{Kind: CommandMove, Move: entity.Move{Row: row, Col: col}}, nil
}
