package engine

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Level selects how the engine picks its move.
type Level uint8

const (
	LevelRandom Level = iota
	LevelMinimax
)

func (that Level) String() string {
	switch that {
	case LevelRandom:
		return "random"
	case LevelMinimax:
		return "minimax"
	default:
		return fmt.Sprintf("level(%d)", uint8(that))
	}
}

// ParseLevel accepts the level name or its key binding ("0" random, "1" minimax).
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "random", "0":
		return LevelRandom, nil
	case "minimax", "1":
		return LevelMinimax, nil
	default:
		return LevelRandom, fmt.Errorf("%w: %q", apperror.ErrUnknownLevel, value)
	}
}

func (that Level) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*that = level

	return nil
}
