package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Mode says who plays the second side.
type Mode uint8

const (
	ModeHumanVsAI Mode = iota
	ModeHumanVsHuman
)

func (that Mode) String() string {
	switch that {
	case ModeHumanVsAI:
		return "ai"
	case ModeHumanVsHuman:
		return "pvp"
	default:
		return fmt.Sprintf("mode(%d)", uint8(that))
	}
}

func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ai":
		return ModeHumanVsAI, nil
	case "pvp":
		return ModeHumanVsHuman, nil
	default:
		return ModeHumanVsAI, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

func (that Mode) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*that = mode

	return nil
}
