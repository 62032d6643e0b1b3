package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Cell is the content of one square: empty or the mark of one of the two sides.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerOne
	PlayerTwo
)

const (
	markEmpty = ""
	markOne   = "X"
	markTwo   = "O"
)

func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return markOne
	case PlayerTwo:
		return markTwo
	default:
		return markEmpty
	}
}

// Opponent returns the other side. EmptyCell has no opponent and is returned as is.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return EmptyCell
	}
}

func (that Cell) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// ParseCell - parses a side mark ("X" or "O").
func ParseCell(mark string) (Cell, error) {
	switch mark {
	case markOne, "x", "1":
		return PlayerOne, nil
	case markTwo, "o", "2":
		return PlayerTwo, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownCell, mark)
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = EmptyCell
		return nil
	}

	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}
