package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	Rows      = 3
	Cols      = 3
	CellCount = Rows * Cols
)

// Move is a cell coordinate, row first.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Rows && that.Col >= 0 && that.Col < Cols
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is the 3x3 grid plus the number of filled cells. It is a plain value:
// assigning a Board copies the whole grid, so a copy can be marked without
// touching the original.
type Board struct {
	cells  [Rows][Cols]Cell
	filled int
}

func NewBoard() Board {
	return Board{}
}

// NewBoardFromCells - builds a board from a grid, counting the filled cells.
func NewBoardFromCells(grid [Rows][Cols]Cell) (Board, error) {
	board := Board{}

	for row := range Rows {
		for col := range Cols {
			cell := grid[row][col]
			switch {
			case cell == EmptyCell:
				continue
			case cell.IsPlayer():
				board.cells[row][col] = cell
				board.filled++
			default:
				return Board{}, fmt.Errorf("%w: %d at %s", apperror.ErrUnknownCell, cell, Move{row, col})
			}
		}
	}

	return board, nil
}

// Mark - puts the player's mark on an empty in-range cell.
func (that *Board) Mark(row, col int, player Cell) error {
	move := Move{Row: row, Col: col}

	if !move.InRange() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: cell %s cannot be marked as empty", apperror.ErrInvalidMove, move)
	}

	if that.cells[row][col] != EmptyCell {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	that.cells[row][col] = player
	that.filled++

	return nil
}

// IsCellEmpty reports false for out-of-range coordinates.
func (that Board) IsCellEmpty(row, col int) bool {
	if !(Move{Row: row, Col: col}).InRange() {
		return false
	}

	return that.cells[row][col] == EmptyCell
}

func (that Board) Cell(row, col int) Cell {
	if !(Move{Row: row, Col: col}).InRange() {
		return EmptyCell
	}

	return that.cells[row][col]
}

// Cells returns a copy of the grid.
func (that Board) Cells() [Rows][Cols]Cell {
	return that.cells
}

func (that Board) Filled() int {
	return that.filled
}

// EmptyCells - returns the empty cells in row-major order.
func (that Board) EmptyCells() []Move {
	moves := make([]Move, 0, CellCount-that.filled)

	for row := range Rows {
		for col := range Cols {
			if that.cells[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that Board) IsFull() bool {
	return that.filled == CellCount
}

func (that Board) IsEmpty() bool {
	return that.filled == 0
}

// TerminalOutcome - returns the first complete line of three equal marks.
// A zero Outcome is returned when nobody has won, whether or not the board is full.
func (that Board) TerminalOutcome() Outcome {
	for _, line := range winLines {
		cells := line.Cells()
		first := that.cells[cells[0].Row][cells[0].Col]

		if first == EmptyCell {
			continue
		}

		if first == that.cells[cells[1].Row][cells[1].Col] && first == that.cells[cells[2].Row][cells[2].Col] {
			return Outcome{Winner: first, Line: line}
		}
	}

	return Outcome{}
}

// IsDraw - the board is full and no line is complete.
func (that Board) IsDraw() bool {
	return that.IsFull() && !that.TerminalOutcome().IsWin()
}

func (that Board) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(that.cells)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}

	return data, nil
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var grid [Rows][Cols]Cell
	if err := json.Unmarshal(data, &grid); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := NewBoardFromCells(grid)
	if err != nil {
		return err
	}

	*that = board

	return nil
}
