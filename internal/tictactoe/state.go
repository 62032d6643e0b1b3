package tictactoe

import "github.com/rocketscienceinc/tictactoe-ai/internal/entity"

// State is everything the controller owns about the game in progress.
type State struct {
	Board         entity.Board `json:"board"`
	CurrentPlayer entity.Cell  `json:"current_player"`
	Mode          Mode         `json:"mode"`
	Running       bool         `json:"running"`
	LastMove      entity.Move  `json:"last_move"`
	HasLastMove   bool         `json:"has_last_move"`
}

// NewInitialState - fresh board, PlayerTwo to move, human against the AI.
func NewInitialState() State {
	return State{
		Board:         entity.NewBoard(),
		CurrentPlayer: entity.PlayerTwo,
		Mode:          ModeHumanVsAI,
		Running:       true,
	}
}

// Outcome is the terminal check of the state's board.
func (that State) Outcome() entity.Outcome {
	return that.Board.TerminalOutcome()
}

// IsOver - somebody won or the board is full.
func (that State) IsOver() bool {
	return that.Board.TerminalOutcome().IsWin() || that.Board.IsFull()
}
