package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotAITurn        = errors.New("it's not the AI's turn")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSnapshot  = errors.New("invalid session snapshot")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrUnknownLevel     = errors.New("unknown search level")
	ErrUnknownCell      = errors.New("unknown cell value")
)
