package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type moveSearcher interface {
	Side() entity.Cell
	Level() engine.Level
	SetLevel(level engine.Level)
	Evaluate(board entity.Board) (engine.Evaluation, error)
}

// Turn describes one applied move, for whoever draws the board.
type Turn struct {
	Move    entity.Move
	Player  entity.Cell
	Outcome entity.Outcome
	Over    bool
}

type GameController struct {
	logger       *slog.Logger
	searcher     moveSearcher
	defaultLevel engine.Level
	defaultMode  Mode
	state        State
}

// NewGameController - mode and the searcher's current level are what Reset returns to.
func NewGameController(logger *slog.Logger, searcher moveSearcher, mode Mode) *GameController {
	controller := &GameController{
		logger:       logger.With("component", "game_controller"),
		searcher:     searcher,
		defaultLevel: searcher.Level(),
		defaultMode:  mode,
	}
	controller.state = controller.newState()

	return controller
}

// ApplyMove - marks the cell for the current player and passes the turn.
func (that *GameController) ApplyMove(row, col int) (Turn, error) {
	if !that.state.Running {
		return Turn{}, apperror.ErrGameFinished
	}

	player := that.state.CurrentPlayer
	if err := that.state.Board.Mark(row, col, player); err != nil {
		return Turn{}, fmt.Errorf("invalid turn: %w", err)
	}

	that.state.LastMove = entity.Move{Row: row, Col: col}
	that.state.HasLastMove = true
	that.state.CurrentPlayer = toggleMark(player)

	turn := Turn{
		Move:    that.state.LastMove,
		Player:  player,
		Outcome: that.state.Outcome(),
		Over:    that.updateGameStatus(),
	}

	if turn.Over {
		that.logger.Info("game over",
			"winner", turn.Outcome.Winner.String(),
			"line", turn.Outcome.Line.Kind.String(),
			"index", turn.Outcome.Line.Index,
			"draw", !turn.Outcome.IsWin(),
		)
	}

	return turn, nil
}

// PlayAITurn - lets the engine choose and apply a move when it is its turn.
func (that *GameController) PlayAITurn() (Turn, engine.Evaluation, error) {
	if !that.state.Running {
		return Turn{}, engine.Evaluation{}, apperror.ErrGameFinished
	}

	if !that.IsAITurn() {
		return Turn{}, engine.Evaluation{}, apperror.ErrNotAITurn
	}

	evaluation, err := that.searcher.Evaluate(that.state.Board)
	if err != nil {
		return Turn{}, engine.Evaluation{}, fmt.Errorf("failed to choose a move: %w", err)
	}

	turn, err := that.ApplyMove(evaluation.Move.Row, evaluation.Move.Col)
	if err != nil {
		return Turn{}, evaluation, fmt.Errorf("failed to apply AI move: %w", err)
	}

	return turn, evaluation, nil
}

// IsAITurn - the game runs against the AI and the AI's side is to move.
func (that *GameController) IsAITurn() bool {
	return that.state.Running &&
		that.state.Mode == ModeHumanVsAI &&
		that.state.CurrentPlayer == that.searcher.Side()
}

func (that *GameController) ToggleMode() Mode {
	if that.state.Mode == ModeHumanVsAI {
		that.state.Mode = ModeHumanVsHuman
	} else {
		that.state.Mode = ModeHumanVsAI
	}

	return that.state.Mode
}

func (that *GameController) Mode() Mode {
	return that.state.Mode
}

func (that *GameController) SetLevel(level engine.Level) {
	that.searcher.SetLevel(level)
}

func (that *GameController) Level() engine.Level {
	return that.searcher.Level()
}

func (that *GameController) AISide() entity.Cell {
	return that.searcher.Side()
}

// Reset - throws the game away and starts from the initial state,
// including the configured mode and search level.
func (that *GameController) Reset() {
	that.state = that.newState()
	that.searcher.SetLevel(that.defaultLevel)
}

// Restore - continues a previously saved game. A state that cannot be
// played on is rejected and the current game is kept.
func (that *GameController) Restore(state State, level engine.Level) error {
	if !state.CurrentPlayer.IsPlayer() {
		return fmt.Errorf("%w: no player to move", apperror.ErrInvalidSnapshot)
	}

	if state.Mode != ModeHumanVsAI && state.Mode != ModeHumanVsHuman {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidSnapshot, state.Mode)
	}

	if level != engine.LevelRandom && level != engine.LevelMinimax {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidSnapshot, level)
	}

	if state.HasLastMove && !state.LastMove.InRange() {
		return fmt.Errorf("%w: last move %s", apperror.ErrInvalidSnapshot, state.LastMove)
	}

	state.Running = !state.IsOver()

	that.state = state
	that.searcher.SetLevel(level)

	return nil
}

func (that *GameController) IsOver() bool {
	return that.state.IsOver()
}

func (that *GameController) IsRunning() bool {
	return that.state.Running
}

func (that *GameController) Outcome() entity.Outcome {
	return that.state.Outcome()
}

// State returns a copy; changing it does not affect the game.
func (that *GameController) State() State {
	return that.state
}

// updateGameStatus - stops the game once it is over and reports whether it is.
func (that *GameController) updateGameStatus() bool {
	if that.state.IsOver() {
		that.state.Running = false
		return true
	}

	return false
}

func (that *GameController) newState() State {
	state := NewInitialState()
	state.Mode = that.defaultMode

	return state
}

func toggleMark(current entity.Cell) entity.Cell {
	return current.Opponent()
}
