package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type sessionRepo interface {
	Save(ctx context.Context, snapshot tictactoe.Snapshot) error
	GetByID(ctx context.Context, id string) (tictactoe.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

// View is what the renderer needs to draw the current game.
type View struct {
	SessionID string
	State     tictactoe.State
	Outcome   entity.Outcome
	Level     engine.Level
	AISide    entity.Cell
	Over      bool
}

// GameSession runs one game through the controller and keeps a snapshot of
// it until the game is over, so an interrupted game can be resumed.
type GameSession struct {
	logger      *slog.Logger
	controller  *tictactoe.GameController
	sessionRepo sessionRepo
	id          string
}

func NewGameSession(logger *slog.Logger, controller *tictactoe.GameController, sessionRepo sessionRepo, id string) *GameSession {
	return &GameSession{
		logger: logger.With("component", "game_session"),

		controller:  controller,
		sessionRepo: sessionRepo,
		id:          id,
	}
}

func (that *GameSession) ID() string {
	return that.id
}

// Start - resumes the saved game of the session, or starts a fresh one.
// A session without an id gets a new one.
func (that *GameSession) Start(ctx context.Context) (bool, error) {
	log := that.logger.With("method", "Start")

	if that.id == "" {
		id, err := pkg.GenerateSessionID()
		if err != nil {
			return false, fmt.Errorf("failed to start session: %w", err)
		}

		that.id = id
		log.Info("new session", "sessionID", that.id)

		return false, nil
	}

	snapshot, err := that.sessionRepo.GetByID(ctx, that.id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		log.Info("no saved game, starting fresh", "sessionID", that.id)
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get session by id: %w", err)
	}

	if err = that.controller.RestoreSnapshot(snapshot); err != nil {
		log.Warn("saved game is unusable, starting fresh", "sessionID", that.id, "error", err)
		that.deleteSession(ctx)

		return false, nil
	}

	log.Info("session resumed", "sessionID", that.id, "filled", snapshot.State.Board.Filled())

	return true, nil
}

func (that *GameSession) Move(ctx context.Context, row, col int) (tictactoe.Turn, error) {
	turn, err := that.controller.ApplyMove(row, col)
	if err != nil {
		return tictactoe.Turn{}, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.persist(ctx, turn.Over); err != nil {
		return turn, err
	}

	return turn, nil
}

func (that *GameSession) PlayAI(ctx context.Context) (tictactoe.Turn, engine.Evaluation, error) {
	turn, evaluation, err := that.controller.PlayAITurn()
	if err != nil {
		return tictactoe.Turn{}, engine.Evaluation{}, fmt.Errorf("failed AI turn: %w", err)
	}

	if err = that.persist(ctx, turn.Over); err != nil {
		return turn, evaluation, err
	}

	return turn, evaluation, nil
}

func (that *GameSession) IsAITurn() bool {
	return that.controller.IsAITurn()
}

func (that *GameSession) ToggleMode(ctx context.Context) (tictactoe.Mode, error) {
	mode := that.controller.ToggleMode()

	if err := that.persist(ctx, !that.controller.IsRunning()); err != nil {
		return mode, err
	}

	return mode, nil
}

func (that *GameSession) SetLevel(ctx context.Context, level engine.Level) error {
	that.controller.SetLevel(level)

	return that.persist(ctx, !that.controller.IsRunning())
}

// Reset - starts over; the saved snapshot is dropped.
func (that *GameSession) Reset(ctx context.Context) {
	that.controller.Reset()
	that.deleteSession(ctx)
}

func (that *GameSession) View() View {
	state := that.controller.State()

	return View{
		SessionID: that.id,
		State:     state,
		Outcome:   state.Outcome(),
		Level:     that.controller.Level(),
		AISide:    that.controller.AISide(),
		Over:      state.IsOver(),
	}
}

func (that *GameSession) persist(ctx context.Context, over bool) error {
	if over {
		that.deleteSession(ctx)
		return nil
	}

	if err := that.sessionRepo.Save(ctx, that.controller.Snapshot(that.id)); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

func (that *GameSession) deleteSession(ctx context.Context) {
	log := that.logger.With("method", "deleteSession", "sessionID", that.id)

	err := that.sessionRepo.DeleteByID(ctx, that.id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return
	}

	if err != nil {
		log.Error("failed to delete session", "error", err)
		return
	}

	log.Info("session deleted")
}
