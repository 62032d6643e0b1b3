package console

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

type gameSession interface {
	Move(ctx context.Context, row, col int) (tictactoe.Turn, error)
	PlayAI(ctx context.Context) (tictactoe.Turn, engine.Evaluation, error)
	IsAITurn() bool
	ToggleMode(ctx context.Context) (tictactoe.Mode, error)
	SetLevel(ctx context.Context, level engine.Level) error
	Reset(ctx context.Context)
	View() usecase.View
}

// dispatcher runs commands against the session and describes the result in
// one line. Both the line and the screen front ends use it.
type dispatcher struct {
	session  gameSession
	handlers map[CommandKind]func(ctx context.Context, cmd Command) (string, error)
}

func newDispatcher(session gameSession) *dispatcher {
	dispatcher := &dispatcher{
		session:  session,
		handlers: make(map[CommandKind]func(context.Context, Command) (string, error)),
	}

	dispatcher.handlers[CommandMove] = dispatcher.handleMove
	dispatcher.handlers[CommandToggleMode] = dispatcher.handleToggleMode
	dispatcher.handlers[CommandSetLevel] = dispatcher.handleSetLevel
	dispatcher.handlers[CommandReset] = dispatcher.handleReset

	return dispatcher
}

func (that *dispatcher) execute(ctx context.Context, cmd Command) (string, error) {
	handler, ok := that.handlers[cmd.Kind]
	if !ok {
		return "", fmt.Errorf("%w: kind %d", apperror.ErrUnknownCommand, cmd.Kind)
	}

	return handler(ctx, cmd)
}

func (that *dispatcher) playAI(ctx context.Context) (string, error) {
	turn, evaluation, err := that.session.PlayAI(ctx)
	if err != nil {
		return "", err
	}

	if evaluation.Random {
		return fmt.Sprintf("AI (%s) played %s at random", turn.Player, turn.Move), nil
	}

	return fmt.Sprintf("AI (%s) played %s, eval %d", turn.Player, turn.Move, evaluation.Score), nil
}

func (that *dispatcher) handleMove(ctx context.Context, cmd Command) (string, error) {
	turn, err := that.session.Move(ctx, cmd.Move.Row, cmd.Move.Col)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s played %s", turn.Player, turn.Move), nil
}

func (that *dispatcher) handleToggleMode(ctx context.Context, _ Command) (string, error) {
	mode, err := that.session.ToggleMode(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("mode: %s", mode), nil
}

func (that *dispatcher) handleSetLevel(ctx context.Context, cmd Command) (string, error) {
	if err := that.session.SetLevel(ctx, cmd.Level); err != nil {
		return "", err
	}

	return fmt.Sprintf("level: %s", cmd.Level), nil
}

func (that *dispatcher) handleReset(ctx context.Context, _ Command) (string, error) {
	that.session.Reset(ctx)

	return "new game", nil
}
