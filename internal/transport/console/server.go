package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Server plays the game over plain text lines, for pipes and dumb terminals.
type Server struct {
	logger     *slog.Logger
	session    gameSession
	dispatcher *dispatcher
	input      io.Reader
	renderer   *Renderer
}

func New(logger *slog.Logger, session gameSession, input io.Reader, renderer *Renderer) *Server {
	return &Server{
		logger:     logger.With("component", "console"),
		session:    session,
		dispatcher: newDispatcher(session),
		input:      input,
		renderer:   renderer,
	}
}

// Run - plays the game until the user quits, the input ends or ctx is canceled.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := that.readLines(ctx)

	for {
		that.renderer.Render(that.session.View())

		if that.session.IsAITurn() {
			message, err := that.dispatcher.playAI(ctx)
			if err == nil {
				that.renderer.Info("%s", message)
				continue
			}

			that.renderer.Error(err)
		}

		that.renderer.Prompt()

		var line string

		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving the game")
			return nil
		case text, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("failed to read input: %w", err)
				default:
					log.Info("input closed")
					return nil
				}
			}

			line = text
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			that.renderer.Error(err)
			continue
		}

		if cmd.Kind == CommandQuit {
			log.Info("user quit")
			return nil
		}

		message, err := that.dispatcher.execute(ctx, cmd)
		if err != nil {
			log.Debug("command failed", "error", err)
			that.renderer.Error(err)

			continue
		}

		that.renderer.Info("%s", message)
	}
}

// readLines - feeds input lines into a channel so the loop can wait on ctx as well.
// The goroutine stops once ctx is done, which Run guarantees on return.
func (that *Server) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			readErr <- err
		}
	}()

	return lines, readErr
}
