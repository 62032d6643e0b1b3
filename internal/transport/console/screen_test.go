package console

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/engine"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

func newScreenServer(t *testing.T) (*ScreenServer, *usecase.GameSession, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(90, 12)
	t.Cleanup(screen.Fini)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	searcher := engine.New(logger, entity.PlayerTwo, engine.LevelMinimax)
	controller := tictactoe.NewGameController(logger, searcher, tictactoe.ModeHumanVsAI)
	session := usecase.NewGameSession(logger, controller, repository.NewMemorySessionRepository(), "s1")

	return NewScreen(logger, session, screen), session, screen
}

func screenLine(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()

	var sb strings.Builder

	for x := range width {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}

		sb.WriteRune(cell.Runes[0])
	}

	return strings.TrimRight(sb.String(), " ")
}

func click(screen tcell.SimulationScreen, move entity.Move) {
	x := boardLeft + move.Col*cellWidth + 1
	y := boardTop + move.Row*rowHeight

	screen.InjectMouse(x, y, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func TestScreenServer_Run(t *testing.T) {
	t.Run("Click plays the cell under the pointer", func(t *testing.T) {
		// Given: the human clicks the center and then presses q
		server, session, screen := newScreenServer(t)
		click(screen, entity.Move{Row: 1, Col: 1})
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		// When: the loop runs
		err := server.Run(context.Background())

		// Then: the AI opened, the click landed and the AI answered
		require.NoError(t, err)
		board := session.View().State.Board
		assert.Equal(t, entity.PlayerTwo, board.Cell(0, 0))
		assert.Equal(t, entity.PlayerOne, board.Cell(1, 1))
		assert.Equal(t, 3, board.Filled())
	})

	t.Run("Arrows and enter play the cursor cell", func(t *testing.T) {
		server, session, screen := newScreenServer(t)
		screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
		screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		screen.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		err := server.Run(context.Background())

		require.NoError(t, err)
		view := session.View()
		assert.Equal(t, entity.PlayerOne, view.State.Board.Cell(1, 2))
		assert.Equal(t, 3, view.State.Board.Filled())
		assert.Equal(t, tictactoe.ModeHumanVsHuman, view.State.Mode)
		assert.Equal(t, "mode: pvp", screenLine(screen, 8))
		assert.Contains(t, screenLine(screen, 7), "Turn: X | mode: pvp | level: minimax | session: s1")
	})

	t.Run("Occupied cell is reported and the game goes on", func(t *testing.T) {
		// Given: a click on the corner the AI opens with
		server, session, screen := newScreenServer(t)
		click(screen, entity.Move{Row: 0, Col: 0})
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

		err := server.Run(context.Background())

		// Then: the error is on screen and only the AI move is on the board
		require.NoError(t, err)
		assert.Contains(t, screenLine(screen, 8), "error: failed make turn: invalid turn: invalid move")
		assert.Equal(t, "0  [O]|   |", screenLine(screen, 1))
		assert.Equal(t, 1, session.View().State.Board.Filled())
	})

	t.Run("Unknown key is reported", func(t *testing.T) {
		server, _, screen := newScreenServer(t)
		screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
		screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

		err := server.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, screenLine(screen, 8), "error: unknown command")
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		server, _, _ := newScreenServer(t)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := server.Run(ctx)

		require.NoError(t, err)
	})
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want entity.Move
		ok   bool
	}{
		{"top left", 3, 1, entity.Move{Row: 0, Col: 0}, true},
		{"center", 8, 3, entity.Move{Row: 1, Col: 1}, true},
		{"bottom right edge", 13, 5, entity.Move{Row: 2, Col: 2}, true},
		{"separator", 6, 1, entity.Move{}, false},
		{"rule line", 4, 2, entity.Move{}, false},
		{"row label", 0, 1, entity.Move{}, false},
		{"below board", 4, 7, entity.Move{}, false},
		{"right of board", 15, 1, entity.Move{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, ok := cellAt(tt.x, tt.y)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, move)
		})
	}
}
