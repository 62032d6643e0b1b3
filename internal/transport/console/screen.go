package console

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

const screenHelp = "click or arrows+enter: move | g: mode | 0/1: AI level | r: reset | q/esc: quit"

var (
	styleDefault = tcell.StyleDefault
	stylePlayerX = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	stylePlayerO = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFaint   = tcell.StyleDefault.Dim(true)
)

// ScreenServer plays the game full screen: key presses map to commands and a
// left click on a cell plays it. The screen must be initialized by the caller.
type ScreenServer struct {
	logger     *slog.Logger
	session    gameSession
	dispatcher *dispatcher
	screen     tcell.Screen

	cursor   entity.Move
	pressed  bool
	message  string
	errorMsg bool
}

func NewScreen(logger *slog.Logger, session gameSession, screen tcell.Screen) *ScreenServer {
	return &ScreenServer{
		logger:     logger.With("component", "screen"),
		session:    session,
		dispatcher: newDispatcher(session),
		screen:     screen,
		cursor:     entity.Move{Row: 1, Col: 1},
	}
}

// Run - handles screen events until the user quits or ctx is canceled.
func (that *ScreenServer) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.screen.EnableMouse()

	go func() {
		<-ctx.Done()
		// wakes PollEvent
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		that.draw()

		if that.session.IsAITurn() {
			message, err := that.dispatcher.playAI(ctx)
			that.report(message, err)

			if err == nil {
				continue
			}
		}

		switch ev := that.screen.PollEvent().(type) {
		case nil:
			log.Info("screen closed")
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				log.Info("context canceled, leaving the game")
				return nil
			}
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			cmd, ok := that.keyCommand(ev)
			if !ok {
				continue
			}

			if cmd.Kind == CommandQuit {
				log.Info("user quit")
				return nil
			}

			that.report(that.dispatcher.execute(ctx, cmd))
		case *tcell.EventMouse:
			held := ev.Buttons()&tcell.Button1 != 0
			clicked := held && !that.pressed
			that.pressed = held

			if !clicked {
				continue
			}

			move, ok := cellAt(ev.Position())
			if !ok {
				continue
			}

			that.cursor = move
			that.report(that.dispatcher.execute(ctx, Command{Kind: CommandMove, Move: move}))
		}
	}
}

// keyCommand - arrows move the cursor, enter or space plays it; runes go
// through the same key map as the line console.
func (that *ScreenServer) keyCommand(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}, true
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyEnter:
		return Command{Kind: CommandMove, Move: that.cursor}, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return Command{Kind: CommandMove, Move: that.cursor}, true
		}

		cmd, err := ParseCommand(string(ev.Rune()))
		if err != nil {
			that.report("", err)
			return Command{}, false
		}

		return cmd, true
	}

	return Command{}, false
}

func (that *ScreenServer) moveCursor(dRow, dCol int) {
	next := entity.Move{Row: that.cursor.Row + dRow, Col: that.cursor.Col + dCol}
	if next.InRange() {
		that.cursor = next
	}
}

func (that *ScreenServer) report(message string, err error) {
	if err != nil {
		that.message = "error: " + err.Error()
		that.errorMsg = true

		return
	}

	that.message = message
	that.errorMsg = false
}

func (that *ScreenServer) draw() {
	view := that.session.View()

	that.screen.Clear()
	that.drawText(0, 0, columnHead, styleDefault)

	for row := range entity.Rows {
		y := boardTop + row*rowHeight
		that.drawText(0, y, fmt.Sprintf("%d", row), styleDefault)

		for col := range entity.Cols {
			x := boardLeft + col*cellWidth
			if col > 0 {
				that.screen.SetContent(x-1, y, '|', nil, styleDefault)
			}

			move := entity.Move{Row: row, Col: col}
			that.drawText(x, y, cellText(view, move), that.cellStyle(view, move))
		}

		if row < entity.Rows-1 {
			that.drawText(boardLeft, y+1, rowRule, styleDefault)
		}
	}

	statusY := boardTop + entity.Rows*rowHeight
	that.drawText(0, statusY, statusText(view), styleDefault.Bold(view.Over))

	messageStyle := styleDefault
	if that.errorMsg {
		messageStyle = styleError
	}

	that.drawText(0, statusY+1, that.message, messageStyle)
	that.drawText(0, statusY+2, screenHelp, styleFaint)

	that.screen.Show()
}

func (that *ScreenServer) cellStyle(view usecase.View, move entity.Move) tcell.Style {
	style := styleDefault

	switch view.State.Board.Cell(move.Row, move.Col) {
	case entity.PlayerOne:
		style = stylePlayerX
	case entity.PlayerTwo:
		style = stylePlayerO
	case entity.EmptyCell:
	}

	if view.Outcome.IsWin() && view.Outcome.Line.Contains(move) {
		style = style.Reverse(true)
	}

	if !view.Over && move == that.cursor {
		style = style.Underline(true)
	}

	return style
}

func (that *ScreenServer) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// cellAt - maps a screen position to the board cell drawn there.
func cellAt(x, y int) (entity.Move, bool) {
	dy := y - boardTop
	if dy < 0 || dy%rowHeight != 0 || dy/rowHeight >= entity.Rows {
		return entity.Move{}, false
	}

	dx := x - boardLeft
	if dx < 0 || dx%cellWidth == cellWidth-1 || dx/cellWidth >= entity.Cols {
		return entity.Move{}, false
	}

	return entity.Move{Row: dy / rowHeight, Col: dx / cellWidth}, true
}
