package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/internal/usecase"
)

const helpLine = "move: <row> <col> | g: toggle mode | 0: random AI | 1: minimax AI | r: reset | q: quit"

// Board geometry shared by both front ends: row labels take three columns,
// each cell is three wide plus a separator, rows are split by a rule line.
const (
	boardLeft  = 3
	boardTop   = 1
	cellWidth  = 4
	rowHeight  = 2
	columnHead = "    0   1   2"
	rowRule    = "---+---+---"
)

// Renderer draws the board and status lines to a terminal as plain text.
type Renderer struct {
	output      *termenv.Output
	clearScreen bool
}

func NewRenderer(writer io.Writer, clearScreen bool, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{
		output:      termenv.NewOutput(writer, opts...),
		clearScreen: clearScreen,
	}
}

func (that *Renderer) Render(view usecase.View) {
	if that.clearScreen {
		that.output.ClearScreen()
	}

	var sb strings.Builder

	sb.WriteString(columnHead + "\n")

	for row := range entity.Rows {
		fmt.Fprintf(&sb, "%-*d", boardLeft, row)

		for col := range entity.Cols {
			if col > 0 {
				sb.WriteString("|")
			}

			sb.WriteString(that.cell(view, entity.Move{Row: row, Col: col}))
		}

		sb.WriteString("\n")

		if row < entity.Rows-1 {
			sb.WriteString(strings.Repeat(" ", boardLeft) + rowRule + "\n")
		}
	}

	sb.WriteString("\n")

	status := that.output.String(statusText(view))
	if view.Over {
		status = status.Bold()
	}

	sb.WriteString(status.String())
	sb.WriteString("\n")
	sb.WriteString(that.output.String(helpLine).Faint().String())
	sb.WriteString("\n")

	_, _ = io.WriteString(that.output, sb.String())
}

func (that *Renderer) Prompt() {
	_, _ = io.WriteString(that.output, "> ")
}

func (that *Renderer) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(that.output, format+"\n", args...)
}

func (that *Renderer) Error(err error) {
	line := that.output.String("error: " + err.Error()).Foreground(that.output.Color("1"))
	_, _ = fmt.Fprintln(that.output, line.String())
}

func (that *Renderer) cell(view usecase.View, move entity.Move) string {
	mark := view.State.Board.Cell(move.Row, move.Col)
	style := that.output.String(cellText(view, move))

	switch mark {
	case entity.PlayerOne:
		style = style.Foreground(that.output.Color("4")).Bold()
	case entity.PlayerTwo:
		style = style.Foreground(that.output.Color("3")).Bold()
	case entity.EmptyCell:
	}

	if view.Outcome.IsWin() && view.Outcome.Line.Contains(move) {
		style = style.Reverse()
	}

	return style.String()
}

// cellText - the three characters of one cell; the last move is bracketed.
func cellText(view usecase.View, move entity.Move) string {
	mark := view.State.Board.Cell(move.Row, move.Col)

	text := " "
	if mark.IsPlayer() {
		text = mark.String()
	}

	if view.State.HasLastMove && view.State.LastMove == move {
		return "[" + text + "]"
	}

	return " " + text + " "
}

func statusText(view usecase.View) string {
	var state string

	switch {
	case view.Outcome.IsWin():
		state = fmt.Sprintf("Winner: %s (%s %d)",
			view.Outcome.Winner, view.Outcome.Line.Kind, view.Outcome.Line.Index)
	case view.Over:
		state = "Draw"
	default:
		state = fmt.Sprintf("Turn: %s", view.State.CurrentPlayer)
		if view.State.Mode == tictactoe.ModeHumanVsAI && view.State.CurrentPlayer == view.AISide {
			state += " (AI)"
		}
	}

	return fmt.Sprintf("%s | mode: %s | level: %s | session: %s",
		state, view.State.Mode, view.Level, view.SessionID)
}
