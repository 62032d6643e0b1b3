package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Scores are always from PlayerOne's point of view.
const (
	ScorePlayerOneWin = 1
	ScorePlayerTwoWin = -1
	ScoreDraw         = 0

	scoreFloor   = -100
	scoreCeiling = 100
)

// Evaluation is the engine's decision together with what led to it.
type Evaluation struct {
	Move   entity.Move
	Score  int
	Random bool
	Nodes  int
}

type Option func(*Engine)

// WithRand - uses the given source for random moves instead of the global one.
func WithRand(rnd *rand.Rand) Option {
	return func(that *Engine) {
		that.intN = rnd.IntN
	}
}

type Engine struct {
	logger *slog.Logger
	side   entity.Cell
	level  Level
	intN   func(n int) int
}

func New(logger *slog.Logger, side entity.Cell, level Level, opts ...Option) *Engine {
	engine := &Engine{
		logger: logger.With("component", "engine"),
		side:   side,
		level:  level,
		intN:   rand.IntN,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

func (that *Engine) Side() entity.Cell {
	return that.side
}

func (that *Engine) Level() Level {
	return that.level
}

func (that *Engine) SetLevel(level Level) {
	that.level = level
}

// ChooseMove - picks a move according to the current level.
func (that *Engine) ChooseMove(board entity.Board) (entity.Move, error) {
	evaluation, err := that.Evaluate(board)
	if err != nil {
		return entity.Move{}, err
	}

	return evaluation.Move, nil
}

// Evaluate - picks a move and reports the score and search size behind it.
func (that *Engine) Evaluate(board entity.Board) (Evaluation, error) {
	log := that.logger.With("method", "Evaluate", "level", that.level.String(), "side", that.side.String())

	var (
		evaluation Evaluation
		err        error
	)

	switch that.level {
	case LevelRandom:
		evaluation.Random = true
		evaluation.Move, err = that.ChooseRandomMove(board)
	case LevelMinimax:
		evaluation, err = that.searchBest(board)
	default:
		err = fmt.Errorf("%w: %s", apperror.ErrUnknownLevel, that.level)
	}

	if err != nil {
		return Evaluation{}, err
	}

	if evaluation.Random {
		log.Info("AI has chosen a square", "row", evaluation.Move.Row, "col", evaluation.Move.Col, "eval", "random")
	} else {
		log.Info("AI has chosen a square",
			"row", evaluation.Move.Row,
			"col", evaluation.Move.Col,
			"eval", evaluation.Score,
			"nodes", evaluation.Nodes,
		)
	}

	return evaluation, nil
}

// ChooseRandomMove - samples one of the empty cells uniformly.
func (that *Engine) ChooseRandomMove(board entity.Board) (entity.Move, error) {
	if err := checkPlayable(board); err != nil {
		return entity.Move{}, err
	}

	available := board.EmptyCells()

	return available[that.intN(len(available))], nil
}

// Minimax - exhaustive search from the given position. The maximizing side
// marks PlayerOne and the minimizing side marks PlayerTwo. ok is false when the
// position is already terminal and there is no move to return.
func (that *Engine) Minimax(board entity.Board, maximizing bool) (score int, move entity.Move, ok bool, err error) {
	var nodes int
	return minimax(board, maximizing, &nodes)
}

func (that *Engine) searchBest(board entity.Board) (Evaluation, error) {
	if err := checkPlayable(board); err != nil {
		return Evaluation{}, err
	}

	var nodes int

	score, move, _, err := minimax(board, that.side == entity.PlayerOne, &nodes)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{Move: move, Score: score, Nodes: nodes}, nil
}

// checkPlayable - both levels refuse a full or decided board.
func checkPlayable(board entity.Board) error {
	if board.IsFull() {
		return apperror.ErrNoMovesAvailable
	}

	if outcome := board.TerminalOutcome(); outcome.IsWin() {
		return fmt.Errorf("%w: %s won on %s %d",
			apperror.ErrGameFinished, outcome.Winner, outcome.Line.Kind, outcome.Line.Index)
	}

	return nil
}

func minimax(board entity.Board, maximizing bool, nodes *int) (int, entity.Move, bool, error) {
	*nodes++

	switch board.TerminalOutcome().Winner {
	case entity.PlayerOne:
		return ScorePlayerOneWin, entity.Move{}, false, nil
	case entity.PlayerTwo:
		return ScorePlayerTwoWin, entity.Move{}, false, nil
	}

	if board.IsFull() {
		return ScoreDraw, entity.Move{}, false, nil
	}

	mark, best := entity.PlayerTwo, scoreCeiling
	if maximizing {
		mark, best = entity.PlayerOne, scoreFloor
	}

	var bestMove entity.Move

	for _, move := range board.EmptyCells() {
		// board is a value, so each branch marks its own copy
		branch := board
		if err := branch.Mark(move.Row, move.Col, mark); err != nil {
			return 0, entity.Move{}, false, fmt.Errorf("search branch %s: %w", move, err)
		}

		score, _, _, err := minimax(branch, !maximizing, nodes)
		if err != nil {
			return 0, entity.Move{}, false, err
		}

		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			bestMove = move
		}
	}

	return best, bestMove, true, nil
}
