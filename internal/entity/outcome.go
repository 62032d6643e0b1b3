package entity

// LineKind is the geometric type of a winning line.
type LineKind uint8

const (
	LineNone LineKind = iota
	LineColumn
	LineRow
	LineDescDiagonal
	LineAscDiagonal
)

func (that LineKind) String() string {
	switch that {
	case LineColumn:
		return "column"
	case LineRow:
		return "row"
	case LineDescDiagonal:
		return "descending diagonal"
	case LineAscDiagonal:
		return "ascending diagonal"
	default:
		return "none"
	}
}

// Line identifies one of the eight winning lines. Index is the row or column
// number for LineRow and LineColumn and zero for diagonals.
type Line struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// Cells - returns the three coordinates covered by the line.
func (that Line) Cells() [3]Move {
	switch that.Kind {
	case LineColumn:
		return [3]Move{{0, that.Index}, {1, that.Index}, {2, that.Index}}
	case LineRow:
		return [3]Move{{that.Index, 0}, {that.Index, 1}, {that.Index, 2}}
	case LineDescDiagonal:
		return [3]Move{{0, 0}, {1, 1}, {2, 2}}
	case LineAscDiagonal:
		return [3]Move{{2, 0}, {1, 1}, {0, 2}}
	default:
		return [3]Move{}
	}
}

// Contains reports whether the move lies on the line.
func (that Line) Contains(move Move) bool {
	if that.Kind == LineNone {
		return false
	}

	for _, cell := range that.Cells() {
		if cell == move {
			return true
		}
	}

	return false
}

// Outcome is the terminal check result. A zero Outcome means "no winner yet",
// which is not the same as a draw.
type Outcome struct {
	Winner Cell `json:"winner"`
	Line   Line `json:"line"`
}

func (that Outcome) IsWin() bool {
	return that.Winner.IsPlayer()
}

// winLines are checked in this order: columns, rows, descending and ascending diagonal.
var winLines = [8]Line{
	{LineColumn, 0},
	{LineColumn, 1},
	{LineColumn, 2},
	{LineRow, 0},
	{LineRow, 1},
	{LineRow, 2},
	{LineDescDiagonal, 0},
	{LineAscDiagonal, 0},
}
