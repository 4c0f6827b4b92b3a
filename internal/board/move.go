// Package board implements the match-3 simulation core: a fixed-size grid of
// typed tiles with move validation, match scanning, clearing, and
// gravity-based refill. It is UI-agnostic and deterministic; the cascade loop
// is owned by the caller.
package board

import "fmt"

// Direction identifies one of the four swap directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// Up decreases the row index, Down increases it.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// NumEdges returns the number of unordered adjacent-cell pairs in a
// rows x cols grid: one edge per horizontal neighbor pair plus one per
// vertical neighbor pair. This is the size of the discrete action space
// exposed to external move-selection policies.
func NumEdges(rows, cols int) int {
	return rows*(cols-1) + (rows-1)*cols
}

// Move describes a proposed swap between two adjacent cells. It is stored in
// canonical form: the anchor cell paired with DirRight or DirDown, so every
// adjacent pair has exactly one representation and one edge index.
type Move struct {
	row, col  int
	direction Direction
	edgeIndex int
}

// NewMove builds a Move from an anchor cell and a direction, normalizing Up
// and Left onto the neighbor cell so the canonical form always points Right
// or Down. The caller must supply coordinates whose normalized anchor lies
// within the grid.
func NewMove(row, col int, dir Direction, rows, cols int) Move {
	switch dir {
	case DirUp:
		row--
		dir = DirDown
	case DirLeft:
		col--
		dir = DirRight
	}

	var edge int
	if dir == DirRight {
		edge = row*(cols-1) + col
	} else {
		edge = rows*(cols-1) + row*cols + col
	}

	return Move{row: row, col: col, direction: dir, edgeIndex: edge}
}

// NewMoveFromEdgeIndex decodes a canonical edge index into a Move.
// Right-edges come first in row-major order (cols-1 per row), followed by
// Down-edges (cols per row, rows-1 rows). Returns an error if the index is
// outside [0, NumEdges(rows, cols)).
func NewMoveFromEdgeIndex(edgeIndex, rows, cols int) (Move, error) {
	if edgeIndex < 0 || edgeIndex >= NumEdges(rows, cols) {
		return Move{}, fmt.Errorf("board: edge index %d out of range [0, %d)", edgeIndex, NumEdges(rows, cols))
	}

	rightEdges := rows * (cols - 1)
	if edgeIndex < rightEdges {
		return Move{
			row:       edgeIndex / (cols - 1),
			col:       edgeIndex % (cols - 1),
			direction: DirRight,
			edgeIndex: edgeIndex,
		}, nil
	}

	rest := edgeIndex - rightEdges
	return Move{
		row:       rest / cols,
		col:       rest % cols,
		direction: DirDown,
		edgeIndex: edgeIndex,
	}, nil
}

// EdgeIndex returns the canonical edge index in [0, NumEdges).
func (m Move) EdgeIndex() int {
	return m.edgeIndex
}

// Direction returns the normalized direction (always Right or Down).
func (m Move) Direction() Direction {
	return m.direction
}

// Cell returns the anchor cell coordinate.
func (m Move) Cell() (row, col int) {
	return m.row, m.col
}

// OtherCell returns the neighbor cell the anchor is swapped with.
// An unrecognized direction means the Move was built outside the
// constructors; that is a programming error, not a runtime condition.
func (m Move) OtherCell() (row, col int) {
	switch m.direction {
	case DirUp:
		return m.row - 1, m.col
	case DirDown:
		return m.row + 1, m.col
	case DirLeft:
		return m.row, m.col - 1
	case DirRight:
		return m.row, m.col + 1
	default:
		panic(fmt.Sprintf("board: invalid move direction %d", m.direction))
	}
}

// String returns a human-readable description of the move.
func (m Move) String() string {
	return fmt.Sprintf("Move{(%d,%d) %s #%d}", m.row, m.col, m.direction, m.edgeIndex)
}
