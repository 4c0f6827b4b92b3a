package board

import "math/rand"

// Empty is the sentinel value for a vacated cell, distinct from every valid
// tile type in [0, NumCellTypes).
const Empty = -1

// Board owns the grid state of a match-3 simulation. Cells are stored in a
// flat row-major slice (index = row*cols + col) together with a parallel grid
// of match flags. Each Board carries its own seeded generator, so two boards
// constructed with the same parameters replay identically and parallel
// instances never interfere.
//
// All operations mutate in place and are single-threaded; a Board must be
// owned by exactly one driver at a time.
type Board struct {
	rows         int
	cols         int
	numCellTypes int
	cells        []int
	matched      []bool
	rng          *rand.Rand
}

// New creates a board of the given dimensions, fills every cell with a random
// type in [0, numCellTypes), and runs match marking once so the matched state
// is consistent with the initial fill before any external query.
func New(rows, cols, numCellTypes int, seed int64) *Board {
	b := &Board{
		rows:         rows,
		cols:         cols,
		numCellTypes: numCellTypes,
		cells:        make([]int, rows*cols),
		matched:      make([]bool, rows*cols),
		rng:          rand.New(rand.NewSource(seed)),
	}

	for i := range b.cells {
		b.cells[i] = b.rng.Intn(numCellTypes)
	}
	b.MarkMatchedCells()

	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// NumCellTypes returns the number of distinct tile types.
func (b *Board) NumCellTypes() int { return b.numCellTypes }

// NumEdges returns the size of the board's move action space.
func (b *Board) NumEdges() int {
	return NumEdges(b.rows, b.cols)
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// Cell returns the tile type at (row, col), or Empty for a vacated cell.
func (b *Board) Cell(row, col int) int {
	return b.cells[b.index(row, col)]
}

// Matched reports whether (row, col) was part of a >=3 run at the last scan.
func (b *Board) Matched(row, col int) bool {
	return b.matched[b.index(row, col)]
}

// IsMoveValid reports whether the move is worth applying. Swapping two equal
// values is rejected: it cannot produce a new match. Note this policy also
// rejects equal-valued swaps on boards where the swap would be a no-op anyway,
// so nothing playable is lost.
func (b *Board) IsMoveValid(m Move) bool {
	r1, c1 := m.Cell()
	r2, c2 := m.OtherCell()
	return b.Cell(r1, c1) != b.Cell(r2, c2)
}

// MakeMove swaps the two cells referenced by the move and reports whether the
// swap produced at least one run of length >= 3. If it did not, the swap is
// reverted and the board is left unchanged (match flags are rescanned either
// way, so they stay consistent with the cell grid).
func (b *Board) MakeMove(m Move) bool {
	r1, c1 := m.Cell()
	r2, c2 := m.OtherCell()
	i, j := b.index(r1, c1), b.index(r2, c2)

	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]

	if !b.MarkMatchedCells() {
		b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
		return false
	}
	return true
}

// MarkMatchedCells clears all match flags, then scans every cell for a
// vertical run (consecutive rows, fixed column) and a horizontal run
// (consecutive columns, fixed row) of equal non-empty values. Every member of
// a run of length >= 3 is flagged. Returns whether any run was found.
//
// Runs starting at an empty cell never match; the sentinel would otherwise
// compare equal to itself and flag vacated regions.
func (b *Board) MarkMatchedCells() bool {
	for i := range b.matched {
		b.matched[i] = false
	}

	found := false
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			value := b.Cell(row, col)
			if value == Empty {
				continue
			}

			// Vertical run: same column, increasing row.
			length := 1
			for row+length < b.rows && b.Cell(row+length, col) == value {
				length++
			}
			if length >= 3 {
				found = true
				for k := 0; k < length; k++ {
					b.matched[b.index(row+k, col)] = true
				}
			}

			// Horizontal run: same row, increasing column.
			length = 1
			for col+length < b.cols && b.Cell(row, col+length) == value {
				length++
			}
			if length >= 3 {
				found = true
				for k := 0; k < length; k++ {
					b.matched[b.index(row, col+k)] = true
				}
			}
		}
	}

	return found
}

// ClearMatchedCells sets every flagged cell to Empty and resets the match
// flags. Returns whether any cell was cleared.
func (b *Board) ClearMatchedCells() bool {
	cleared := false
	for i, m := range b.matched {
		if m {
			b.cells[i] = Empty
			b.matched[i] = false
			cleared = true
		}
	}
	return cleared
}

// DropCells compacts each column toward row 0, preserving the relative order
// of non-empty values and leaving empties at the high-row end. Returns whether
// any cell moved; a second call without an intervening clear or fill is a
// no-op returning false.
func (b *Board) DropCells() bool {
	moved := false
	for col := 0; col < b.cols; col++ {
		write := 0
		for row := 0; row < b.rows; row++ {
			value := b.Cell(row, col)
			if value == Empty {
				continue
			}
			if row != write {
				b.cells[b.index(write, col)] = value
				b.cells[b.index(row, col)] = Empty
				moved = true
			}
			write++
		}
	}
	return moved
}

// FillFromAbove replaces every empty cell with a freshly generated random
// type. Non-empty cells are never altered. Returns whether any fill occurred.
func (b *Board) FillFromAbove() bool {
	filled := false
	for i, value := range b.cells {
		if value == Empty {
			b.cells[i] = b.rng.Intn(b.numCellTypes)
			filled = true
		}
	}
	return filled
}

// TrialMove reports how many cells the move would flag without committing
// it: the swap is applied, scanned, and reverted, and the match flags are
// restored to the pre-trial grid. Returns 0 for an invalid or unproductive
// move.
func (b *Board) TrialMove(m Move) int {
	if !b.IsMoveValid(m) {
		return 0
	}

	r1, c1 := m.Cell()
	r2, c2 := m.OtherCell()
	i, j := b.index(r1, c1), b.index(r2, c2)

	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	count := 0
	if b.MarkMatchedCells() {
		count = b.MatchedCount()
	}
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	b.MarkMatchedCells()

	return count
}

// HasAvailableMove reports whether any edge in the action space would
// produce a match. A false result means the board is dead and the driver
// must end or reshuffle the game.
func (b *Board) HasAvailableMove() bool {
	for edge := 0; edge < b.NumEdges(); edge++ {
		m, err := NewMoveFromEdgeIndex(edge, b.rows, b.cols)
		if err != nil {
			continue
		}
		if b.TrialMove(m) > 0 {
			return true
		}
	}
	return false
}

// MatchedCount returns the number of currently flagged cells.
func (b *Board) MatchedCount() int {
	count := 0
	for _, m := range b.matched {
		if m {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the cell grid as rows x cols nested slices, for
// rendering or observation encoding.
func (b *Board) Snapshot() [][]int {
	grid := make([][]int, b.rows)
	for row := range grid {
		grid[row] = make([]int, b.cols)
		copy(grid[row], b.cells[row*b.cols:(row+1)*b.cols])
	}
	return grid
}
