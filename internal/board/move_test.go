package board

import "testing"

func TestNumEdges(t *testing.T) {
	tests := []struct {
		rows, cols int
		want       int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{2, 1, 1},
		{2, 2, 4},
		{3, 3, 12},
		{4, 4, 24},
		{5, 8, 67},
	}

	for _, tt := range tests {
		if got := NumEdges(tt.rows, tt.cols); got != tt.want {
			t.Errorf("NumEdges(%d, %d) = %d, want %d", tt.rows, tt.cols, got, tt.want)
		}
	}
}

func TestNumEdgesCountsAdjacentPairs(t *testing.T) {
	// Brute-force count of unordered adjacent pairs for a range of grid sizes.
	for rows := 1; rows <= 6; rows++ {
		for cols := 1; cols <= 6; cols++ {
			count := 0
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					if c+1 < cols {
						count++
					}
					if r+1 < rows {
						count++
					}
				}
			}
			if got := NumEdges(rows, cols); got != count {
				t.Errorf("NumEdges(%d, %d) = %d, brute force counts %d", rows, cols, got, count)
			}
		}
	}
}

func TestEdgeIndexRoundTrip(t *testing.T) {
	const rows, cols = 5, 7

	for edge := 0; edge < NumEdges(rows, cols); edge++ {
		m, err := NewMoveFromEdgeIndex(edge, rows, cols)
		if err != nil {
			t.Fatalf("NewMoveFromEdgeIndex(%d) failed: %v", edge, err)
		}

		row, col := m.Cell()
		rebuilt := NewMove(row, col, m.Direction(), rows, cols)
		if rebuilt.EdgeIndex() != edge {
			t.Errorf("edge %d decoded to %v, re-encoded to %d", edge, m, rebuilt.EdgeIndex())
		}
	}
}

func TestEdgeIndexOutOfRange(t *testing.T) {
	for _, edge := range []int{-1, NumEdges(4, 4), 1000} {
		if _, err := NewMoveFromEdgeIndex(edge, 4, 4); err == nil {
			t.Errorf("NewMoveFromEdgeIndex(%d, 4, 4) should fail", edge)
		}
	}
}

func TestNewMoveNormalization(t *testing.T) {
	const rows, cols = 4, 4

	// Left at (r, c) is the same edge as Right at (r, c-1).
	left := NewMove(2, 2, DirLeft, rows, cols)
	right := NewMove(2, 1, DirRight, rows, cols)
	if left.EdgeIndex() != right.EdgeIndex() {
		t.Errorf("Left(2,2) edge %d != Right(2,1) edge %d", left.EdgeIndex(), right.EdgeIndex())
	}
	if left.Direction() != DirRight {
		t.Errorf("normalized direction = %v, want Right", left.Direction())
	}

	// Up at (r, c) is the same edge as Down at (r-1, c).
	up := NewMove(3, 1, DirUp, rows, cols)
	down := NewMove(2, 1, DirDown, rows, cols)
	if up.EdgeIndex() != down.EdgeIndex() {
		t.Errorf("Up(3,1) edge %d != Down(2,1) edge %d", up.EdgeIndex(), down.EdgeIndex())
	}
	if up.Direction() != DirDown {
		t.Errorf("normalized direction = %v, want Down", up.Direction())
	}
}

func TestDirectionSymmetry(t *testing.T) {
	const rows, cols = 4, 5

	opposite := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}

	// Constructing from a cell with direction D matches constructing from the
	// neighbor with the opposite direction.
	for edge := 0; edge < NumEdges(rows, cols); edge++ {
		m, err := NewMoveFromEdgeIndex(edge, rows, cols)
		if err != nil {
			t.Fatalf("NewMoveFromEdgeIndex(%d) failed: %v", edge, err)
		}

		or, oc := m.OtherCell()
		mirror := NewMove(or, oc, opposite[m.Direction()], rows, cols)
		if mirror.EdgeIndex() != edge {
			t.Errorf("edge %d: mirror construction from (%d,%d) yields %d", edge, or, oc, mirror.EdgeIndex())
		}
	}
}

func TestOtherCell(t *testing.T) {
	const rows, cols = 4, 4

	m := NewMove(1, 1, DirRight, rows, cols)
	if r, c := m.OtherCell(); r != 1 || c != 2 {
		t.Errorf("Right neighbor of (1,1) = (%d,%d), want (1,2)", r, c)
	}

	m = NewMove(1, 1, DirDown, rows, cols)
	if r, c := m.OtherCell(); r != 2 || c != 1 {
		t.Errorf("Down neighbor of (1,1) = (%d,%d), want (2,1)", r, c)
	}
}

func TestOtherCellInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("OtherCell with invalid direction should panic")
		}
	}()

	m := Move{row: 1, col: 1, direction: Direction(42)}
	m.OtherCell()
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirUp, "Up"},
		{DirDown, "Down"},
		{DirLeft, "Left"},
		{DirRight, "Right"},
		{Direction(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}
