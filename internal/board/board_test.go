package board

import "testing"

// setCells overwrites the grid row by row and rescans matches, mirroring the
// consistent state New leaves behind.
func setCells(b *Board, rows [][]int) {
	for r, row := range rows {
		for c, v := range row {
			b.cells[b.index(r, c)] = v
		}
	}
	b.MarkMatchedCells()
}

func TestNewDeterministic(t *testing.T) {
	b1 := New(4, 4, 2, 12345)
	b2 := New(4, 4, 2, 12345)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if b1.Cell(r, c) != b2.Cell(r, c) {
				t.Errorf("cell (%d,%d) differs: %d vs %d", r, c, b1.Cell(r, c), b2.Cell(r, c))
			}
			if b1.Matched(r, c) != b2.Matched(r, c) {
				t.Errorf("matched (%d,%d) differs", r, c)
			}
		}
	}
}

func TestNewFillsValidTypes(t *testing.T) {
	b := New(6, 5, 4, 99)

	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			v := b.Cell(r, c)
			if v < 0 || v >= b.NumCellTypes() {
				t.Errorf("cell (%d,%d) = %d outside [0, %d)", r, c, v, b.NumCellTypes())
			}
		}
	}
}

func TestMarkMatchedCellsRuns(t *testing.T) {
	b := New(4, 4, 5, 1)
	setCells(b, [][]int{
		{0, 0, 0, 1},
		{2, 3, 4, 1},
		{2, 3, 4, 2},
		{3, 4, 2, 3},
	})

	// Horizontal 3-run at row 0, cols 0-2.
	for c := 0; c < 3; c++ {
		if !b.Matched(0, c) {
			t.Errorf("(0,%d) should be matched", c)
		}
	}
	if b.Matched(0, 3) {
		t.Error("(0,3) should not be matched")
	}

	// Vertical 2-runs must not be marked.
	for r := 1; r < 3; r++ {
		for c := 1; c < 4; c++ {
			if b.Matched(r, c) {
				t.Errorf("(%d,%d) is part of a 2-run at most, should not be matched", r, c)
			}
		}
	}
}

func TestMarkMatchedCellsEdgeRun(t *testing.T) {
	b := New(4, 4, 5, 1)
	setCells(b, [][]int{
		{0, 1, 2, 3},
		{4, 1, 2, 3},
		{0, 2, 3, 4},
		{1, 3, 4, 0},
	})

	// No 3-run anywhere.
	if b.MarkMatchedCells() {
		t.Fatal("no run expected")
	}

	// Vertical 3-run ending at the last row of column 0.
	setCells(b, [][]int{
		{2, 1, 2, 3},
		{4, 1, 2, 3},
		{4, 2, 3, 4},
		{4, 3, 4, 0},
	})
	for r := 1; r < 4; r++ {
		if !b.Matched(r, 0) {
			t.Errorf("(%d,0) should be matched", r)
		}
	}
	if b.Matched(0, 0) {
		t.Error("(0,0) should not be matched")
	}
}

func TestMarkMatchedCellsCross(t *testing.T) {
	b := New(3, 3, 5, 1)
	setCells(b, [][]int{
		{1, 0, 2},
		{0, 0, 0},
		{3, 0, 4},
	})

	// Middle row and middle column both form 3-runs of zeroes; the union of
	// both runs must be flagged.
	want := map[[2]int]bool{
		{0, 1}: true, {1, 0}: true, {1, 1}: true, {1, 2}: true, {2, 1}: true,
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b.Matched(r, c) != want[[2]int{r, c}] {
				t.Errorf("matched(%d,%d) = %v, want %v", r, c, b.Matched(r, c), want[[2]int{r, c}])
			}
		}
	}
}

func TestEmptyCellsNeverMatch(t *testing.T) {
	b := New(4, 4, 5, 1)
	setCells(b, [][]int{
		{Empty, Empty, Empty, 1},
		{Empty, 2, 3, 1},
		{Empty, 3, 4, 2},
		{Empty, 4, 2, 3},
	})

	if b.MarkMatchedCells() {
		t.Error("runs of empty cells must not be reported as matches")
	}
	for r := 0; r < 4; r++ {
		if b.Matched(r, 0) {
			t.Errorf("empty cell (%d,0) flagged as matched", r)
		}
	}
}

func TestClearMatchedCells(t *testing.T) {
	b := New(4, 4, 5, 1)
	setCells(b, [][]int{
		{0, 0, 0, 1},
		{2, 3, 4, 1},
		{2, 3, 4, 2},
		{3, 4, 2, 3},
	})

	if !b.ClearMatchedCells() {
		t.Fatal("ClearMatchedCells should report cells cleared")
	}
	for c := 0; c < 3; c++ {
		if b.Cell(0, c) != Empty {
			t.Errorf("(0,%d) = %d, want Empty", c, b.Cell(0, c))
		}
		if b.Matched(0, c) {
			t.Errorf("(0,%d) match flag should be reset", c)
		}
	}
	if b.Cell(0, 3) != 1 {
		t.Errorf("(0,3) = %d, want 1 (unmatched cell must survive)", b.Cell(0, 3))
	}

	// Second call with nothing marked: no-op returning false.
	before := b.Snapshot()
	if b.ClearMatchedCells() {
		t.Error("ClearMatchedCells with no marks should return false")
	}
	after := b.Snapshot()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Errorf("grid changed at (%d,%d) with nothing marked", r, c)
			}
		}
	}
}

func TestDropCells(t *testing.T) {
	b := New(5, 2, 5, 1)
	setCells(b, [][]int{
		{Empty, 0},
		{1, Empty},
		{Empty, 1},
		{2, Empty},
		{3, 2},
	})

	if !b.DropCells() {
		t.Fatal("DropCells should report movement")
	}

	wantCol0 := []int{1, 2, 3, Empty, Empty}
	wantCol1 := []int{0, 1, 2, Empty, Empty}
	for r := 0; r < 5; r++ {
		if b.Cell(r, 0) != wantCol0[r] {
			t.Errorf("col 0 row %d = %d, want %d", r, b.Cell(r, 0), wantCol0[r])
		}
		if b.Cell(r, 1) != wantCol1[r] {
			t.Errorf("col 1 row %d = %d, want %d", r, b.Cell(r, 1), wantCol1[r])
		}
	}

	// Idempotent until something is cleared or filled.
	if b.DropCells() {
		t.Error("second DropCells should be a no-op")
	}
}

func TestFillFromAbove(t *testing.T) {
	b := New(4, 4, 3, 7)
	setCells(b, [][]int{
		{Empty, 0, Empty, 1},
		{1, Empty, 2, 0},
		{Empty, 2, 1, Empty},
		{0, 1, Empty, 2},
	})
	before := b.Snapshot()

	if !b.FillFromAbove() {
		t.Fatal("FillFromAbove should report fills")
	}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			v := b.Cell(r, c)
			if v == Empty {
				t.Errorf("(%d,%d) still empty after fill", r, c)
			}
			if v < 0 || v >= b.NumCellTypes() {
				t.Errorf("(%d,%d) = %d outside valid types", r, c, v)
			}
			if before[r][c] != Empty && v != before[r][c] {
				t.Errorf("(%d,%d) was %d, fill changed it to %d", r, c, before[r][c], v)
			}
		}
	}

	// Nothing left to fill.
	if b.FillFromAbove() {
		t.Error("FillFromAbove on a full board should return false")
	}
}

func TestSingleColumnCascadeScenario(t *testing.T) {
	// The canonical single-column walk-through: mark, clear, drop, fill.
	b := New(5, 1, 2, 42)
	setCells(b, [][]int{{0}, {0}, {0}, {1}, {1}})

	for r := 0; r < 3; r++ {
		if !b.Matched(r, 0) {
			t.Errorf("row %d should be matched", r)
		}
	}
	for r := 3; r < 5; r++ {
		if b.Matched(r, 0) {
			t.Errorf("row %d should not be matched", r)
		}
	}

	if !b.ClearMatchedCells() {
		t.Fatal("clear should succeed")
	}
	for r := 0; r < 3; r++ {
		if b.Cell(r, 0) != Empty {
			t.Errorf("row %d = %d, want Empty", r, b.Cell(r, 0))
		}
	}

	if !b.DropCells() {
		t.Fatal("drop should move cells")
	}
	want := []int{1, 1, Empty, Empty, Empty}
	for r, w := range want {
		if b.Cell(r, 0) != w {
			t.Errorf("after drop row %d = %d, want %d", r, b.Cell(r, 0), w)
		}
	}

	if !b.FillFromAbove() {
		t.Fatal("fill should occur")
	}
	for r := 0; r < 5; r++ {
		if b.Cell(r, 0) == Empty {
			t.Errorf("row %d still empty after fill", r)
		}
	}
	if b.Cell(0, 0) != 1 || b.Cell(1, 0) != 1 {
		t.Error("fill must not disturb the dropped cells")
	}
}

func TestIsMoveValid(t *testing.T) {
	b := New(2, 2, 5, 1)
	setCells(b, [][]int{
		{0, 0},
		{1, 2},
	})

	equal := NewMove(0, 0, DirRight, 2, 2)
	if b.IsMoveValid(equal) {
		t.Error("swap of equal values should be invalid")
	}

	differ := NewMove(0, 0, DirDown, 2, 2)
	if !b.IsMoveValid(differ) {
		t.Error("swap of differing values should be valid")
	}

	// Exhaustive over the whole action space.
	for edge := 0; edge < b.NumEdges(); edge++ {
		m, err := NewMoveFromEdgeIndex(edge, 2, 2)
		if err != nil {
			t.Fatalf("edge %d: %v", edge, err)
		}
		r1, c1 := m.Cell()
		r2, c2 := m.OtherCell()
		want := b.Cell(r1, c1) != b.Cell(r2, c2)
		if got := b.IsMoveValid(m); got != want {
			t.Errorf("edge %d: IsMoveValid = %v, want %v", edge, got, want)
		}
	}
}

func TestMakeMoveProducesMatch(t *testing.T) {
	b := New(3, 3, 5, 1)
	setCells(b, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{2, 2, 3},
	})

	// Swapping (0,1) down makes row 0 = 0,0,0 and row 1 = 1,1,1: two
	// horizontal matches from one swap.
	m := NewMove(0, 1, DirDown, 3, 3)
	if !b.MakeMove(m) {
		t.Fatal("swap should produce a match")
	}
	for c := 0; c < 3; c++ {
		if b.Cell(0, c) != 0 {
			t.Errorf("(0,%d) = %d, want 0", c, b.Cell(0, c))
		}
		if !b.Matched(0, c) {
			t.Errorf("(0,%d) should be flagged after MakeMove", c)
		}
	}
}

func TestMakeMoveRevertsOnNoMatch(t *testing.T) {
	b := New(3, 3, 5, 1)
	setCells(b, [][]int{
		{0, 1, 2},
		{3, 4, 0},
		{1, 2, 3},
	})
	before := b.Snapshot()

	m := NewMove(0, 0, DirRight, 3, 3)
	if b.MakeMove(m) {
		t.Fatal("swap should not produce a match")
	}

	after := b.Snapshot()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Errorf("board changed at (%d,%d) after reverted move", r, c)
			}
		}
	}
	if b.MatchedCount() != 0 {
		t.Error("no cells should be flagged after a reverted move")
	}
}

func TestTrialMoveDoesNotCommit(t *testing.T) {
	b := New(3, 3, 5, 1)
	setCells(b, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{2, 2, 3},
	})
	before := b.Snapshot()

	// The swap completes both row 0 (0,0,0) and row 1 (1,1,1).
	m := NewMove(0, 1, DirDown, 3, 3)
	if got := b.TrialMove(m); got != 6 {
		t.Errorf("TrialMove = %d, want 6", got)
	}

	after := b.Snapshot()
	for r := range before {
		for c := range before[r] {
			if before[r][c] != after[r][c] {
				t.Errorf("trial mutated the board at (%d,%d)", r, c)
			}
		}
	}
	if b.MatchedCount() != 0 {
		t.Error("trial left match flags behind")
	}

	// An unproductive swap scores zero.
	dud := NewMove(0, 0, DirDown, 3, 3)
	if got := b.TrialMove(dud); got != 0 {
		t.Errorf("TrialMove on unproductive swap = %d, want 0", got)
	}
}

func TestHasAvailableMove(t *testing.T) {
	b := New(3, 3, 5, 1)
	setCells(b, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{2, 2, 3},
	})
	if !b.HasAvailableMove() {
		t.Error("board has a productive swap, HasAvailableMove should be true")
	}

	// A striped board with no productive swap anywhere.
	setCells(b, [][]int{
		{0, 1, 2},
		{1, 2, 0},
		{2, 0, 1},
	})
	if b.HasAvailableMove() {
		t.Error("dead board should report no available move")
	}
}

func TestSeededReplay(t *testing.T) {
	// Same seed and same operation sequence produce identical boards.
	run := func() *Board {
		b := New(6, 6, 4, 2024)
		for i := 0; i < 5; i++ {
			if !b.MarkMatchedCells() {
				break
			}
			b.ClearMatchedCells()
			b.DropCells()
			b.FillFromAbove()
		}
		return b
	}

	b1, b2 := run(), run()
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			if b1.Cell(r, c) != b2.Cell(r, c) {
				t.Errorf("replay diverged at (%d,%d)", r, c)
			}
		}
	}
}
