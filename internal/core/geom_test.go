package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 4 || cy != 5 {
		t.Errorf("Center() = (%d,%d), want (4,5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{3, 3, true},
		{4, 1, false}, // Right edge is exclusive
		{1, 4, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min broken")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max broken")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs broken")
	}
}
