package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirLeft, Point{X: -1}},
		{DirRight, Point{X: 1}},
		{DirUp, Point{Y: -1}},
		{DirDown, Point{Y: 1}},
		{Direction(42), Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDirectionsScanOrder(t *testing.T) {
	expected := [4]Direction{DirLeft, DirRight, DirUp, DirDown}
	if Directions != expected {
		t.Errorf("Directions = %v, expected %v", Directions, expected)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(DirUp.Delta()); got != (Point{X: 3, Y: 3}) {
		t.Errorf("Add(up) = %v, expected (3,3)", got)
	}
	if got := p.Add(DirLeft.Delta()); got != (Point{X: 2, Y: 4}) {
		t.Errorf("Add(left) = %v, expected (2,4)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{" Bright-Blue ", ColorBrightBlue, false},
		{"gray", ColorGray, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, want %v", c.String(), parsed, c)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionSow, ActionLeft)
	if !f.Has(ActionSow) || !f.Has(ActionLeft) {
		t.Error("FrameOf should set all given actions")
	}
	if f.Has(ActionReap) {
		t.Error("ActionReap should not be set")
	}
	if f.Empty() {
		t.Error("frame with actions should not be empty")
	}

	if !NewInputFrame().Empty() {
		t.Error("new frame should be empty")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionDirection(t *testing.T) {
	if d, ok := ActionLeft.Direction(); !ok || d != DirLeft {
		t.Errorf("ActionLeft.Direction() = %v, %v", d, ok)
	}
	if _, ok := ActionSow.Direction(); ok {
		t.Error("ActionSow should not map to a direction")
	}
}
