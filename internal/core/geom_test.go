package core

import "testing"

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
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	expected := NewRect(1, 1, 8, 4)
	if r != expected {
		t.Errorf("Inset(1) = %+v, expected %+v", r, expected)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset(2) of 1x1 = %+v, expected empty", tiny)
	}
}

func TestRectCenterIn(t *testing.T) {
	r := NewRect(0, 0, 80, 24).CenterIn(20, 10)
	expected := NewRect(30, 7, 20, 10)
	if r != expected {
		t.Errorf("CenterIn(20, 10) = %+v, expected %+v", r, expected)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{3, 5, 3},
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{7, 0, 0},
	}

	for _, tc := range tests {
		result := Wrap(tc.val, tc.n)
		if result != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, result, tc.expected)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	if PaletteColor(0) != ColorRed {
		t.Errorf("PaletteColor(0) = %v, expected %v", PaletteColor(0), ColorRed)
	}
	if PaletteColor(len(palette)) != PaletteColor(0) {
		t.Error("PaletteColor should cycle")
	}
	for i := 0; i < 2*len(palette); i++ {
		if c := PaletteColor(i); c == ColorDefault || c == ColorGray {
			t.Errorf("PaletteColor(%d) = %v, reserved color", i, c)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSelect)
	f.Set(ActionNone)
	f.Set(ActionRight)
	f.Set(ActionSelect)

	if !f.Has(ActionRight) {
		t.Error("Has(Right) should be true")
	}
	if f.Has(ActionHint) {
		t.Error("Has(Hint) should be false")
	}
	got := f.Actions()
	if len(got) != 3 || got[0] != ActionSelect || got[1] != ActionRight || got[2] != ActionSelect {
		t.Errorf("Actions() = %v, expected [Select Right Select]", got)
	}

	f.Clear()
	if len(f.Actions()) != 0 {
		t.Errorf("Actions() after Clear = %v, expected empty", f.Actions())
	}
}
