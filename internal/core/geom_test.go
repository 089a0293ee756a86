package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(0, 0), V(2, 2), 1),
			expected: true,
		},
		{
			name:     "overlapping corners",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(8, 8), V(10, 10), 1),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(20, 0), V(10, 10), 1),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(0, -20), V(10, 10), 1),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(10, 0), V(10, 10), 1),
			expected: false,
		},
		{
			name:     "touching top edge",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(0, 10), V(10, 10), 1),
			expected: false,
		},
		{
			name:     "touching corners",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(10, 10), V(10, 10), 1),
			expected: false,
		},
		{
			name:     "touching at scale 1, overlapping at scale 2",
			a:        BoxAt(V(0, 0), V(10, 10), 2),
			b:        BoxAt(V(10, 0), V(10, 10), 2),
			expected: true,
		},
		{
			name:     "overlap on x only",
			a:        BoxAt(V(0, 0), V(10, 10), 1),
			b:        BoxAt(V(3, 30), V(10, 10), 1),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxAtHalfExtent(t *testing.T) {
	b := BoxAt(V(5, -5), V(14, 13), 2)
	if b.Half != V(14, 13) {
		t.Errorf("Half = %+v, expected {14 13}", b.Half)
	}
	if b.Center != V(5, -5) {
		t.Errorf("Center = %+v, expected {5 -5}", b.Center)
	}
}

func TestVec2(t *testing.T) {
	v := V(1, -2).Add(V(3, 4)).Scale(0.5)
	if v != V(2, 1) {
		t.Errorf("got %+v, expected {2 1}", v)
	}
	if !(Vec2{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if V(0, 1).IsZero() {
		t.Error("non-zero vector should not report IsZero")
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
		{"outside below", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(-3.5) != 3.5 || AbsF(2) != 2 || AbsF(0) != 0 {
		t.Error("AbsF returned wrong value")
	}
}
