package prefetch

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int
		size    int
		want    int
	}{
		{"equal", 4, 4, 10, 0},
		{"adjacent", 4, 5, 10, 1},
		{"plain", 1, 4, 10, 3},
		{"across the seam", 9, 0, 10, 1},
		{"across the seam far", 8, 1, 10, 3},
		{"antipodal", 0, 5, 10, 5},
		{"size two", 0, 1, 2, 1},
		{"size one", 0, 0, 1, 0},
		{"non-positive size", 3, 9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b, tt.size); got != tt.want {
				t.Errorf("Distance(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.size, got, tt.want)
			}
			if got := Distance(tt.b, tt.a, tt.size); got != tt.want {
				t.Errorf("Distance(%d, %d, %d) = %d, want %d (symmetry)", tt.b, tt.a, tt.size, got, tt.want)
			}
		})
	}
}

func TestDistanceNeverExceedsHalf(t *testing.T) {
	const size = 11
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			if d := Distance(a, b, size); d > size/2 {
				t.Fatalf("Distance(%d, %d, %d) = %d, exceeds %d", a, b, size, d, size/2)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		index, size, want int
	}{
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 0},
		{13, 10, 3},
		{-1, 10, 9},
		{-10, 10, 0},
		{-13, 10, 7},
		{5, 0, 5}, // degenerate space passes through
	}

	for _, tt := range tests {
		if got := normalize(tt.index, tt.size); got != tt.want {
			t.Errorf("normalize(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.want)
		}
	}
}
