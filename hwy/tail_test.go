package hwy

import "testing"

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size      int
		wantFull  []int
		wantTail  int
		wantCount int
	}{
		{0, nil, -1, 0},
		{3, nil, 0, 3},
		{4, []int{0}, -1, 0},
		{9, []int{0, 4}, 8, 1},
		{12, []int{0, 4, 8}, -1, 0},
	}

	for _, tt := range tests {
		var full []int
		tail, count := -1, 0
		ProcessWithTail(tt.size,
			func(offset int) { full = append(full, offset) },
			func(offset, n int) { tail, count = offset, n },
		)

		if len(full) != len(tt.wantFull) {
			t.Errorf("size %d: full groups: got %v, want %v", tt.size, full, tt.wantFull)
			continue
		}
		for i := range full {
			if full[i] != tt.wantFull[i] {
				t.Errorf("size %d: full[%d]: got %d, want %d", tt.size, i, full[i], tt.wantFull[i])
			}
		}
		if tail != tt.wantTail || count != tt.wantCount {
			t.Errorf("size %d: tail: got (%d, %d), want (%d, %d)", tt.size, tail, count, tt.wantTail, tt.wantCount)
		}
	}
}
