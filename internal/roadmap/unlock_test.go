package roadmap

import "testing"

func locksOf(gates []GatedTask) map[int]bool {
	m := make(map[int]bool, len(gates))
	for _, g := range gates {
		m[g.TaskID] = g.Locked
	}
	return m
}

func TestComputeLocks(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int
		passing map[int]bool
		want    map[int]bool
	}{
		{
			name:    "nothing passed only first unlocked",
			ids:     []int{1, 2, 3, 4},
			passing: map[int]bool{},
			want:    map[int]bool{1: false, 2: true, 3: true, 4: true},
		},
		{
			name:    "alternating passes unlock their successors",
			ids:     []int{1, 2, 3, 4},
			passing: map[int]bool{1: true, 3: true},
			want:    map[int]bool{1: false, 2: false, 3: false, 4: false},
		},
		{
			name:    "unlock does not propagate past an unpassed task",
			ids:     []int{1, 2, 3, 4},
			passing: map[int]bool{1: true},
			want:    map[int]bool{1: false, 2: false, 3: true, 4: true},
		},
		{
			name:    "failing record counts as never passed",
			ids:     []int{1, 2, 3},
			passing: map[int]bool{1: false, 2: false},
			want:    map[int]bool{1: false, 2: true, 3: true},
		},
		{
			name:    "all passed all unlocked",
			ids:     []int{5, 6, 7},
			passing: map[int]bool{5: true, 6: true, 7: true},
			want:    map[int]bool{5: false, 6: false, 7: false},
		},
		{
			name:    "min id is the baseline even when not first positionally",
			ids:     []int{9, 3, 12},
			passing: map[int]bool{},
			want:    map[int]bool{9: true, 3: false, 12: true},
		},
		{
			name:    "single task",
			ids:     []int{42},
			passing: map[int]bool{},
			want:    map[int]bool{42: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gates := ComputeLocks(tt.ids, tt.passing)
			if len(gates) != len(tt.ids) {
				t.Fatalf("got %d gates, want %d", len(gates), len(tt.ids))
			}
			got := locksOf(gates)
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("task %d: locked = %v, want %v", id, got[id], want)
				}
			}
		})
	}
}

func TestComputeLocksEmpty(t *testing.T) {
	if gates := ComputeLocks(nil, nil); gates != nil {
		t.Errorf("ComputeLocks(nil) = %v, want nil", gates)
	}
}

func TestComputeLocksPreservesOrder(t *testing.T) {
	ids := []int{10, 20, 30}
	gates := ComputeLocks(ids, map[int]bool{10: true})
	for i, g := range gates {
		if g.TaskID != ids[i] {
			t.Errorf("gates[%d].TaskID = %d, want %d", i, g.TaskID, ids[i])
		}
	}
}
