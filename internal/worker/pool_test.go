package worker_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/surveyadmin/backend/internal/worker"
)

func TestPool_RunsAllJobs(t *testing.T) {
	pool := worker.NewPool[int](3, 10)

	for i := 0; i < 5; i++ {
		n := i
		pool.Submit(strconv.Itoa(n), func() int { return n * n })
	}
	pool.Close()

	var got []int
	ids := map[string]bool{}
	for res := range pool.Results() {
		got = append(got, res.Output)
		ids[res.JobID] = true
	}

	sort.Ints(got)
	want := []int{0, 1, 4, 9, 16}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if len(ids) != 5 {
		t.Errorf("expected 5 distinct job IDs, got %d", len(ids))
	}
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	pool := worker.NewPool[string](0, 1)
	pool.Close()
	pool.Close()

	if _, ok := <-pool.Results(); ok {
		t.Error("expected results channel to be closed")
	}
}
