package stats

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRunStatsOrderAndValues(t *testing.T) {
	m := NewRunStats(logrus.New())
	steps := []string{"copy-staging-events", "copy-staging-songs", "insert-songplays"}
	for i, name := range steps {
		w := m.AddStepWatcher(name)
		w.Stop(int64(i + 1))
	}
	got := m.GetStats()
	if len(got) != len(steps) {
		t.Fatal("expected one stats entry per step; got ", len(got))
	}
	for i, s := range got { // stats must come back in registration order...
		if s.StepName != steps[i] {
			t.Fatalf("expected step %v at position %v; got %v", steps[i], i, s.StepName)
		}
		if s.RowsAffected != int64(i+1) {
			t.Fatalf("expected %v rows for step %v; got %v", i+1, s.StepName, s.RowsAffected)
		}
	}
}

func TestStepWatcherStopIsIdempotent(t *testing.T) {
	w := NewStepWatcher(logrus.New(), "copy-staging-events")
	w.Stop(10)
	w.Stop(99)
	s := w.RenderStats()
	if s.RowsAffected != 10 { // the first Stop wins...
		t.Fatal("expected the first Stop to win; got ", s.RowsAffected)
	}
	if s.ElapsedTimeSec < 0 {
		t.Fatal("expected a non-negative elapsed time")
	}
}
