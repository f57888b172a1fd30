package stats

import (
	"fmt"
	"sync"
	"time"

	"github.com/cevaris/ordered_map"
	"github.com/richimp95/Project-Sparkify-AWS/logger"
)

type StatsFetcher interface {
	GetStats() []Stats
}

// RunStatsManager saves stats for each statement executed during a run.
// Statements register via AddStepWatcher and are reported in execution order.
type RunStatsManager struct {
	mu           sync.Mutex
	log          logger.Logger
	mapStepStats *ordered_map.OrderedMap // map containing StepWatcher{} details of all steps that we are gathering stats from.
}

// Stats is the rendered view of one step for logging and export.
type Stats struct {
	StepName       string  `json:"stepName"`
	ElapsedTimeSec float64 `json:"elapsedTimeSec"`
	RowsAffected   int64   `json:"rowsAffected"`
}

func (s Stats) String() string {
	return fmt.Sprintf("step %v: %v rows in %.2fs", s.StepName, s.RowsAffected, s.ElapsedTimeSec)
}

func NewRunStats(log logger.Logger) *RunStatsManager {
	return &RunStatsManager{log: log, mapStepStats: ordered_map.NewOrderedMap()}
}

// AddStepWatcher creates a new StepWatcher and saves it into this RunStatsManager struct.
// To be used per statement as it starts executing.
func (t *RunStatsManager) AddStepWatcher(stepName string) *StepWatcher {
	t.mu.Lock()
	defer t.mu.Unlock()
	sw := NewStepWatcher(t.log, stepName)
	t.mapStepStats.Set(stepName, sw)
	return sw
}

// LogStats outputs the stats of each registered step.
func (t *RunStatsManager) LogStats() {
	t.mu.Lock()
	defer t.mu.Unlock()
	iter := t.mapStepStats.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() { // for each registered step...
		t.log.Info(kv.Value.(*StepWatcher).RenderStats().String())
	}
}

// GetStats implements interface StatsFetcher{}.
func (t *RunStatsManager) GetStats() []Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	iter := t.mapStepStats.IterFunc()
	statsList := make([]Stats, 0)
	for kv, ok := iter(); ok; kv, ok = iter() { // for each registered step...
		statsList = append(statsList, kv.Value.(*StepWatcher).RenderStats())
	}
	return statsList
}

// StepWatcher captures elapsed time and rows affected for one statement.
type StepWatcher struct {
	log          logger.Logger
	stepName     string
	startTime    time.Time
	elapsed      time.Duration
	rowsAffected int64
	stopped      bool
}

func NewStepWatcher(log logger.Logger, stepName string) *StepWatcher {
	return &StepWatcher{log: log, stepName: stepName, startTime: time.Now()}
}

// Stop records the rows affected and freezes the elapsed time.
func (n *StepWatcher) Stop(rowsAffected int64) {
	if n.stopped { // if a step is stopped twice keep the first timing...
		return
	}
	n.elapsed = time.Since(n.startTime)
	n.rowsAffected = rowsAffected
	n.stopped = true
	n.log.Debug("STATS: ", n.stepName, " affected ", rowsAffected, " rows in ", n.elapsed)
}

func (n *StepWatcher) RenderStats() Stats {
	elapsed := n.elapsed
	if !n.stopped { // if the step is still running...
		elapsed = time.Since(n.startTime)
	}
	return Stats{
		StepName:       n.stepName,
		ElapsedTimeSec: elapsed.Seconds(),
		RowsAffected:   n.rowsAffected,
	}
}
