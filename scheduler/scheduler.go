// Package scheduler runs a discrete-time, single-server simulation on top of
// the indexed priority queue: at each tick newly arrived tasks join the queue
// and at most one task is executed.
package scheduler

import (
	"context"
	"fmt"

	"github.com/viant/schedq/model/task"
	"github.com/viant/schedq/progress"
	"github.com/viant/schedq/queue"
)

// Entry records one executed task and the tick it ran at.
type Entry struct {
	Time int       `json:"time" yaml:"time"`
	Task task.Task `json:"task" yaml:"task"`
}

// Simulate buckets tasks by arrival time and walks ticks 0..maxTime
// inclusive. Each tick inserts that tick's arrivals and, when the queue is
// non-empty, extracts the maximum and appends it to the timeline. Ticks with
// an empty queue record nothing. Unexecuted tasks stay queued across ticks,
// so extraction order follows the queue's ordering contract transitively
// across the whole run.
func Simulate(tasks []task.Task, maxTime int) ([]Entry, error) {
	return SimulateContext(context.Background(), tasks, maxTime)
}

// SimulateContext behaves like Simulate; when ctx carries a progress tracker
// the scheduler additionally reports per-tick counters to it.
func SimulateContext(ctx context.Context, tasks []task.Task, maxTime int) ([]Entry, error) {
	if maxTime < 0 {
		return nil, fmt.Errorf("maxTime must be >= 0, got %d", maxTime)
	}
	byTime := make(map[int][]task.Task)
	for _, t := range tasks {
		if t.ArrivalTime < 0 {
			return nil, fmt.Errorf("task %v: arrivalTime must be >= 0, got %d", t.ID, t.ArrivalTime)
		}
		byTime[t.ArrivalTime] = append(byTime[t.ArrivalTime], t)
	}

	tracker, _ := progress.FromContext(ctx)
	pq := queue.New()
	var timeline []Entry
	for tick := 0; tick <= maxTime; tick++ {
		arrived := byTime[tick]
		for _, item := range arrived {
			if err := pq.Insert(item); err != nil {
				return nil, err
			}
		}
		executedCount := 0
		if !pq.IsEmpty() {
			executed, err := pq.ExtractMax()
			if err != nil {
				return nil, err
			}
			timeline = append(timeline, Entry{Time: tick, Task: executed})
			executedCount = 1
		}
		tracker.Update(tick, progress.Delta{
			Arrived:  len(arrived),
			Executed: executedCount,
			Pending:  len(arrived) - executedCount,
		})
	}
	return timeline, nil
}
