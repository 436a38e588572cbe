package schedq

import (
	"context"
	"fmt"

	"github.com/viant/afs/storage"
	"github.com/viant/schedq/bench"
	"github.com/viant/schedq/model/task"
	"github.com/viant/schedq/scheduler"
	"github.com/viant/schedq/service/loader"
	"github.com/viant/schedq/tracing"
)

// Service is the high-level façade: it loads task sets, runs simulations and
// drives the sorting benchmark harness.
type Service struct {
	config          *Config
	loader          *loader.Service
	loaderBaseURL   string
	loaderFsOptions []storage.Option
}

// New creates a service with the supplied options applied on top of the
// package defaults.
func New(options ...Option) *Service {
	s := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.loader == nil {
		s.loader = loader.New(
			loader.WithBaseURL(s.loaderBaseURL),
			loader.WithFsOptions(s.loaderFsOptions...))
	}
	return s
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// LoadTaskSet reads a task-set document from the supplied URL.
func (s *Service) LoadTaskSet(ctx context.Context, URL string) (*loader.TaskSet, error) {
	ctx, span := tracing.StartSpan(ctx, "schedq.loadTaskSet")
	span.WithAttributes(map[string]string{"url": URL})
	set, err := s.loader.Load(ctx, URL)
	tracing.EndSpan(span, err)
	return set, err
}

// Simulate runs the discrete-time simulation over the supplied tasks with
// the given inclusive horizon.
func (s *Service) Simulate(ctx context.Context, tasks []task.Task, maxTime int) ([]scheduler.Entry, error) {
	ctx, span := tracing.StartSpan(ctx, "schedq.simulate")
	span.WithAttributes(map[string]string{
		"tasks":   fmt.Sprintf("%d", len(tasks)),
		"maxTime": fmt.Sprintf("%d", maxTime),
	})
	timeline, err := scheduler.SimulateContext(ctx, tasks, maxTime)
	tracing.EndSpan(span, err)
	return timeline, err
}

// SimulateTaskSet runs the simulation for a loaded task set, using the set's
// horizon when present and the configured default otherwise.
func (s *Service) SimulateTaskSet(ctx context.Context, set *loader.TaskSet) ([]scheduler.Entry, error) {
	if set == nil {
		return nil, fmt.Errorf("task set is nil")
	}
	maxTime := s.config.Scheduler.MaxTime
	if set.MaxTime != nil {
		maxTime = *set.MaxTime
	}
	return s.Simulate(ctx, set.Tasks, maxTime)
}

// RunBench measures the sorting routines with the configured grid.
func (s *Service) RunBench(ctx context.Context) (*bench.Report, error) {
	_, span := tracing.StartSpan(ctx, "schedq.bench")
	report, err := bench.Run(bench.Options{
		Trials: s.config.Bench.Trials,
		Sizes:  s.config.Bench.Sizes,
	})
	tracing.EndSpan(span, err)
	return report, err
}
