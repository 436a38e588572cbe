// Package loader reads task-set documents (YAML) from any location the
// virtual file system understands: local paths, URLs, in-memory locations.
package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/schedq/internal/idgen"
	"github.com/viant/schedq/model/task"
	"gopkg.in/yaml.v3"
)

// TaskSet is the on-disk document shape: a named collection of tasks plus an
// optional simulation horizon override.
type TaskSet struct {
	Name    string      `json:"name,omitempty" yaml:"name,omitempty"`
	MaxTime *int        `json:"maxTime,omitempty" yaml:"maxTime,omitempty"`
	Tasks   []task.Task `json:"tasks" yaml:"tasks"`
}

// Service loads and validates task-set documents.
type Service struct {
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
}

// Option customises the loader.
type Option func(s *Service)

// WithBaseURL resolves relative document locations against the supplied base.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) { s.baseURL = baseURL }
}

// WithFsOptions passes storage options (for example an embedded file system)
// to every download.
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.fsOptions = options }
}

// New creates a loader backed by the default virtual file system.
func New(options ...Option) *Service {
	s := &Service{fs: afs.New()}
	for _, option := range options {
		option(s)
	}
	return s
}

// Load reads a task-set document from the specified URL. A missing extension
// defaults to .yaml; a relative URL resolves against the configured base.
func (s *Service) Load(ctx context.Context, URL string) (*TaskSet, error) {
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	if s.baseURL != "" && url.IsRelative(URL) {
		URL = url.Join(s.baseURL, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load task set from %s: %w", URL, err)
	}
	set, err := s.decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task set from %s: %w", URL, err)
	}
	if set.Name == "" {
		set.Name = nameFromURL(URL)
	}
	return set, nil
}

// DecodeYAML decodes and validates a task-set document. Unnamed sets get an
// anonymous name.
func (s *Service) DecodeYAML(encoded []byte) (*TaskSet, error) {
	set, err := s.decode(encoded)
	if err != nil {
		return nil, err
	}
	if set.Name == "" {
		set.Name = fmt.Sprintf("anonymous-%s", idgen.New())
	}
	return set, nil
}

func (s *Service) decode(encoded []byte) (*TaskSet, error) {
	set := &TaskSet{}
	if err := yaml.Unmarshal(encoded, set); err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks the document invariants the queue and scheduler rely on:
// every task has an id, ids are unique, arrivals are non-negative.
func (t *TaskSet) Validate() error {
	if len(t.Tasks) == 0 {
		return fmt.Errorf("task set has no tasks")
	}
	seen := make(map[string]bool, len(t.Tasks))
	for i, item := range t.Tasks {
		if item.ID == "" {
			return fmt.Errorf("task[%d]: id is required", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("task[%d]: duplicate id %v", i, item.ID)
		}
		seen[item.ID] = true
		if item.ArrivalTime < 0 {
			return fmt.Errorf("task %v: arrivalTime must be >= 0, got %d", item.ID, item.ArrivalTime)
		}
	}
	if t.MaxTime != nil && *t.MaxTime < 0 {
		return fmt.Errorf("maxTime must be >= 0, got %d", *t.MaxTime)
	}
	return nil
}

func nameFromURL(URL string) string {
	base := filepath.Base(URL)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
