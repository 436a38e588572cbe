package schedq

import (
	"github.com/viant/afs/storage"
	"github.com/viant/schedq/service/loader"
)

// Option customises the Service.
type Option func(s *Service)

// WithConfig sets the service configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLoader sets the task-set loader.
func WithLoader(service *loader.Service) Option {
	return func(s *Service) {
		s.loader = service
	}
}

// WithMaxTime sets the default simulation horizon.
func WithMaxTime(maxTime int) Option {
	return func(s *Service) {
		s.config.Scheduler.MaxTime = maxTime
	}
}

// WithTaskSetBaseURL sets the base URL task-set locations resolve against.
func WithTaskSetBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.loaderBaseURL = baseURL
	}
}

// WithTaskSetFsOptions sets the storage options used to read task-set
// documents (for example an embedded file system).
func WithTaskSetFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.loaderFsOptions = options
	}
}
