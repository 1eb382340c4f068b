package health

import "kuro-ml/internal/version"

const greeting = "Kuro-ML sidecar running"

// Status is the health check payload.
type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Greeting is the root endpoint payload.
type Greeting struct {
	Message string `json:"message"`
}

// Service encapsulates health-related checks.
type Service struct {
	version string
}

// NewService constructs a new health service reporting the build version.
func NewService() *Service {
	return &Service{version: version.Version}
}

// Status reports that the process is running. It never fails.
func (s *Service) Status() Status {
	return Status{Status: "ok", Version: s.version}
}

// Greeting returns the fixed root payload.
func (s *Service) Greeting() Greeting {
	return Greeting{Message: greeting}
}
