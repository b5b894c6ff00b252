package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ServiceMode represents the available service modes.
type ServiceMode string

const (
	// ServiceModeHTTP runs the HTTP API server.
	ServiceModeHTTP ServiceMode = "http"
	// ServiceModeRefetchWorker runs the missing-pushlog refetch worker.
	ServiceModeRefetchWorker ServiceMode = "refetch-worker"
)

// ValidServiceModes returns all valid service mode names.
func ValidServiceModes() []ServiceMode {
	return []ServiceMode{
		ServiceModeHTTP,
		ServiceModeRefetchWorker,
	}
}

// ParseServices parses a comma-delimited string of service names and returns the enabled services.
// It validates that all service names are valid and returns an error if any are invalid.
func ParseServices(servicesStr string) (map[ServiceMode]bool, error) {
	services := make(map[ServiceMode]bool)

	if servicesStr == "" {
		return services, errors.New("at least one service must be specified")
	}

	parts := strings.Split(servicesStr, ",")
	for _, part := range parts {
		serviceName := strings.TrimSpace(part)
		if serviceName == "" {
			continue
		}

		mode := ServiceMode(serviceName)
		switch mode {
		case ServiceModeHTTP, ServiceModeRefetchWorker:
			services[mode] = true
		default:
			return nil, fmt.Errorf(
				"invalid service name: %q (valid options: http, refetch-worker)",
				serviceName,
			)
		}
	}

	if len(services) == 0 {
		return nil, errors.New("at least one valid service must be specified")
	}

	return services, nil
}

const (
	defaultRefetchPollTimeout = 5 * time.Second
	defaultRefetchQueueKey    = "treeherder:refetch:missing-pushlogs"
)

// RefetchConfig contains refetch worker configuration.
type RefetchConfig struct {
	// QueueKey is the Redis list used for scheduled refetch tasks.
	QueueKey string `env:"REFETCH_QUEUE_KEY" envDefault:"treeherder:refetch:missing-pushlogs"`

	// PollTimeout is the blocking-pop timeout used by the worker loop.
	PollTimeout time.Duration `env:"REFETCH_POLL_TIMEOUT" envDefault:"5s"`
}

// Sanitize applies guardrails to refetch worker configuration values.
func (r *RefetchConfig) Sanitize() {
	if strings.TrimSpace(r.QueueKey) == "" {
		r.QueueKey = defaultRefetchQueueKey
	}
	if r.PollTimeout <= 0 {
		r.PollTimeout = defaultRefetchPollTimeout
	}
}
