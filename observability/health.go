package observability

import (
	"context"
	"strconv"
)

// HealthStatus represents the health state of a component or service.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDown     HealthStatus = "down"
	HealthStatusDegraded HealthStatus = "degraded"
)

// Health describes the reachability of one upstream.
type Health struct {
	Name    string            `json:"name" yaml:"name"`
	Status  HealthStatus      `json:"status" yaml:"status"`
	Message string            `json:"message,omitempty" yaml:"message,omitempty"`
	Details map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
}

// HealthFromStatusCode maps a probe status code to a Health. 2xx is up, any
// other code is down.
func HealthFromStatusCode(name, target string, code int) Health {
	h := Health{
		Name:    name,
		Status:  HealthStatusUp,
		Details: map[string]string{"target": target, "status_code": strconv.Itoa(code)},
	}
	if code < 200 || code >= 300 {
		h.Status = HealthStatusDown
		h.Message = "probe failed"
	}
	return h
}

// ServiceHealth aggregates the health of several upstreams.
type ServiceHealth struct {
	Service    string       `json:"service" yaml:"service"`
	Status     HealthStatus `json:"status" yaml:"status"`
	Version    string       `json:"version,omitempty" yaml:"version,omitempty"`
	Components []Health     `json:"components,omitempty" yaml:"components,omitempty"`
}

// HealthChecker is implemented by clients that can probe their upstream.
type HealthChecker interface {
	CheckHealth(ctx context.Context) Health
}

// NewServiceHealth creates a ServiceHealth with status up.
func NewServiceHealth(service, version string) *ServiceHealth {
	return &ServiceHealth{
		Service: service,
		Status:  HealthStatusUp,
		Version: version,
	}
}

// AddComponent adds a component result and degrades the overall status.
// A single down component makes the service degraded; all components down
// makes it down.
func (sh *ServiceHealth) AddComponent(ch Health) {
	sh.Components = append(sh.Components, ch)

	down := 0
	for _, c := range sh.Components {
		if c.Status == HealthStatusDown {
			down++
		}
	}
	switch {
	case down == 0:
		sh.Status = HealthStatusUp
	case down == len(sh.Components):
		sh.Status = HealthStatusDown
	default:
		sh.Status = HealthStatusDegraded
	}
}
