// Package healthcheck provides health and readiness check functionality
// Following the Health Check API pattern for cloud-native applications
package healthcheck

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status represents the health status
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// Check represents one health check result
type Check struct {
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"duration_ms"`
}

// Response represents the aggregated health check response
type Response struct {
	Status        Status        `json:"status"`
	Version       string        `json:"version"`
	Timestamp     time.Time     `json:"timestamp"`
	Checks        []Check       `json:"checks"`
	TotalDuration time.Duration `json:"total_duration_ms"`
}

// CheckFunc probes one dependency
type CheckFunc func(ctx context.Context) error

// HealthCheck manages health checks. Results are cached briefly so probe
// storms do not hammer dependencies.
type HealthCheck struct {
	version  string
	checks   map[string]CheckFunc
	names    []string
	logger   *zap.Logger
	timeout  time.Duration
	mu       sync.RWMutex
	cache    *Response
	cacheTTL time.Duration
}

// New creates a new health check instance
func New(version string, logger *zap.Logger) *HealthCheck {
	return &HealthCheck{
		version:  version,
		checks:   make(map[string]CheckFunc),
		logger:   logger,
		timeout:  5 * time.Second,
		cacheTTL: 5 * time.Second,
	}
}

// Register registers a named dependency check. Registration order is the
// report order.
func (h *HealthCheck) Register(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.checks[name]; !exists {
		h.names = append(h.names, name)
	}
	h.checks[name] = check
}

// SetCacheTTL sets the cache TTL for health check responses
func (h *HealthCheck) SetCacheTTL(ttl time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cacheTTL = ttl
}

// Check performs all registered checks
func (h *HealthCheck) Check(ctx context.Context) Response {
	h.mu.RLock()
	if h.cache != nil && time.Since(h.cache.Timestamp) < h.cacheTTL {
		cached := *h.cache
		h.mu.RUnlock()
		return cached
	}
	names := make([]string, len(h.names))
	copy(names, h.names)
	h.mu.RUnlock()

	start := time.Now()
	response := Response{
		Version:   h.version,
		Timestamp: start,
		Status:    StatusHealthy,
		Checks:    []Check{},
	}

	for _, name := range names {
		h.mu.RLock()
		check := h.checks[name]
		h.mu.RUnlock()

		result := h.runCheck(ctx, name, check)
		if result.Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		}
		response.Checks = append(response.Checks, result)
	}

	response.TotalDuration = time.Since(start)

	h.mu.Lock()
	h.cache = &response
	h.mu.Unlock()

	return response
}

// Ready returns nil when every registered check passes
func (h *HealthCheck) Ready(ctx context.Context) error {
	response := h.Check(ctx)
	if response.Status == StatusUnhealthy {
		for _, check := range response.Checks {
			if check.Status == StatusUnhealthy {
				return fmt.Errorf("dependency %s unhealthy: %s", check.Name, check.Message)
			}
		}
		return fmt.Errorf("service unhealthy")
	}
	return nil
}

func (h *HealthCheck) runCheck(ctx context.Context, name string, check CheckFunc) Check {
	checkCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	result := Check{
		Name:        name,
		Status:      StatusHealthy,
		LastChecked: start,
	}

	if err := check(checkCtx); err != nil {
		result.Status = StatusUnhealthy
		result.Message = err.Error()
		h.logger.Warn("Health check failed",
			zap.String("check", name),
			zap.Error(err),
		)
	}

	result.Duration = time.Since(start)
	return result
}
