package health

import (
	"context"
	"sync"
	"time"
)

// CheckFunc probes one component. It returns nil when the component is
// healthy.
type CheckFunc func(ctx context.Context) error

// CheckResult is the outcome of a single component probe.
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Status aggregates component probes into an overall verdict.
type Status struct {
	// Status is "ok" or "unhealthy".
	Status string `json:"status"`

	Checks map[string]CheckResult `json:"checks,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// Checker runs registered component probes.
type Checker struct {
	mu           sync.RWMutex
	checks       map[string]CheckFunc
	checkTimeout time.Duration
}

// New creates a checker. A zero timeout defaults to 5 seconds per probe.
func New(checkTimeout time.Duration) *Checker {
	if checkTimeout == 0 {
		checkTimeout = 5 * time.Second
	}
	return &Checker{
		checks:       make(map[string]CheckFunc),
		checkTimeout: checkTimeout,
	}
}

// RegisterCheck adds a named component probe, replacing any existing
// probe with the same name.
func (c *Checker) RegisterCheck(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// CheckLiveness reports whether the process is alive. It never probes
// components and is safe for high-frequency polling.
func (c *Checker) CheckLiveness(ctx context.Context) Status {
	return Status{Status: "ok", Timestamp: time.Now().UTC()}
}

// CheckReadiness probes every registered component. The overall status
// is "unhealthy" as soon as one probe fails.
func (c *Checker) CheckReadiness(ctx context.Context) Status {
	c.mu.RLock()
	checks := make(map[string]CheckFunc, len(c.checks))
	for name, check := range c.checks {
		checks[name] = check
	}
	c.mu.RUnlock()

	status := Status{
		Status:    "ok",
		Checks:    make(map[string]CheckResult, len(checks)),
		Timestamp: time.Now().UTC(),
	}

	for name, check := range checks {
		probeCtx, cancel := context.WithTimeout(ctx, c.checkTimeout)
		err := check(probeCtx)
		cancel()

		if err != nil {
			status.Status = "unhealthy"
			status.Checks[name] = CheckResult{Status: "unhealthy", Message: err.Error()}
			continue
		}
		status.Checks[name] = CheckResult{Status: "ok"}
	}

	return status
}
