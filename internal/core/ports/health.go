package ports

import "context"

// HealthChecker reports the health of one external dependency.
type HealthChecker interface {
	// Ping returns nil when the dependency is reachable.
	Ping(ctx context.Context) error
	// Name is the label used in the /health report ("postgresql", "redis").
	Name() string
}
