package entity

import "time"

// UsageEvent records one API invocation and whether it succeeded.
// Events are append-only; aggregate success rates are derived from them.
type UsageEvent struct {
	ID        int64
	Endpoint  string
	Success   bool
	CreatedAt time.Time
}

// Validate checks the invariants a usage event must satisfy before persistence.
func (e *UsageEvent) Validate() error {
	if e.Endpoint == "" {
		return &ValidationError{Field: "endpoint", Message: "is required"}
	}
	return nil
}
