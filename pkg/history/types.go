package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chargekit/ocpicheck/pkg/ocpi"
	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
)

// Record is one stored validation outcome.
type Record struct {
	// ID is a generated UUID.
	ID string `json:"id"`

	// ObjectType is the validated object kind.
	ObjectType string `json:"object_type"`

	// Source identifies where the payload came from: a file path, "api",
	// or "watch".
	Source string `json:"source"`

	PayloadSize int  `json:"payload_size"`
	IsValid     bool `json:"is_valid"`

	// Errors holds the validation errors for invalid payloads.
	Errors []*ocpiErrors.Error `json:"errors,omitempty"`

	// Duration is the validation latency.
	Duration time.Duration `json:"duration"`

	CreatedAt time.Time `json:"created_at"`
}

// NewRecord builds a Record from a validation result.
func NewRecord(result ocpi.ValidationResult, source string, payloadSize int, elapsed time.Duration) *Record {
	return &Record{
		ID:          uuid.NewString(),
		ObjectType:  string(result.ObjectType),
		Source:      source,
		PayloadSize: payloadSize,
		IsValid:     result.IsValid,
		Errors:      result.Errors,
		Duration:    elapsed,
		CreatedAt:   time.Now().UTC(),
	}
}

// Filter narrows a List query. Zero values match everything.
type Filter struct {
	// ObjectType restricts results to one object kind.
	ObjectType string

	// OnlyInvalid restricts results to failed validations.
	OnlyInvalid bool

	// Limit caps the number of returned records; zero means no cap.
	Limit int
}

// Store persists validation records. Implementations must be safe for
// concurrent use.
type Store interface {
	// Save persists a record.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves one record by ID. Returns nil if not found.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns records matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Record, error)

	// Prune removes records created before the cutoff and returns how
	// many were deleted.
	Prune(ctx context.Context, olderThan time.Time) (int, error)

	// Close releases resources. The store must not be used afterwards.
	Close() error
}
