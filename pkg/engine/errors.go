package engine

import "github.com/pkg/errors"

// Sentinel errors for the taxonomy described in the design: ConfigError,
// DriverError, ValidationError, and Cancelled. PlanError is not declared
// here because the planner is total and never returns one.
var (
	// ErrConfig marks an invalid mode/key-column/config combination.
	ErrConfig = errors.New("invalid configuration")

	// ErrDriver marks a failure returned by an engine driver. Reads
	// wrap it as fatal for the enclosing table; writes wrap it per-row
	// and are accumulated rather than propagated.
	ErrDriver = errors.New("driver error")

	// ErrCancelled marks a cooperative stop requested via a
	// CancelToken. It is a terminal status, not a failure.
	ErrCancelled = errors.New("migration cancelled")

	// ErrUnsupported marks an operation the core intentionally does
	// not implement (e.g. custom-expression row matching).
	ErrUnsupported = errors.New("unsupported operation")
)
