package config

import "github.com/pkg/errors"

// ErrConfig is the sentinel wrapped by every configuration validation
// failure: an unrecognized mode, conflict-resolution kind, transaction
// mode, or a malformed key-column list. Batch size is never rejected -
// ToOrchestratorInputs clamps it to >= 1 instead.
var ErrConfig = errors.New("config: invalid configuration")
