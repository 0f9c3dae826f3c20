package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbmig/pkg/chdriver"
	"github.com/pseudomuto/dbmig/pkg/engine"
)

// ErrUnsupportedDSN is returned when a DSN names a scheme no shipped
// driver handles. This module ships one reference driver (ClickHouse);
// wiring up another engine means implementing engine.EngineDriver and
// registering its scheme here.
var ErrUnsupportedDSN = errors.New("unsupported DSN scheme")

// resolveDriver builds the EngineDriver for a DSN. Only clickhouse://
// is recognized, per pkg/chdriver being the one concrete driver this
// module ships.
func resolveDriver(dsn string) (engine.EngineDriver, error) {
	const scheme = "clickhouse://"
	if !strings.HasPrefix(dsn, scheme) {
		return nil, errors.Wrapf(ErrUnsupportedDSN, "%q (expected a %q DSN)", dsn, scheme)
	}
	return chdriver.NewClient(strings.TrimPrefix(dsn, scheme)), nil
}
