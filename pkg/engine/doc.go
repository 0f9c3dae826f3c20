// Package engine defines the capability surface the core consumes from a
// concrete database engine, without ever depending on any engine-specific
// type.
//
// The core (schema diff, data comparator, planner, SQL generator,
// executor, orchestrator) is polymorphic over EngineDriver: it only ever
// calls the methods declared here. Concrete per-engine network drivers
// live outside this module; pkg/chdriver ships one reference adapter
// (ClickHouse) used by integration tests, and pkg/engine.MemoryDriver is
// an in-memory fake used by unit tests.
package engine
