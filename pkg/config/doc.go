// Package config decodes a YAML migration request into the typed
// configuration the orchestrator needs: table mappings, mode, conflict
// policy, and batch/retry tuning.
package config
