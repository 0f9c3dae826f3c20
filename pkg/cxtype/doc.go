// Package cxtype implements the canonical type model: a tagged variant
// that every supported engine's native type strings can be parsed into
// and rendered back from, plus lossy-mapping detection for cross-engine
// migrations.
//
// Parsing the trailing parenthesised parameter list common to every
// engine's type syntax (VARCHAR(255), DECIMAL(10,2), NVARCHAR(MAX),
// TEXT[]) is handled by a small alecthomas/participle/v2 grammar rather
// than hand-rolled string splitting, following the teacher's own use of
// participle for ClickHouse type strings in pkg/parser/datatype.go.
// Everything else - the per-engine rule tables and the lossiness
// warnings - is a fixed table keyed by engine.Tag, in the teacher's
// const-block-plus-switch style.
package cxtype
