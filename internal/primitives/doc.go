// Package primitives defines the serialisable description of a built
// dispatch table.
//
// A TableDescription carries no callbacks, only their names, so it can be
// written to JSON or YAML, rendered as a graph, diffed and versioned. States
// and events are referred to by index; index len(States) is the invalid
// sentinel state.
package primitives
