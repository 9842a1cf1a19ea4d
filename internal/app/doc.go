// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML, builds the zap logger, the preference store, the
// haptic sink, the calculator service and the configured motion source, and
// exposes them via the Wire struct for commands to use. Serve runs the
// optional HTTP listener for pushed motion samples and /metrics.
package app
