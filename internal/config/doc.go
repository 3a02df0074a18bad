// Package config holds run configuration: tuned similarity thresholds,
// mining limits, concurrency, and output layout.
//
// Configuration is layered: compiled defaults, then an optional YAML
// file (.partial-extractor in the working directory, or config.yaml in
// the XDG config directory), then CLI flags. Validation happens once
// after layering, before any pipeline stage runs, and returns sentinel
// errors matchable with errors.Is.
package config
