// Package log provides the application's slog setup.
//
// The pipeline logs page paths, tag names, and occasionally markup
// snippets at debug level. TruncateHandler wraps the output handler and
// caps oversized string attribute values so a single candidate's markup
// cannot flood the log.
package log
