// Package logging builds slog loggers for the prism CLI.
//
// Two output formats are supported: a console handler emitting timestamped
// key=value lines with a component prefix, and the standard JSON handler
// with lowercased levels and RFC 3339 timestamps. The "auto" format picks
// console on a terminal and JSON otherwise. Output can fan out to stderr and
// a log file under the configured log directory.
package logging
