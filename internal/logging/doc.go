// Package logging assembles the structured slog loggers used by assetkit.
//
// It owns the console and JSON handlers, routes records into the state
// directory log file (optionally teed to stderr), and stamps every record with
// the run identifier that the history store also records, so a log line can be
// traced back to the run that produced it.
package logging
