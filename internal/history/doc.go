// Package history records assetkit runs in SQLite.
//
// Every strip or vocab invocation opens a Run, appends one RunItem per file it
// touched, and finishes the run with a status and a one-line summary. The
// database lives in the state directory and is append-only from the tools'
// point of view; `assetkit history` reads it back.
//
// Schema changes are applied from the embedded migrations directory in file
// name order.
package history
