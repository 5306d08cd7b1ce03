// Package logs reads back the assetkit log file.
//
// Tail keeps a bounded ring of the most recent matching lines so large log
// files never load fully into memory. Lines can be narrowed to a single run
// by its run ID, which every record written during a run carries.
package logs
