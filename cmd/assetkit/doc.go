// Package main hosts the assetkit CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, opens the run history
// store, and hands each invocation to the strip or vocab packages. Console
// output is plain text meant for a human; structured records go to the log
// file in the state directory.
package main
