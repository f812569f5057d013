// Package orchestrator wires the walk → load → transform → render → write
// sequence that mirrors an input tree of JSON arrays into an output tree of
// resource files, providing dependency injection friendly options for
// callers that need a different loader, renderer or logger.
package orchestrator
