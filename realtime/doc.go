// Package realtime provides the wall-clock source for an engine. It is a
// thin wrapper around the [time] package whose [Clock] may optionally pin
// every reading to a fixed location.
package realtime
