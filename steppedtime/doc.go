// Package steppedtime provides a clock that only moves when told to. Timers
// created with [Clock.AfterFunc] fire synchronously, on the goroutine that
// moves the clock past their deadline, which makes code driven by them fully
// deterministic under test.
package steppedtime
