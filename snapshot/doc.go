// Package snapshot decomposes an instant into the fields a clock display
// needs: hours, minutes and seconds split into tens and ones digits, plus the
// meridian. A [Snapshot] is a plain value and is never modified after
// [Decompose] builds it.
package snapshot
