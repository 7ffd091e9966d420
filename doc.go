// Package currenttime keeps a live, formatted clock. An [Engine] holds the
// most recent [snapshot.Snapshot] of the time of day, refreshes it once per
// wall-clock second once started with [Engine.Init], and renders it into
// templates such as "%h:%m:%s %a" with [Engine.MkString].
//
// Templates are expanded by a registry of single-character symbols (see
// package [github.com/noodlebox/currenttime/symbol]). The defaults are
//
//	h  12-hour hour          1
//	H  24-hour hour          13
//	g  12-hour hour, padded  01
//	G  24-hour hour, padded  13
//	m  minutes, padded       21
//	s  seconds, padded       46
//	a  meridian              pm
//	A  meridian, uppercase   PM
//
// and more can be added with [Engine.AddSymbol]. Placeholders naming an
// unknown symbol are left as they are.
//
// Engines are independent of each other. The package-level functions operate
// on a default Engine, which may be swapped out with [SetDefault].
package currenttime
