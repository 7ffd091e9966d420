// Package symbol implements the template mini-language used to render clock
// snapshots. A template is literal text with "%c" placeholders, where c is a
// single character. Each placeholder whose character is registered in a
// [Registry] is replaced by the output of the function bound to it; every
// other placeholder is copied through untouched.
//
// A Registry is generic over a context type C, the value handed to every
// rendering function alongside the snapshot. This lets rendering functions
// reach back into whatever owns the registry without binding receivers.
package symbol
