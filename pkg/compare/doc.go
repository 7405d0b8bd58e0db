// Package compare provides generic comparison utilities for structural
// equality testing.
//
// These helpers remove the boilerplate from Equal() methods on model types:
// nil checking, pointer comparisons, and slice/map comparisons. They are
// used by the vql model types and by the diff engine's tests.
package compare
