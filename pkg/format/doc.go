// Package format renders model and diff values for humans and for files.
//
// Script reassembles a Codebase into a single export script, the inverse of
// pkg/parser. Report renders a diff.Report as a colored change listing with
// a summary table; colors follow the conventions of the original desktop
// tool (green added, red removed, yellow changed) with magenta for cascade
// entries.
package format
