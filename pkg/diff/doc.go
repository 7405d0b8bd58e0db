// Package diff implements the structural diff engine for VQL code bases.
//
// Compare takes two immutable snapshots (a base and a comparison model) and
// produces a Report of added, removed, and changed objects, plus the cascade
// set: objects in the base model that transitively depend on a removed
// object and are therefore silently invalidated when it disappears.
//
// The computation is pure and total: it never fails for well-formed models,
// performs no I/O, and is deterministic regardless of iteration order. All
// rendered sequences are sorted by (kind, name).
//
// Basic usage:
//
//	report := diff.Compare(base, comp)
//	if report.IsEmpty() {
//	    return nil // code bases are identical
//	}
//
//	for _, id := range report.Removed {
//	    fmt.Println("removed:", id)
//	}
//	for _, ch := range report.Changed {
//	    fmt.Println("changed:", ch.Identity)
//	}
package diff
