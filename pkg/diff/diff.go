package diff

import "github.com/vqltools/vqlkeeper/pkg/vql"

type (
	// Change describes one object present in both models whose content hash
	// differs. Both raw texts are carried so a presentation layer can render
	// a textual diff without another model lookup.
	Change struct {
		Identity vql.Identity
		OldCode  string
		NewCode  string
	}

	// Report is the result of comparing two code base snapshots.
	//
	// Added, Removed, and Changed are disjoint: an identity appears in at
	// most one of them. Cascade contains identities from the base model that
	// transitively depend on a removed object but are not themselves
	// removed. All four sequences are sorted by (kind, name).
	Report struct {
		// Base and Comp are the names of the compared snapshots.
		Base string
		Comp string

		// Added lists identities present in the comparison model only.
		Added []vql.Identity

		// Removed lists identities present in the base model only.
		Removed []vql.Identity

		// Changed lists objects present in both models with differing
		// content hashes.
		Changed []Change

		// Cascade lists base-model identities that transitively depend on a
		// removed object. Identities already in Removed are excluded.
		Cascade []vql.Identity
	}
)

// Compare computes the structural difference between two snapshots. The
// base model is the reference state; the comparison model is the new state.
//
// The result is computed from set operations over identities and content
// hashes, so it is identical for any iteration order: unchanged objects
// (present in both, equal hash) are implicit and never reported.
//
// Compare never fails. Dangling dependency references in either model are
// valid data with no defined edges.
func Compare(base, comp *vql.Codebase) *Report {
	report := &Report{
		Base: base.Name(),
		Comp: comp.Name(),
	}

	for _, id := range comp.Identities() {
		if _, ok := base.Lookup(id); !ok {
			report.Added = append(report.Added, id)
		}
	}

	removed := make(map[vql.Identity]struct{})
	for _, id := range base.Identities() {
		baseObj, _ := base.Lookup(id)

		compObj, ok := comp.Lookup(id)
		if !ok {
			report.Removed = append(report.Removed, id)
			removed[id] = struct{}{}
			continue
		}

		if baseObj.Hash() != compObj.Hash() {
			report.Changed = append(report.Changed, Change{
				Identity: id,
				OldCode:  baseObj.Code(),
				NewCode:  compObj.Code(),
			})
		}
	}

	report.Cascade = cascade(base, removed)

	// Identities() is already sorted, so Added/Removed/Changed inherit the
	// (kind, name) order; cascade sorts its own result.
	return report
}

// IsEmpty reports whether the two models were identical.
func (r *Report) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// ChangedIdentities returns the identities of all changed objects, sorted
// by (kind, name).
func (r *Report) ChangedIdentities() []vql.Identity {
	out := make([]vql.Identity, 0, len(r.Changed))
	for _, ch := range r.Changed {
		out = append(out, ch.Identity)
	}
	return out
}
