package vql

import (
	"sort"
	"strings"
)

// Identity uniquely identifies an object within one Codebase: its kind plus
// its case-normalized name. Identity is a comparable value type and is used
// as the map key for all model lookups and set operations.
type Identity struct {
	Kind Kind
	Name string
}

// NewIdentity creates an Identity with the name normalized to lower case.
// Denodo treats object names case-insensitively, so two fragments that spell
// the same name differently refer to the same object.
func NewIdentity(kind Kind, name string) Identity {
	return Identity{
		Kind: kind,
		Name: strings.ToLower(strings.TrimSpace(name)),
	}
}

// String renders the identity as "<KIND> <name>", e.g. "BASE VIEWS orders".
func (id Identity) String() string {
	return string(id.Kind) + " " + id.Name
}

// Less orders identities by kind (export order) then name. This is the
// tie-break used for all rendered sequences so output is deterministic.
func (id Identity) Less(other Identity) bool {
	if id.Kind != other.Kind {
		return id.Kind.Order() < other.Kind.Order()
	}
	return id.Name < other.Name
}

// SortIdentities sorts ids in place by (kind, name).
func SortIdentities(ids []Identity) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
