package vql

import "fmt"

// DuplicateIdentityError is returned by NewCodebase when two supplied
// objects share an identity. Collisions must be resolved upstream (in the
// parser or repository reader); the model never applies a last-write-wins
// policy and never returns a partially constructed Codebase.
type DuplicateIdentityError struct {
	Identity Identity
	Codebase string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("duplicate identity %q in codebase %q", e.Identity, e.Codebase)
}

// Codebase is a named, immutable snapshot of a code base: a mapping from
// Identity to CodeObject representing one point-in-time state (an export
// file, or a repository tree on disk).
//
// Once constructed a Codebase is never mutated, so it may be shared and read
// concurrently by any number of comparisons without synchronization.
type Codebase struct {
	name    string
	objects map[Identity]*CodeObject
	order   []Identity
}

// NewCodebase builds a snapshot from a sequence of code objects. It fails
// with *DuplicateIdentityError if two objects share an identity.
//
// Example:
//
//	base, err := vql.NewCodebase("base", objects)
//	if err != nil {
//	    var dup *vql.DuplicateIdentityError
//	    if errors.As(err, &dup) {
//	        log.Fatalf("duplicate object: %s", dup.Identity)
//	    }
//	    log.Fatal(err)
//	}
func NewCodebase(name string, objects []*CodeObject) (*Codebase, error) {
	byID := make(map[Identity]*CodeObject, len(objects))
	order := make([]Identity, 0, len(objects))

	for _, obj := range objects {
		id := obj.Identity()
		if _, ok := byID[id]; ok {
			return nil, &DuplicateIdentityError{Identity: id, Codebase: name}
		}
		byID[id] = obj
		order = append(order, id)
	}

	SortIdentities(order)

	return &Codebase{
		name:    name,
		objects: byID,
		order:   order,
	}, nil
}

// Name returns the snapshot's name (e.g. "base" or "compare").
func (c *Codebase) Name() string { return c.name }

// Len returns the total number of objects in the snapshot.
func (c *Codebase) Len() int { return len(c.objects) }

// Lookup returns the object for id. Absence is an expected, non-exceptional
// outcome reported through the bool, never through an error.
func (c *Codebase) Lookup(id Identity) (*CodeObject, bool) {
	obj, ok := c.objects[id]
	return obj, ok
}

// Identities returns all identities sorted by (kind, name). The returned
// slice is a copy.
func (c *Codebase) Identities() []Identity {
	out := make([]Identity, len(c.order))
	copy(out, c.order)
	return out
}

// Objects returns all objects sorted by (kind, name), giving deterministic
// iteration for rendering and reproducible diffs.
func (c *Codebase) Objects() []*CodeObject {
	out := make([]*CodeObject, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.objects[id])
	}
	return out
}

// DanglingRefs returns the identities referenced by objects in the snapshot
// that are not themselves present in it, sorted by (kind, name). Dangling
// references are valid data with no defined edges, not an error; this
// accessor exists so a presentation layer can surface them if it wants to.
func (c *Codebase) DanglingRefs() []Identity {
	seen := make(map[Identity]struct{})
	var out []Identity
	for _, id := range c.order {
		for _, dep := range c.objects[id].deps {
			if _, ok := c.objects[dep]; ok {
				continue
			}
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			out = append(out, dep)
		}
	}
	SortIdentities(out)
	return out
}
