package vql

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/vqltools/vqlkeeper/pkg/compare"
)

// CodeObject is an immutable value representing one Denodo object: its
// identity, the raw script fragment that defines it, the identities it
// references, and a content hash computed once at construction.
//
// There is no mutation API. An "edit" is expressed by constructing a new
// CodeObject and building a new Codebase around it.
type CodeObject struct {
	identity Identity
	code     string
	hash     string
	deps     []Identity
}

// NewCodeObject creates a CodeObject from an identity, the raw fragment
// text, and the referenced identities (best-effort, possibly empty).
//
// Dependencies are deduplicated, sorted by (kind, name), and any
// self-reference is discarded. Empty raw text is valid; absence from a
// Codebase, not empty text, is how deletion is represented.
func NewCodeObject(id Identity, code string, deps []Identity) *CodeObject {
	seen := make(map[Identity]struct{}, len(deps))
	cleaned := make([]Identity, 0, len(deps))
	for _, dep := range deps {
		if dep == id {
			continue
		}
		if _, ok := seen[dep]; ok {
			continue
		}
		seen[dep] = struct{}{}
		cleaned = append(cleaned, dep)
	}
	SortIdentities(cleaned)

	return &CodeObject{
		identity: id,
		code:     code,
		hash:     HashCode(code),
		deps:     cleaned,
	}
}

// Identity returns the object's identity.
func (o *CodeObject) Identity() Identity { return o.identity }

// Code returns the raw script fragment defining the object.
func (o *CodeObject) Code() string { return o.code }

// Hash returns the content hash ("h1:" prefixed, base64-encoded SHA256 of
// the normalized fragment). Two objects with the same normalized text always
// have the same hash, which is what change detection is built on.
func (o *CodeObject) Hash() string { return o.hash }

// Dependencies returns the identities this object references, sorted by
// (kind, name). The returned slice is a copy.
func (o *CodeObject) Dependencies() []Identity {
	out := make([]Identity, len(o.deps))
	copy(out, o.deps)
	return out
}

// Equal reports whether two code objects have the same identity, content
// hash, and dependency set.
func (o *CodeObject) Equal(other *CodeObject) bool {
	if eq, more := compare.NilCheck(o, other); !more {
		return eq
	}

	return o.identity == other.identity &&
		o.hash == other.hash &&
		compare.Slices(o.deps, other.deps, func(a, b Identity) bool { return a == b })
}

// HashCode computes the content hash for a script fragment: "h1:" plus the
// base64-encoded SHA256 of the normalized text. Normalization strips
// trailing whitespace from each line and reduces the fragment to a single
// trailing newline, so incidental export formatting never reads as a change.
func HashCode(code string) string {
	h := sha256.Sum256([]byte(normalizeCode(code)))
	return "h1:" + base64.StdEncoding.EncodeToString(h[:])
}

func normalizeCode(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}
