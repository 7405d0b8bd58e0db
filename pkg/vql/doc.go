// Package vql defines the in-memory model for Denodo VQL code bases.
//
// A code base is modeled as an immutable Codebase: a named snapshot mapping
// object identities (kind + case-normalized name) to CodeObject values. Each
// CodeObject carries the raw script fragment that defines it, a content hash
// computed once at construction, and the set of identities it references.
//
// Codebase values are never mutated after construction. A new snapshot is
// always built rather than patched, which makes diffing referentially safe
// and lets snapshots be shared across goroutines without synchronization.
//
// Basic usage:
//
//	obj := vql.NewCodeObject(
//	    vql.NewIdentity(vql.KindViews, "customer_orders"),
//	    "CREATE OR REPLACE VIEW customer_orders AS SELECT ...;",
//	    []vql.Identity{vql.NewIdentity(vql.KindBaseViews, "orders")},
//	)
//
//	cb, err := vql.NewCodebase("base", []*vql.CodeObject{obj})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if o, ok := cb.Lookup(obj.Identity()); ok {
//	    fmt.Println(o.Hash())
//	}
package vql
