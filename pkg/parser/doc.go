// Package parser turns a monolithic Denodo VQL export script into the
// in-memory object model defined by pkg/vql.
//
// An export file groups object definitions into chapters, one per object
// kind, each introduced by a comment banner. Within a chapter, individual
// definitions start with "CREATE OR REPLACE". The parser locates the
// chapter banners, splits each chapter into per-object fragments, extracts
// the object name from the first line of each fragment (the extraction rule
// varies per kind), and derives best-effort dependency identities by
// tokenizing fragment bodies and resolving identifier mentions against the
// other object names in the same script.
//
// The parser does not validate Denodo's grammar. Fragments are carried
// verbatim into the model; only names and references are interpreted.
//
// Basic usage:
//
//	objects, err := parser.ParseFile("exports/prod.vql")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	base, err := vql.NewCodebase("base", objects)
//	if err != nil {
//	    log.Fatal(err)
//	}
package parser
