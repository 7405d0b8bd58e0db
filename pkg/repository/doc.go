// Package repository maps Codebase snapshots onto a directory tree and
// back.
//
// The layout mirrors the structure of an export script: one folder per
// chapter (kind), one .vql file per object, a part.log file per chapter
// listing the object files in model order, and a vqlkeeper.sum integrity
// file at the root recording a content hash per object file plus a total
// hash over the whole tree.
//
// The tree is a faithful round trip: loading a repository produces a model
// equivalent to the one it was written from, and Verify detects files that
// drifted, disappeared, or appeared since the last Write.
package repository
