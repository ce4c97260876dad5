// Package rsdoc indexes locally generated rustdoc HTML documentation and
// exposes every documented item as an entry for fuzzy pickers. It locates
// the standard library docs of the active rustup toolchain and the current
// Cargo project's target/doc, parses item records from file names, caches
// them per doc root, and streams them to the consumer in batches.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, exec/, sqlite/).
package rsdoc
