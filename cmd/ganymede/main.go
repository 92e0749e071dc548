// Ganymede is an ACPI Machine Language decoding engine and firmware table
// catalog.
//
// It decodes AML byte streams into typed trees and keeps a catalog of parse
// outcomes across firmware collections:
//   - Recursive-descent decoding with strict resource limits
//   - Batch scanning of firmware dump directories
//   - Watch mode that re-parses files as they change
//   - A SQLite-backed catalog of parse records with retention
//
// Usage:
//
//	# Decode one table and print its tree
//	ganymede dump DSDT.aml
//
//	# Scan a directory of dumps into the catalog
//	ganymede scan ./firmware
//
//	# Keep a directory under observation
//	ganymede watch ./firmware
//
//	# Query past scan results
//	ganymede runs --status syntax --limit 20
//
//	# Show version information
//	ganymede version
package main

func main() {
	Execute()
}
