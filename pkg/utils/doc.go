// Package utils provides small generic helpers shared across the sqlfmt
// codebase.
//
// # Optional Values (ptr.go)
//
// Configuration overrides are modeled as pointer fields where nil means "not
// set". The helpers here create and layer such values:
//
//	indent := utils.Ptr("  ")
//
//	// Later layers win when they are set
//	merged := utils.Coalesce(fileIndent, flagIndent)
//
//	// Copy into a concrete config only when set
//	utils.Assign(&cfg.Indent, merged)
package utils
