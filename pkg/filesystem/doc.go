// Package filesystem provides filesystem implementations for bsconf.
//
// This package contains implementations of the FS interface used by the
// template pipeline and the program locator: the standard OS filesystem,
// an afero-backed filesystem for tests, and a dry-run overlay that keeps
// output files in memory.
package filesystem
