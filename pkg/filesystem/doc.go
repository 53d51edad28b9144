// Package filesystem provides filesystem implementations for sweep.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero-backed one used by tests,
// plus the copy primitive the move action is built on.
package filesystem
