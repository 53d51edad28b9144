// Package types defines the small set of types shared across sweep's packages:
// the filesystem interface every component performs I/O through, and the
// run mode a configuration is executed under.
package types
