// Package testutil provides utilities for testing sweep components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory types.FS
//   - TestEnvironment: an in-memory target directory seeded with files
//   - MockConfirmer: testify mock answering interactive prompts
//
// All test data should be defined inline, and each test should build its
// own environment so no state is shared.
package testutil
