// Package paths provides sweep's path handling.
//
// Rules name files by their final path segment and move targets are plain
// strings written by the user, so the engine never assumes a separator.
// A Style captures one convention:
//
//   - POSIX splits and joins on "/"
//   - Windows joins with "\" and splits on both "\" and "/"
//   - Native is whichever of the two the host uses
//
// The package also locates sweep's user settings file following the XDG
// Base Directory specification ($XDG_CONFIG_HOME/sweep/config.toml), which
// SWEEP_CONFIG_DIR overrides.
package paths
