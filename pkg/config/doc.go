// Package config handles the settings of sweep itself (not rule files).
// Settings are layered with koanf, later sources winning: the embedded
// defaults, the user file under the XDG config directory, SWEEP_
// environment variables and finally flags set on the command line.
package config
