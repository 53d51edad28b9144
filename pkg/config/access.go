package config

// current holds the settings of the running command
var current *Config

// Initialize records cfg as the settings of the running command. A nil cfg
// resets them to the embedded defaults.
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	current = cfg
}

// Get returns the settings recorded by Initialize, or the embedded defaults
// when a command has not loaded any
func Get() *Config {
	if current == nil {
		Initialize(nil)
	}
	return current
}
