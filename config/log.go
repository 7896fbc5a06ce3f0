package config

import "github.com/lone-faerie/pressure/log"

// LogConfig is the configuration of the logger.
type LogConfig struct {
	// Level is the minimum level of logged events. The default is "warn".
	Level log.Level `yaml:"level"`
	// Output is one of "stderr" (default), "stdout", "discard" or the path
	// of a file to append to.
	Output string `yaml:"output"`
	// Format is one of "text" or "json". If blank (default) then events
	// are written by the standard logger.
	Format string `yaml:"format,omitempty"`
}
