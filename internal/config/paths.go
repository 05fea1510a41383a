package config

import "path/filepath"

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "dg.toml"

// Paths holds resolved paths for config files.
type Paths struct {
	Root       string
	ConfigPath string
}

// DefaultPaths returns the default config paths for a working directory.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, DefaultFileName),
	}
}
