package timeit

import "github.com/BurntSushi/toml"

// # Config
//
// File-loadable output configuration. The matching TOML:
//
//	tree = true
//	table = false
//	basename = "run1"
//	summary = false
type Config struct {
	Tree     bool   `toml:"tree"`
	Table    bool   `toml:"table"`
	Basename string `toml:"basename"`
	Summary  bool   `toml:"summary"`
}

// LoadConfig reads a TOML configuration file. Omitted flags keep their
// defaults: both formats enabled, no file sinks, no summary collection.
func LoadConfig(path string) (Config, error) {
	c := Config{Tree: true, Table: true}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Apply installs the configuration: format enable flags, summary collection
// and, when basename is set, file-backed sinks. The returned installer is
// nil unless file sinks were installed; the caller owns closing it.
func (c Config) Apply() *OutputFiles {
	EnableTree(c.Tree)
	EnableTable(c.Table)
	CollectSummary(c.Summary)

	if c.Basename == "" {
		return nil
	}
	return InstallFiles(c.Basename)
}
