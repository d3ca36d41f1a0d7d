package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int         `toml:"version"`
	Bots    []botSchema `toml:"bots"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported bots schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type botSchema struct {
	ID         int64  `toml:"id"`
	Nickname   string `toml:"nickname"`
	WorkingDir string `toml:"working_dir"`
	Friends    int    `toml:"friends"`
	Groups     int    `toml:"groups"`
	LastSeen   string `toml:"last_seen,omitempty"`
}
