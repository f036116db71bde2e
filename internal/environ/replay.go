package environ

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrNoArgv is returned when a replay file does not define argv.
var ErrNoArgv = errors.New("replay file has no argv")

// replayFile is the on-disk layout of a recorded invocation:
//
//	argv = ["/usr/local/bin/tool", "build", "--env=prod"]
//
//	[vars]
//	LANG = "en_US.UTF-8"
type replayFile struct {
	Argv []string          `toml:"argv"`
	Vars map[string]string `toml:"vars"`
}

// LoadFile reads a snapshot previously written by WriteFile.
func LoadFile(path string) (Snapshot, error) {
	var raw replayFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load replay %s: %w", path, err)
	}
	if !meta.IsDefined("argv") {
		return Snapshot{}, fmt.Errorf("load replay %s: %w", path, ErrNoArgv)
	}
	return New(raw.Vars, raw.Argv), nil
}

// WriteFile records the snapshot as TOML, creating parent directories.
func (s Snapshot) WriteFile(path string) error {
	var buf bytes.Buffer
	raw := replayFile{Argv: s.Args(), Vars: s.Vars()}
	if raw.Argv == nil {
		raw.Argv = []string{}
	}
	if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create replay directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write replay %s: %w", path, err)
	}
	return nil
}
