package eztracecheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Reference identifies an exported function by package path and name.
type Reference struct {
	Pkg  string `yaml:"pkg"`
	Name string `yaml:"name"`
}

func (r Reference) String() string {
	return r.Pkg + "." + r.Name
}

// Config tunes the analyzer:
//
//   - Markers lists functions to treat as trace markers in addition to
//     the predefined eztrace.Trace.
//   - Allow lists path.Match patterns naming files where leftover
//     markers are tolerated (scratch files, throwaway tools).
type Config struct {
	Markers []Reference `yaml:"markers"`
	Allow   []string    `yaml:"allow"`
}

// LoadConfig reads a YAML config from the given path. An empty path or
// an empty file yields the zero config, unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}

// Allowed reports whether the given file may keep trace markers.
// Every pattern is tried against the slash-normalized file path and
// against its base name, whichever matches first wins.
func (c *Config) Allowed(file string) bool {
	file = filepath.ToSlash(file)
	base := path.Base(file)

	for _, pat := range c.Allow {
		if ok, err := path.Match(pat, file); err == nil && ok {
			return true
		}
		if ok, err := path.Match(pat, base); err == nil && ok {
			return true
		}
	}

	return false
}
