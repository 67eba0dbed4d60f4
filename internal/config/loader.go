package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the manifest file.
const ConfigFileName = "refstack.yaml"

// ConfigFileNameAlt is the alternate name of the manifest file.
const ConfigFileNameAlt = "refstack.yml"

// maxUpwardSearchLevels limits how far up the directory tree to search
// for a manifest.
const maxUpwardSearchLevels = 10

// Load loads the manifest from an explicit path, or from the current
// directory when path is empty.
//
// Precedence (highest to lowest): env vars (REFSTACK_ prefix) > manifest
// file > defaults.
func Load(path string) (*Manifest, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output": "text",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Manifest file
	configFile := findConfigFile(path)
	if path != "" && configFile == "" {
		return nil, fmt.Errorf("manifest not found: %s", path)
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading manifest %s: %w", configFile, err)
		}
	}

	// 3. Environment variables: REFSTACK_OUTPUT -> output
	if err := k.Load(env.Provider("REFSTACK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "REFSTACK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("unable to decode manifest: %w", err)
	}
	m.ApplyDefaults()
	return &m, nil
}

// LoadFromDir loads a manifest from the given directory. It looks for
// refstack.yaml or refstack.yml. Returns nil, nil if no manifest is found
// (not an error condition).
func LoadFromDir(dir string) (*Manifest, error) {
	configPath := findConfigFileIn(dir)
	if configPath == "" {
		return nil, nil
	}
	return Load(configPath)
}

// findConfigFile resolves the manifest path to use.
// Priority: explicit path > refstack.yaml > refstack.yml in the CWD.
func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	return findConfigFileIn(".")
}

// findConfigFileIn finds the manifest file in the given directory.
// Returns empty string if not found.
func findConfigFileIn(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing a manifest. Returns empty string if not found within
// maxUpwardSearchLevels.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if findConfigFileIn(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}
