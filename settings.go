package algebrain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voodooEntity/algebrain/src/system/interfaces"
)

// Settings configures an engine. The zero value is usable: a random ident
// is minted, logging defaults to warning on stdout and the builtin
// catalogue is registered.
type Settings struct {
	// Ident names the backing gits instance. Defaults to a fresh uuid.
	Ident string `yaml:"ident"`
	// LogLevel takes the archivist LEVEL_* constants. 0 means warning.
	LogLevel int `yaml:"logLevel"`
	// DebugLevel takes the archivist DEBUG_LEVEL_* constants and only
	// matters when LogLevel is debug.
	DebugLevel int `yaml:"debugLevel"`
	// History maps a Resolution entity into memory for every successful
	// resolution.
	History bool `yaml:"history"`
	// SkipBuiltins leaves the builtin Monoid/Group instances unregistered.
	SkipBuiltins bool `yaml:"skipBuiltins"`
	// Logger is the sink the archivist writes to, stdout when nil.
	Logger interfaces.LoggerInterface `yaml:"-"`
}

// LoadSettings reads a settings file in YAML format.
func LoadSettings(path string) (Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	var settings Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return settings, nil
}
