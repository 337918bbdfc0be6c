package models

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed gamedata.yaml
var gameDataYAML []byte

var validate = validator.New()

// LoadGameData parses and validates the embedded game data.
func LoadGameData() (*GameData, error) {
	return ParseGameData(gameDataYAML)
}

// MustLoadGameData loads the embedded game data, panicking on error.
// The embedded file ships with the binary, so a failure here is a build defect.
func MustLoadGameData() *GameData {
	data, err := LoadGameData()
	if err != nil {
		panic(err)
	}
	return data
}

// ParseGameData decodes game data from YAML and checks it for consistency.
func ParseGameData(raw []byte) (*GameData, error) {
	var data GameData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse game data: %w", err)
	}
	if err := validate.Struct(&data); err != nil {
		return nil, fmt.Errorf("invalid game data: %w", err)
	}

	if _, ok := data.Mode(data.DefaultMode); !ok {
		return nil, fmt.Errorf("invalid game data: default mode %q is not defined", data.DefaultMode)
	}
	seen := make(map[string]bool, len(data.Catalog))
	for _, entry := range data.Catalog {
		if seen[entry.Item] {
			return nil, fmt.Errorf("invalid game data: %q is listed twice in the catalog", entry.Item)
		}
		seen[entry.Item] = true
	}
	for _, t := range data.Terrains {
		if !seen[t.Item] {
			return nil, fmt.Errorf("invalid game data: %s needs %q which the shop does not sell", t.Name, t.Item)
		}
	}

	return &data, nil
}

// Mode looks up a preset by the key typed at the welcome prompt.
func (d *GameData) Mode(key string) (ModeSettings, bool) {
	for _, m := range d.Modes {
		if m.Key == key {
			return m, true
		}
	}
	return ModeSettings{}, false
}
