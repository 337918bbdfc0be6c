package engine

import (
	"strings"

	"github.com/tatianab/treasure-hunter/internal/models"
)

// Rules wraps the static game data with the random draws made from it.
type Rules struct {
	data     *models.GameData
	terrains []Terrain
	weight   float64
}

// NewRules builds rules from validated game data.
func NewRules(data *models.GameData) *Rules {
	terrains := make([]Terrain, len(data.Terrains))
	for i, def := range data.Terrains {
		terrains[i] = Terrain{Name: def.Name, Needed: Item(strings.ToLower(def.Item))}
	}
	total := 0.0
	for _, tw := range data.Treasures {
		total += tw.Weight
	}
	return &Rules{data: data, terrains: terrains, weight: total}
}

// DefaultRules loads the embedded game data.
func DefaultRules() (*Rules, error) {
	data, err := models.LoadGameData()
	if err != nil {
		return nil, err
	}
	return NewRules(data), nil
}

// Mode returns the preset for the key the player typed, falling back to the
// default preset for anything unrecognized.
func (r *Rules) Mode(key string) models.ModeSettings {
	if mode, ok := r.data.Mode(key); ok {
		return mode
	}
	mode, _ := r.data.Mode(r.data.DefaultMode)
	return mode
}

// Catalog returns the shop's price sheet.
func (r *Rules) Catalog() []models.CatalogEntry {
	return r.data.Catalog
}

// RandomTerrain picks a terrain uniformly.
func (r *Rules) RandomTerrain(src Source) Terrain {
	idx := int(src.Float64() * float64(len(r.terrains)))
	if idx >= len(r.terrains) {
		idx = len(r.terrains) - 1
	}
	return r.terrains[idx]
}

// RandomTreasure picks a hidden treasure by weight.
func (r *Rules) RandomTreasure(src Source) Treasure {
	roll := src.Float64() * r.weight
	cumulative := 0.0
	for _, tw := range r.data.Treasures {
		cumulative += tw.Weight
		if roll < cumulative {
			return Treasure(tw.Treasure)
		}
	}
	return Treasure(r.data.Treasures[len(r.data.Treasures)-1].Treasure)
}
