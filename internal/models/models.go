package models

// ModeSettings is one difficulty preset chosen at the welcome prompt.
type ModeSettings struct {
	Key          string  `yaml:"key" validate:"required"`
	Name         string  `yaml:"name" validate:"required"`
	StartingGold int     `yaml:"starting_gold" validate:"gte=0"`
	Markdown     float64 `yaml:"markdown" validate:"gte=0,lte=1"` // sell-price multiplier
	Toughness    float64 `yaml:"toughness" validate:"gte=0,lte=1"`
	Easy         bool    `yaml:"easy"`       // crossing never breaks the required item
	Privileged   bool    `yaml:"privileged"` // extra kit slot and access to the sword
	Stocked      bool    `yaml:"stocked"`    // starts with one of each base item
}

// CatalogEntry is a single line of the shop's price sheet.
type CatalogEntry struct {
	Item       string `yaml:"item" validate:"required"`
	Price      int    `yaml:"price" validate:"gte=0"`
	Privileged bool   `yaml:"privileged"`
}

// TerrainDef pairs a terrain with the item needed to cross it.
type TerrainDef struct {
	Name string `yaml:"name" validate:"required"`
	Item string `yaml:"item" validate:"required"`
}

// TreasureWeight is the relative chance of a town hiding a treasure.
type TreasureWeight struct {
	Treasure string  `yaml:"treasure" validate:"required"`
	Weight   float64 `yaml:"weight" validate:"gt=0"`
}

// GameData is the static rule data shared by every session.
type GameData struct {
	DefaultMode string           `yaml:"default_mode" validate:"required"`
	Modes       []ModeSettings   `yaml:"modes" validate:"required,min=1,dive"`
	Catalog     []CatalogEntry   `yaml:"catalog" validate:"required,min=1,dive"`
	Terrains    []TerrainDef     `yaml:"terrains" validate:"len=6,dive"`
	Treasures   []TreasureWeight `yaml:"treasures" validate:"required,min=1,dive"`
}

// TurnRecord captures the outcome of one processed command.
type TurnRecord struct {
	Turn      int      `yaml:"turn"`
	Command   string   `yaml:"command"`
	Narrative string   `yaml:"narrative"`
	Gold      int      `yaml:"gold"`
	Kit       []string `yaml:"kit,omitempty"`
	Treasures []string `yaml:"treasures,omitempty"`
}

// Transcript is the write-only record of a finished play session.
type Transcript struct {
	SessionID string       `yaml:"session_id"`
	Hunter    string       `yaml:"hunter"`
	Mode      string       `yaml:"mode"`
	Outcome   string       `yaml:"outcome"` // "won", "quit", "bankrupt"
	Turns     []TurnRecord `yaml:"turns"`
}
