package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainGating(t *testing.T) {
	mountains := Terrain{Name: "Mountains", Needed: Rope}
	h := NewHunter("ivan", 10, false)

	assert.False(t, mountains.CanCross(h))
	require.NoError(t, h.Buy(Rope, 4))
	assert.True(t, mountains.CanCross(h))
	assert.Equal(t, "Mountains needs a(n) rope to cross.", mountains.String())
}

func TestRandomTerrain(t *testing.T) {
	rules := testRules()
	tests := []struct {
		draw float64
		name string
		item Item
	}{
		{0.0, "Mountains", Rope},
		{0.2, "Ocean", Boat},
		{0.34, "Plains", Horse},
		{0.5, "Desert", Water},
		{0.7, "Jungle", Machete},
		{0.9999, "Marsh", Boots},
	}
	for _, tt := range tests {
		got := rules.RandomTerrain(script(tt.draw))
		assert.Equal(t, Terrain{Name: tt.name, Needed: tt.item}, got, "draw %v", tt.draw)
	}
}

func TestRandomTreasure(t *testing.T) {
	rules := testRules()
	tests := []struct {
		draw float64
		want Treasure
	}{
		{0.0, Crown},
		{0.329, Crown},
		{0.5, Trophy},
		{0.7, Gem},
		{0.985, Gem},
		{0.995, Dust},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.RandomTreasure(script(tt.draw)), "draw %v", tt.draw)
	}
}

func TestModeFallsBackToDefault(t *testing.T) {
	rules := testRules()
	assert.Equal(t, "hard", rules.Mode("h").Name)
	assert.Equal(t, "normal", rules.Mode("").Name)
	assert.Equal(t, "normal", rules.Mode("impossible").Name)
}
