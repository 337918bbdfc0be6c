package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeGoldBankruptcy(t *testing.T) {
	h := NewHunter("ivan", 5, false)
	require.NoError(t, h.ChangeGold(-5))
	assert.Equal(t, 0, h.Gold())

	h = NewHunter("ivan", 5, false)
	err := h.ChangeGold(-6)
	require.ErrorIs(t, err, ErrBankrupt)
	assert.Equal(t, -1, h.Gold())
}

func TestBuyRejections(t *testing.T) {
	tests := []struct {
		name       string
		gold       int
		privileged bool
		owned      []Item
		item       Item
		cost       int
		wantErr    error
	}{
		{"zero price without samurai", 10, false, nil, Sword, 0, ErrPrivilegedOnly},
		{"not enough gold", 3, false, nil, Rope, 4, ErrInsufficientGold},
		{"already owned", 10, false, []Item{Rope}, Rope, 4, ErrAlreadyOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHunter("ivan", tt.gold, tt.privileged)
			for _, item := range tt.owned {
				require.NoError(t, h.AddItem(item))
			}
			before := h.Kit()

			err := h.Buy(tt.item, tt.cost)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.gold, h.Gold(), "gold must not change on a rejected buy")
			assert.Equal(t, before, h.Kit(), "kit must not change on a rejected buy")
		})
	}
}

func TestBuyDeductsAndStores(t *testing.T) {
	h := NewHunter("ivan", 10, false)
	require.NoError(t, h.Buy(Rope, 4))
	assert.Equal(t, 6, h.Gold())
	assert.True(t, h.HasItem(Rope))
}

func TestPrivilegedZeroPrice(t *testing.T) {
	plain := NewHunter("ivan", 10, false)
	assert.ErrorIs(t, plain.Buy(Sword, 0), ErrPrivilegedOnly)
	assert.False(t, plain.HasItem(Sword))

	samurai := NewHunter("musashi", 10, true)
	require.NoError(t, samurai.Buy(Sword, 0))
	assert.True(t, samurai.HasItem(Sword))
	assert.Equal(t, 10, samurai.Gold())
}

func TestSell(t *testing.T) {
	h := NewHunter("ivan", 0, false)
	assert.ErrorIs(t, h.Sell(Rope, 2), ErrNotOwned)

	require.NoError(t, h.AddItem(Rope))
	assert.ErrorIs(t, h.Sell(Rope, 0), ErrNotBuyable)
	assert.True(t, h.HasItem(Rope))

	require.NoError(t, h.Sell(Rope, 2))
	assert.Equal(t, 2, h.Gold())
	assert.False(t, h.HasItem(Rope))
}

func TestKitCapacity(t *testing.T) {
	base := []Item{Water, Rope, Machete, Horse, Boat, Boots, Shovel}

	h := NewHunter("ivan", 0, false)
	for _, item := range base {
		require.NoError(t, h.AddItem(item))
	}
	assert.ErrorIs(t, h.AddItem(Sword), ErrKitFull)
	assert.Len(t, h.Kit(), 7)

	samurai := NewHunter("musashi", 0, true)
	for _, item := range base {
		require.NoError(t, samurai.AddItem(item))
	}
	require.NoError(t, samurai.AddItem(Sword))
	assert.Len(t, samurai.Kit(), 8)
	assert.ErrorIs(t, samurai.AddItem("lantern"), ErrKitFull)
}

func TestCapacityInvariantUnderRandomTrades(t *testing.T) {
	items := []Item{Water, Rope, Machete, Horse, Boat, Boots, Shovel, Sword, "lantern", "map"}
	rng := rand.New(rand.NewSource(42))

	for _, privileged := range []bool{false, true} {
		h := NewHunter("ivan", 1000, privileged)
		for i := 0; i < 2000; i++ {
			item := items[rng.Intn(len(items))]
			if rng.Intn(2) == 0 {
				_ = h.Buy(item, rng.Intn(5))
			} else {
				_ = h.Sell(item, rng.Intn(5))
			}
			require.LessOrEqual(t, len(h.Kit()), h.KitCapacity())
		}
	}
}

func TestAddTreasure(t *testing.T) {
	h := NewHunter("ivan", 0, false)
	assert.ErrorIs(t, h.AddTreasure(Dust), ErrNotTreasure)

	require.NoError(t, h.AddTreasure(Crown))
	assert.ErrorIs(t, h.AddTreasure(Crown), ErrTreasureOwned)
	assert.Equal(t, []Treasure{Crown}, h.Treasures())
	assert.False(t, h.HasAllTreasures())

	require.NoError(t, h.AddTreasure(Gem))
	require.NoError(t, h.AddTreasure(Trophy))
	assert.True(t, h.HasAllTreasures())
}

func TestDescribe(t *testing.T) {
	h := NewHunter("ivan", 10, false)
	assert.Equal(t, "ivan has 10 gold\nTreasures found: none", h.Describe())

	require.NoError(t, h.Buy(Rope, 4))
	require.NoError(t, h.Buy(Water, 2))
	require.NoError(t, h.AddTreasure(Gem))
	assert.Equal(t, "ivan has 4 gold and rope water\nTreasures found: a gem", h.Describe())
}
