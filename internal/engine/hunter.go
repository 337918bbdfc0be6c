package engine

import (
	"fmt"
	"strings"
)

// Item is a piece of equipment the shop sells.
type Item string

const (
	Water   Item = "water"
	Rope    Item = "rope"
	Machete Item = "machete"
	Horse   Item = "horse"
	Boat    Item = "boat"
	Boots   Item = "boots"
	Shovel  Item = "shovel"
	Sword   Item = "sword"
)

// Treasure is something hidden in a town.
type Treasure string

const (
	Crown  Treasure = "crown"
	Trophy Treasure = "trophy"
	Gem    Treasure = "gem"
	Dust   Treasure = "dust" // filler, never collected
)

// WinningTreasures must all be collected to win.
var WinningTreasures = []Treasure{Crown, Trophy, Gem}

const (
	kitCapacity           = 7
	privilegedKitCapacity = 8
	treasureCapacity      = 3
)

// Hunter is the player's ledger: gold, kit and collected treasures.
type Hunter struct {
	name       string
	gold       int
	kit        []Item
	treasures  []Treasure
	privileged bool
}

// NewHunter creates a hunter with an empty kit. A privileged hunter (a samurai)
// gets one extra kit slot and may take the sword.
func NewHunter(name string, startingGold int, privileged bool) *Hunter {
	capacity := kitCapacity
	if privileged {
		capacity = privilegedKitCapacity
	}
	return &Hunter{
		name:       name,
		gold:       startingGold,
		kit:        make([]Item, 0, capacity),
		treasures:  make([]Treasure, 0, treasureCapacity),
		privileged: privileged,
	}
}

func (h *Hunter) Name() string     { return h.name }
func (h *Hunter) Gold() int        { return h.gold }
func (h *Hunter) Privileged() bool { return h.privileged }

// KitCapacity is the number of distinct items the hunter can carry.
func (h *Hunter) KitCapacity() int {
	if h.privileged {
		return privilegedKitCapacity
	}
	return kitCapacity
}

// Kit returns the carried items in the order they were acquired.
func (h *Hunter) Kit() []Item {
	return append([]Item(nil), h.kit...)
}

// Treasures returns the collected treasures in the order they were found.
func (h *Hunter) Treasures() []Treasure {
	return append([]Treasure(nil), h.treasures...)
}

// ChangeGold adds delta to the purse. A negative balance is fatal and
// reported as ErrBankrupt.
func (h *Hunter) ChangeGold(delta int) error {
	h.gold += delta
	if h.gold < 0 {
		return fmt.Errorf("%w: %s is %d gold in debt", ErrBankrupt, h.name, -h.gold)
	}
	return nil
}

// Buy pays cost for item. A zero cost is only honored for a samurai.
func (h *Hunter) Buy(item Item, cost int) error {
	if cost == 0 && !h.privileged {
		return fmt.Errorf("%w: %s", ErrPrivilegedOnly, item)
	}
	if h.gold < cost {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, item, cost, h.gold)
	}
	if err := h.AddItem(item); err != nil {
		return err
	}
	h.gold -= cost
	return nil
}

// Sell hands item over for price gold.
func (h *Hunter) Sell(item Item, price int) error {
	if price <= 0 {
		return fmt.Errorf("%w: %s", ErrNotBuyable, item)
	}
	if !h.RemoveItem(item) {
		return fmt.Errorf("%w: %s", ErrNotOwned, item)
	}
	h.gold += price
	return nil
}

// AddItem puts item in the kit without payment.
func (h *Hunter) AddItem(item Item) error {
	if h.HasItem(item) {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, item)
	}
	if len(h.kit) >= h.KitCapacity() {
		return fmt.Errorf("%w: %d of %d slots used", ErrKitFull, len(h.kit), h.KitCapacity())
	}
	h.kit = append(h.kit, item)
	return nil
}

// RemoveItem drops item from the kit and reports whether it was there.
func (h *Hunter) RemoveItem(item Item) bool {
	for i, owned := range h.kit {
		if owned == item {
			h.kit = append(h.kit[:i], h.kit[i+1:]...)
			return true
		}
	}
	return false
}

func (h *Hunter) HasItem(item Item) bool {
	for _, owned := range h.kit {
		if owned == item {
			return true
		}
	}
	return false
}

func (h *Hunter) HasTreasure(t Treasure) bool {
	for _, owned := range h.treasures {
		if owned == t {
			return true
		}
	}
	return false
}

// AddTreasure collects t. Only crown, trophy and gem can be collected, each once.
func (h *Hunter) AddTreasure(t Treasure) error {
	if !isWinningTreasure(t) {
		return fmt.Errorf("%w: %s", ErrNotTreasure, t)
	}
	if h.HasTreasure(t) {
		return fmt.Errorf("%w: %s", ErrTreasureOwned, t)
	}
	if len(h.treasures) >= treasureCapacity {
		return ErrTreasureFull
	}
	h.treasures = append(h.treasures, t)
	return nil
}

// HasAllTreasures reports whether the win condition is met.
func (h *Hunter) HasAllTreasures() bool {
	for _, t := range WinningTreasures {
		if !h.HasTreasure(t) {
			return false
		}
	}
	return true
}

// Describe renders the hunter for the status panel.
func (h *Hunter) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d gold", h.name, h.gold)
	if len(h.kit) > 0 {
		items := make([]string, len(h.kit))
		for i, item := range h.kit {
			items[i] = string(item)
		}
		b.WriteString(" and " + strings.Join(items, " "))
	}

	b.WriteString("\nTreasures found: ")
	if len(h.treasures) == 0 {
		b.WriteString("none")
		return b.String()
	}
	found := make([]string, len(h.treasures))
	for i, t := range h.treasures {
		found[i] = "a " + string(t)
	}
	b.WriteString(strings.Join(found, " "))
	return b.String()
}

func isWinningTreasure(t Treasure) bool {
	for _, w := range WinningTreasures {
		if w == t {
			return true
		}
	}
	return false
}
