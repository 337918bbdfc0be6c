package engine

import (
	"context"
	"fmt"

	"github.com/tatianab/treasure-hunter/internal/logger"
)

const (
	// chance of a brawl NOT happening, also the bar a brawl roll must beat to win
	toughNoTroubleChance = 0.66
	mildNoTroubleChance  = 0.33

	itemBreakChance = 0.5
	digHitChance    = 0.5

	maxBrawlGold = 10
	maxDigGold   = 20
)

// Town is the state of a single visit: the terrain around it, how rough it
// is, what is buried in it, and which one-shot actions have been used.
type Town struct {
	shop     *Shop
	terrain  Terrain
	tough    bool
	treasure Treasure
	dug      bool
	searched bool

	hunter *Hunter
	news   string
	src    Source
}

// NewTown rolls a terrain, a hidden treasure and the town's toughness, in
// that order. A higher toughness makes a tough town more likely.
func NewTown(shop *Shop, toughness float64, rules *Rules, src Source) *Town {
	return &Town{
		shop:     shop,
		terrain:  rules.RandomTerrain(src),
		treasure: rules.RandomTreasure(src),
		tough:    src.Float64() < toughness,
		src:      src,
	}
}

// Arrive binds the hunter to the town. prelude, when set, is news carried
// over from the journey.
func (t *Town) Arrive(h *Hunter, prelude string) {
	t.hunter = h
	t.news = fmt.Sprintf("Welcome to town, %s.", h.Name())
	if t.tough {
		t.news += "\nIt's pretty rough around here, so watch yourself."
	} else {
		t.news += "\nWe're just a sleepy little town with mild mannered folk."
	}
	if prelude != "" {
		t.news = prelude + "\n" + t.news
	}
}

func (t *Town) News() string       { return t.news }
func (t *Town) Terrain() Terrain   { return t.terrain }
func (t *Town) Tough() bool        { return t.tough }
func (t *Town) Dug() bool          { return t.dug }
func (t *Town) Searched() bool     { return t.searched }
func (t *Town) Shop() *Shop        { return t.shop }
func (t *Town) Treasure() Treasure { return t.treasure }

func (t *Town) String() string {
	return fmt.Sprintf("This nice little town is surrounded by %s.", t.terrain.Name)
}

// EnterShop runs the shop counter dialog.
func (t *Town) EnterShop(ctx context.Context, mode ShopMode, d Display, in Input) error {
	remark, err := t.shop.Enter(ctx, t.hunter, mode, d, in)
	if err != nil {
		return err
	}
	t.news = remark + "\nYou left the shop."
	logger.FromContext(ctx).Debug("Left the shop",
		"selling", mode == ShopSell, "gold", t.hunter.Gold(), "kit_size", len(t.hunter.kit), "remark", remark)
	return nil
}

// LeaveTown tries to cross the terrain. Crossing may break the needed item
// unless easy is set.
func (t *Town) LeaveTown(easy bool) bool {
	item := t.terrain.Needed
	if !t.terrain.CanCross(t.hunter) {
		t.news = fmt.Sprintf("You can't leave town, %s. You don't have a %s.", t.hunter.Name(), item)
		return false
	}

	t.news = fmt.Sprintf("You used your %s to cross the %s.", item, t.terrain.Name)
	if !easy && t.src.Float64() < itemBreakChance {
		t.hunter.RemoveItem(item)
		t.news += fmt.Sprintf("\nUnfortunately, you lost your %s.", item)
	}
	return true
}

// LookForTrouble may start a brawl. Tough towns brawl less often but are
// harder to win in. A sword wins every brawl.
func (t *Town) LookForTrouble() error {
	noTrouble := mildNoTroubleChance
	if t.tough {
		noTrouble = toughNoTroubleChance
	}

	if t.src.Float64() <= noTrouble {
		t.news = "You couldn't find any trouble"
		return nil
	}

	t.news = "You want trouble, stranger!  You got it!\nOof! Umph! Ow!\n"
	gold := rollRange(t.src, maxBrawlGold)
	switch {
	case t.hunter.HasItem(Sword):
		t.news += "The brawler, seeing your sword, realizes he picked a losing fight and gives you his gold."
		t.news += fmt.Sprintf("\nYou receive %d gold.", gold)
		return t.hunter.ChangeGold(gold)
	case t.src.Float64() > noTrouble:
		t.news += "Okay, stranger! You proved yer mettle. Here, take my gold."
		t.news += fmt.Sprintf("\nYou won the brawl and receive %d gold.", gold)
		return t.hunter.ChangeGold(gold)
	default:
		t.news += "That'll teach you to go lookin' fer trouble in MY town! Now pay up!"
		t.news += fmt.Sprintf("\nYou lost the brawl and pay %d gold.", gold)
		return t.hunter.ChangeGold(-gold)
	}
}

// DigForGold digs once per town. Without a shovel nothing happens and the
// dig is not used up.
func (t *Town) DigForGold() error {
	if t.dug {
		t.news = "You already dug for gold in this town."
		return nil
	}
	if !t.hunter.HasItem(Shovel) {
		t.news = "You can't dig for gold without a shovel!"
		return nil
	}

	t.dug = true
	if t.src.Float64() >= digHitChance {
		t.news = "You dug but only found dirt!"
		return nil
	}
	gold := rollRange(t.src, maxDigGold)
	t.news = fmt.Sprintf("You dug up %d gold!", gold)
	return t.hunter.ChangeGold(gold)
}

// HuntForTreasure searches the town once, whatever turns up.
func (t *Town) HuntForTreasure() error {
	if t.searched {
		t.news = "You have already searched this town."
		return nil
	}
	t.searched = true

	switch {
	case t.treasure == Dust:
		t.news = "You found dust"
	case t.hunter.HasTreasure(t.treasure):
		t.news = fmt.Sprintf("You already collected %s", t.treasure)
	default:
		if err := t.hunter.AddTreasure(t.treasure); err != nil {
			return fmt.Errorf("collecting %s: %w", t.treasure, err)
		}
		t.news = fmt.Sprintf("You found a %s!", t.treasure)
	}
	return nil
}
