package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tatianab/treasure-hunter/internal/models"
)

// ShopMode selects which side of the counter the hunter is on.
type ShopMode int

const (
	ShopBuy ShopMode = iota
	ShopSell
)

// PurchaseOutcome says how a purchase went.
type PurchaseOutcome int

const (
	PurchaseRejected PurchaseOutcome = iota
	PurchaseBought
	PurchaseGranted // handed over for free by an intimidated shopkeeper
)

// SaleOutcome says how a sale went.
type SaleOutcome int

const (
	SaleRejected SaleOutcome = iota
	SaleSold
)

// Listing is one line of the price sheet.
type Listing struct {
	Item  Item
	Price int
}

// Shop prices items and brokers trades. Every shop sells the same catalog;
// only the markdown applied to buy-backs differs.
type Shop struct {
	markdown float64
	catalog  []models.CatalogEntry
}

// NewShop creates a shop that buys items back at price*markdown.
func NewShop(markdown float64, catalog []models.CatalogEntry) *Shop {
	return &Shop{markdown: markdown, catalog: catalog}
}

func (s *Shop) Markdown() float64 { return s.markdown }

// Listing returns the price sheet shown to h. The samurai-only item is
// listed only for a samurai.
func (s *Shop) Listing(h *Hunter) []Listing {
	listings := make([]Listing, 0, len(s.catalog))
	for _, entry := range s.catalog {
		if entry.Privileged && !h.Privileged() {
			continue
		}
		listings = append(listings, Listing{Item: Item(entry.Item), Price: entry.Price})
	}
	return listings
}

// PriceOf returns the buy price, or when selling the buy-back price rounded down.
// Unknown items are worth 0 either way.
func (s *Shop) PriceOf(item Item, buying bool) int {
	entry, ok := s.entry(item)
	if !ok {
		return 0
	}
	if buying {
		return entry.Price
	}
	return int(float64(entry.Price) * s.markdown)
}

// ConductPurchase sells item to h. A hunter carrying a sword is handed any
// item they lack without paying.
func (s *Shop) ConductPurchase(h *Hunter, item Item) (PurchaseOutcome, error) {
	if !s.stocks(h, item) {
		return PurchaseRejected, fmt.Errorf("%w: %s", ErrNotForSale, item)
	}

	if h.HasItem(Sword) && !h.HasItem(item) {
		if err := h.AddItem(item); err != nil {
			return PurchaseRejected, err
		}
		return PurchaseGranted, nil
	}

	if err := h.Buy(item, s.PriceOf(item, true)); err != nil {
		return PurchaseRejected, err
	}
	return PurchaseBought, nil
}

// ConductSale buys item back from h at the marked-down price.
func (s *Shop) ConductSale(h *Hunter, item Item) (SaleOutcome, error) {
	if err := h.Sell(item, s.PriceOf(item, false)); err != nil {
		return SaleRejected, err
	}
	return SaleSold, nil
}

// Enter runs the counter dialog and returns the closing remark. Only input
// errors are returned; rejected trades are part of the remark.
func (s *Shop) Enter(ctx context.Context, h *Hunter, mode ShopMode, d Display, in Input) (string, error) {
	d.Clear()
	if mode == ShopSell {
		return s.sellDialog(ctx, h, d, in)
	}
	return s.buyDialog(ctx, h, d, in)
}

func (s *Shop) buyDialog(ctx context.Context, h *Hunter, d Display, in Input) (string, error) {
	d.Present("Welcome to the shop! We have the finest wares in town.", StyleInfo)
	d.Present("Currently, we have the following items:", StyleInfo)
	d.Present(s.priceSheet(h), StyleInfo)
	d.Present("What're you lookin' to buy? ", StylePlain)

	answer, err := readCommand(ctx, in)
	if err != nil {
		return "", err
	}
	item := Item(answer)
	if !s.stocks(h, item) {
		return "We ain't got none of those.", nil
	}

	d.Present(fmt.Sprintf("It'll cost you %d gold. Buy it (y/n)? ", s.PriceOf(item, true)), StylePlain)
	confirm, err := readCommand(ctx, in)
	if err != nil {
		return "", err
	}
	if confirm != "y" {
		return "Maybe next time.", nil
	}

	outcome, err := s.ConductPurchase(h, item)
	switch {
	case outcome == PurchaseGranted:
		return "The sword intimidates the shopkeeper, and he gives you the item freely.", nil
	case outcome == PurchaseBought:
		return fmt.Sprintf("Ye' got yerself a %s. Come again soon.", item), nil
	case errors.Is(err, ErrKitFull):
		return "Yer pack is full, stranger. Sell somethin' first!", nil
	default:
		return "Hmm, either you don't have enough gold or you've already got one of those!", nil
	}
}

func (s *Shop) sellDialog(ctx context.Context, h *Hunter, d Display, in Input) (string, error) {
	d.Present("What're you lookin' to sell? ", StylePlain)
	d.Present("You currently have the following items: "+kitList(h), StylePlain)
	d.Present(fmt.Sprintf("We pay %d%% of the sticker price.", int(math.Round(s.Markdown()*100))), StyleInfo)

	answer, err := readCommand(ctx, in)
	if err != nil {
		return "", err
	}
	item := Item(answer)
	price := s.PriceOf(item, false)
	if price == 0 {
		return "We don't want none of those.", nil
	}

	d.Present(fmt.Sprintf("It'll get you %d gold. Sell it (y/n)? ", price), StylePlain)
	confirm, err := readCommand(ctx, in)
	if err != nil {
		return "", err
	}
	if confirm != "y" {
		return "Suit yerself.", nil
	}

	if _, err := s.ConductSale(h, item); err != nil {
		return "Stop stringin' me along!", nil
	}
	return "Pleasure doin' business with you.", nil
}

func (s *Shop) priceSheet(h *Hunter) string {
	var b strings.Builder
	for _, l := range s.Listing(h) {
		name := string(l.Item)
		fmt.Fprintf(&b, "%s: %d gold\n", strings.ToUpper(name[:1])+name[1:], l.Price)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (s *Shop) entry(item Item) (models.CatalogEntry, bool) {
	for _, entry := range s.catalog {
		if Item(entry.Item) == item {
			return entry, true
		}
	}
	return models.CatalogEntry{}, false
}

// stocks reports whether item is on the sheet shown to h.
func (s *Shop) stocks(h *Hunter, item Item) bool {
	entry, ok := s.entry(item)
	return ok && (!entry.Privileged || h.Privileged())
}

func kitList(h *Hunter) string {
	kit := h.Kit()
	if len(kit) == 0 {
		return "nothing"
	}
	names := make([]string, len(kit))
	for i, item := range kit {
		names[i] = string(item)
	}
	return strings.Join(names, " ")
}
