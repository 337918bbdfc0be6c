package engine

import "errors"

// Rejected actions. Wrap with fmt.Errorf("%w: ...") for detail.
var (
	ErrInsufficientGold = errors.New("not enough gold")
	ErrAlreadyOwned     = errors.New("item already owned")
	ErrNotOwned         = errors.New("item not owned")
	ErrKitFull          = errors.New("kit is full")
	ErrPrivilegedOnly   = errors.New("item is reserved for samurai")
	ErrNotForSale       = errors.New("item is not for sale")
	ErrNotBuyable       = errors.New("item has no buy-back price")

	ErrTreasureOwned = errors.New("treasure already collected")
	ErrNotTreasure   = errors.New("not a collectable treasure")
	ErrTreasureFull  = errors.New("treasure bag is full")
)

// ErrBankrupt ends the session. It is the only error that escapes a town.
var ErrBankrupt = errors.New("ran out of gold")
