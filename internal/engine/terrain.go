package engine

import "fmt"

// Terrain surrounds a town. Leaving requires the needed item.
type Terrain struct {
	Name   string
	Needed Item
}

// CanCross reports whether the hunter carries the needed item.
func (t Terrain) CanCross(h *Hunter) bool {
	return h.HasItem(t.Needed)
}

func (t Terrain) String() string {
	return fmt.Sprintf("%s needs a(n) %s to cross.", t.Name, t.Needed)
}
