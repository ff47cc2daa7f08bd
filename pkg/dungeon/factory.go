package dungeon

import (
	"github.com/Goluxas/roguelike-tutorial/internal/domain"
)

// CreatePlayer builds the player from the catalog's "player" template.
// A non-empty name overrides the template name.
func (c *Catalog) CreatePlayer(name string) (*domain.Entity, error) {
	tmpl, err := c.Lookup(Player.Name)
	if err != nil {
		return nil, err
	}
	p := domain.NewEntity(tmpl)
	if name != "" {
		p.SetName(name)
	}
	return p, nil
}

// Spawn builds a detached creature from the template called name.
func (c *Catalog) Spawn(name string) (*domain.Entity, error) {
	tmpl, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return domain.NewEntity(tmpl), nil
}
