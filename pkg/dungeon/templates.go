package dungeon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/internal/traits"
)

var ErrUnknownTemplate = errors.New("unknown creature template")

// EntityTemplate - a creature definition as written in configuration:
// traits are referenced by name and resolved on Compile.
type EntityTemplate struct {
	Name       string         `yaml:"name"`
	Char       string         `yaml:"char"`
	Foreground string         `yaml:"foreground,omitempty"`
	Background string         `yaml:"background,omitempty"`
	Props      map[string]int `yaml:"props,omitempty"`
	Traits     []string       `yaml:"traits"`
}

// Compile resolves the trait names and returns a template ready for
// domain.NewEntity.
func (t EntityTemplate) Compile() (domain.Template, error) {
	if t.Name == "" {
		return domain.Template{}, errors.New("template has no name")
	}
	if len(t.Char) > 1 {
		return domain.Template{}, fmt.Errorf("template %q: char %q must be a single byte", t.Name, t.Char)
	}

	ts, err := traits.Resolve(t.Traits)
	if err != nil {
		return domain.Template{}, fmt.Errorf("template %q: %w", t.Name, err)
	}

	var char byte
	if t.Char != "" {
		char = t.Char[0]
	}

	props := make(map[string]int, len(t.Props))
	for k, v := range t.Props {
		props[k] = v
	}

	return domain.Template{
		Name:       t.Name,
		Char:       char,
		Foreground: t.Foreground,
		Background: t.Background,
		Props:      props,
		Traits:     ts,
	}, nil
}

// --- PLAYER ---

var Player = EntityTemplate{
	Name:       "player",
	Char:       "@",
	Foreground: "white",
	Background: "black",
	Props: map[string]int{
		domain.PropMaxHP:       40,
		domain.PropAttackValue: 10,
		domain.PropSightRadius: 6,
	},
	Traits: []string{
		domain.TraitMoveable,
		domain.TraitPlayerActor,
		domain.TraitAttacker,
		domain.TraitDestructible,
		domain.TraitSight,
		domain.TraitMessageRecipient,
	},
}

// --- CREATURES ---

var Fungus = EntityTemplate{
	Name:       "fungus",
	Char:       "F",
	Foreground: "lime",
	Props: map[string]int{
		domain.PropMaxHP:   10,
		domain.PropGrowths: domain.DefaultGrowths,
	},
	Traits: []string{domain.TraitFungusActor, domain.TraitDestructible},
}

var Bat = EntityTemplate{
	Name:       "bat",
	Char:       "B",
	Foreground: "white",
	Props: map[string]int{
		domain.PropMaxHP:       5,
		domain.PropAttackValue: 4,
	},
	Traits: []string{domain.TraitWanderActor, domain.TraitMoveable, domain.TraitAttacker, domain.TraitDestructible},
}

var Newt = EntityTemplate{
	Name:       "newt",
	Char:       ":",
	Foreground: "yellow",
	Props: map[string]int{
		domain.PropMaxHP:       3,
		domain.PropAttackValue: 2,
	},
	Traits: []string{domain.TraitWanderActor, domain.TraitMoveable, domain.TraitAttacker, domain.TraitDestructible},
}

// Templates is the built-in catalog, keyed by name.
var Templates = map[string]EntityTemplate{
	Player.Name: Player,
	Fungus.Name: Fungus,
	Bat.Name:    Bat,
	Newt.Name:   Newt,
}

// Catalog - creature templates by name, compiled once.
type Catalog struct {
	templates map[string]domain.Template
}

// NewCatalog compiles the built-in templates plus extra. An extra template
// with a built-in name replaces it.
func NewCatalog(extra ...EntityTemplate) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]domain.Template)}

	all := make([]EntityTemplate, 0, len(Templates)+len(extra))
	for _, name := range sortedKeys(Templates) {
		all = append(all, Templates[name])
	}
	all = append(all, extra...)

	for _, t := range all {
		tmpl, err := t.Compile()
		if err != nil {
			return nil, err
		}
		c.templates[t.Name] = tmpl
	}
	return c, nil
}

// Lookup returns the compiled template called name.
func (c *Catalog) Lookup(name string) (domain.Template, error) {
	tmpl, ok := c.templates[name]
	if !ok {
		return domain.Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return tmpl, nil
}

// Names lists the catalog, sorted.
func (c *Catalog) Names() []string {
	return sortedKeys(c.templates)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
