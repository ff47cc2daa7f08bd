package domain

import (
	"sort"

	"github.com/Goluxas/roguelike-tutorial/internal/core/types"
	"github.com/Goluxas/roguelike-tutorial/internal/core/types/enums"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Behaviors is the entity method table: one optional slot per behavior a
// trait can contribute. A nil slot means the entity cannot do that.
type Behaviors struct {
	Act            func(e *Entity)
	TryMove        func(e *Entity, x, y, z int) bool
	Attack         func(e *Entity, target *Entity)
	TakeDamage     func(e *Entity, attacker *Entity, damage int)
	ReceiveMessage func(e *Entity, message string)
}

// fill copies into b every slot of src that b does not define yet.
func (b *Behaviors) fill(src Behaviors) {
	if b.Act == nil {
		b.Act = src.Act
	}
	if b.TryMove == nil {
		b.TryMove = src.TryMove
	}
	if b.Attack == nil {
		b.Attack = src.Attack
	}
	if b.TakeDamage == nil {
		b.TakeDamage = src.TakeDamage
	}
	if b.ReceiveMessage == nil {
		b.ReceiveMessage = src.ReceiveMessage
	}
}

// Trait - a named bundle of behaviors plus an optional initializer that
// seeds per-instance state. Group lets unrelated traits share a capability
// label (everything scheduled is in GroupActor).
type Trait struct {
	Name      string
	Group     string
	Behaviors Behaviors
	Init      func(e *Entity, tmpl Template)
}

// Template - everything needed to construct an entity.
type Template struct {
	Name       string
	Char       byte
	Foreground string // palette name or #RRGGBB, white when empty
	Background string // black when empty
	Props      map[string]int

	// Behaviors set here are the entity's own and win over any trait.
	Behaviors Behaviors
	Traits    []*Trait
}

// Prop reads a numeric template key, def when absent.
func (t Template) Prop(key string, def int) int {
	if v, ok := t.Props[key]; ok {
		return v
	}
	return def
}

// HasTrait reports whether the template lists a trait with that name.
func (t Template) HasTrait(name string) bool {
	for _, tr := range t.Traits {
		if tr.Name == name {
			return true
		}
	}
	return false
}

// Entity - anything that lives on the map: the player and every creature.
type Entity struct {
	ID types.EntityID

	name  string
	glyph types.Glyph

	x, y, z int

	// world is a lookup-only back-reference; the World owns placement.
	world *World

	template  Template
	behaviors Behaviors
	traits    mapset.Set[string]
	groups    mapset.Set[string]

	// Components (nil means the capability is absent)
	Health *HealthComponent
	Combat *CombatComponent
	Vision *VisionComponent
	Inbox  *InboxComponent
	Growth *GrowthComponent
	Player *PlayerComponent
}

// NewEntity composes an entity from a template.
//
// Order matters: template behaviors first, then traits in listed order, each
// filling only the slots still empty. Initializers run afterwards, also in
// listed order, with the original template.
func NewEntity(tmpl Template) *Entity {
	kind := enums.EntityKindCreature
	if tmpl.HasTrait(TraitPlayerActor) {
		kind = enums.EntityKindPlayer
	}

	char := tmpl.Char
	if char == 0 {
		char = types.DefaultChar
	}

	e := &Entity{
		ID:        types.NextEntityID(kind),
		name:      tmpl.Name,
		glyph:     types.MakeGlyph(char, templateColor(tmpl, tmpl.Foreground, types.DefaultForeground), templateColor(tmpl, tmpl.Background, types.DefaultBackground)),
		template:  tmpl,
		behaviors: tmpl.Behaviors,
		traits:    mapset.New[string](),
		groups:    mapset.New[string](),
	}

	for _, tr := range tmpl.Traits {
		e.behaviors.fill(tr.Behaviors)
		e.traits.Put(tr.Name)
		if tr.Group != "" {
			e.groups.Put(tr.Group)
		}
	}

	for _, tr := range tmpl.Traits {
		if tr.Init != nil {
			tr.Init(e, tmpl)
		}
	}

	return e
}

func templateColor(tmpl Template, value string, def uint32) uint32 {
	if value == "" {
		return def
	}
	c, err := types.ParseColor(value)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "composition",
			"template":  tmpl.Name,
			"color":     value,
		}).Warn("Unknown template color, using default.")
		return def
	}
	return c
}

func (e *Entity) Name() string { return e.name }
func (e *Entity) SetName(name string) { e.name = name }
func (e *Entity) Glyph() types.Glyph { return e.glyph }
func (e *Entity) X() int { return e.x }
func (e *Entity) Y() int { return e.y }
func (e *Entity) Z() int { return e.z }
func (e *Entity) World() *World { return e.world }
func (e *Entity) Template() Template { return e.template }
func (e *Entity) Behaviors() Behaviors { return e.behaviors }
func (e *Entity) Position() (x, y, z int) { return e.x, e.y, e.z }

// SetPosition moves the entity. When it is placed on a world the position
// index is updated through World.UpdateEntityPosition, which panics (and
// leaves the entity where it was) on an out-of-bounds or occupied target.
func (e *Entity) SetPosition(x, y, z int) {
	oldX, oldY, oldZ := e.x, e.y, e.z
	e.x, e.y, e.z = x, y, z
	if e.world != nil {
		e.world.UpdateEntityPosition(e, oldX, oldY, oldZ)
	}
}

// HasTrait checks a trait name or a group name.
func (e *Entity) HasTrait(nameOrGroup string) bool {
	return e.traits.Has(nameOrGroup) || e.groups.Has(nameOrGroup)
}

// Has is HasTrait for the trait value itself; it only matches by name.
func (e *Entity) Has(tr *Trait) bool {
	if tr == nil {
		return false
	}
	return e.traits.Has(tr.Name)
}

// Traits lists attached trait names, sorted.
func (e *Entity) Traits() []string {
	names := make([]string, 0, e.traits.Size())
	e.traits.Each(func(name string) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}

// Act runs the entity's turn. No-op without an Act behavior.
func (e *Entity) Act() {
	if e.behaviors.Act != nil {
		e.behaviors.Act(e)
	}
}

// TryMove attempts to move to (x, y, z). False means the move was rejected
// (or the entity cannot move at all).
func (e *Entity) TryMove(x, y, z int) bool {
	if e.behaviors.TryMove == nil {
		return false
	}
	return e.behaviors.TryMove(e, x, y, z)
}

// Attack attacks target if the entity has an Attack behavior.
func (e *Entity) Attack(target *Entity) {
	if e.behaviors.Attack != nil {
		e.behaviors.Attack(e, target)
	}
}

// TakeDamage applies damage if the entity has a TakeDamage behavior.
func (e *Entity) TakeDamage(attacker *Entity, damage int) {
	if e.behaviors.TakeDamage != nil {
		e.behaviors.TakeDamage(e, attacker, damage)
	}
}

// ReceiveMessage delivers a formatted message.
func (e *Entity) ReceiveMessage(message string) {
	if e.behaviors.ReceiveMessage != nil {
		e.behaviors.ReceiveMessage(e, message)
	}
}

// DrainMessages returns and clears the entity's message queue.
func (e *Entity) DrainMessages() []string {
	if e.Inbox == nil {
		return nil
	}
	return e.Inbox.Drain()
}

// IsAlive is false only for entities with health at or below zero.
func (e *Entity) IsAlive() bool {
	return e.Health == nil || e.Health.HP > 0
}
