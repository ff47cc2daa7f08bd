package domain

// Trait names. Systems check capabilities through these, trait bundles
// register under them.
const (
	TraitMoveable         = "Moveable"
	TraitPlayerActor      = "PlayerActor"
	TraitFungusActor      = "FungusActor"
	TraitWanderActor      = "WanderActor"
	TraitDestructible     = "Destructible"
	TraitAttacker         = "Attacker"
	TraitMessageRecipient = "MessageRecipient"
	TraitSight            = "Sight"
)

// GroupActor - every trait in this group makes its entity schedulable.
const GroupActor = "Actor"

// Template property keys read by trait initializers.
const (
	PropMaxHP        = "maxHp"
	PropHP           = "hp"
	PropDefenseValue = "defenseValue"
	PropAttackValue  = "attackValue"
	PropSightRadius  = "sightRadius"
	PropGrowths      = "growths"
)

// Defaults used when a template omits a property.
const (
	DefaultMaxHP       = 10
	DefaultAttackValue = 1
	DefaultSightRadius = 5
	DefaultGrowths     = 5
)

// NearbyRadius is the square radius of SendMessageNearby broadcasts.
const NearbyRadius = 5
