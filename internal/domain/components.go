package domain

// --- COMPONENTS ---
// Per-instance state seeded by trait initializers.

// HealthComponent - Destructible state.
type HealthComponent struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
}

// Damage lowers HP. Returns true when HP reached zero or below.
// Negative amounts are treated as zero.
func (h *HealthComponent) Damage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	h.HP -= amount
	return h.HP <= 0
}

// Heal restores HP up to MaxHP. Dead entities stay dead.
func (h *HealthComponent) Heal(amount int) {
	if h.HP <= 0 {
		return
	}
	h.HP += amount
	if h.HP > h.MaxHP {
		h.HP = h.MaxHP
	}
}

// CombatComponent - Attacker state.
type CombatComponent struct {
	Attack int `json:"attack"`
}

// VisionComponent - Sight state.
type VisionComponent struct {
	Radius int `json:"radius"`
}

// InboxComponent - MessageRecipient state: an unbounded queue drained by
// its owner once per turn.
type InboxComponent struct {
	messages []string
}

// Push appends a message.
func (in *InboxComponent) Push(message string) {
	in.messages = append(in.messages, message)
}

// Messages returns the pending messages without clearing them.
func (in *InboxComponent) Messages() []string {
	return in.messages
}

// Drain returns the pending messages and clears the queue.
func (in *InboxComponent) Drain() []string {
	out := in.messages
	in.messages = nil
	return out
}

// Len returns the number of pending messages.
func (in *InboxComponent) Len() int {
	return len(in.messages)
}

// GrowthComponent - FungusActor state.
type GrowthComponent struct {
	Remaining int `json:"remaining"`
}

// PlayerComponent - PlayerActor state.
type PlayerComponent struct {
	// GameOver is raised by the player's own turn once health is gone.
	GameOver bool `json:"gameOver"`
}
