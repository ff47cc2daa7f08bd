package api

import (
	"encoding/json"
)

// Response types
const (
	TypeUpdate = "UPDATE"
	TypeError  = "ERROR"
)

// --- SERVER -> CLIENT ---

// ServerResponse is the root object the server sends to a client: a full
// snapshot of what the player currently sees and remembers. One is sent
// after every command that takes a turn.
type ServerResponse struct {
	// Type is UPDATE for snapshots and ERROR for rejected commands.
	Type string `json:"type"`

	// Tick counts turns run by the engine so far.
	Tick uint64 `json:"tick"`

	// MyEntityID is the player entity controlled by this client.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Level the player is on (0-based dungeon depth).
	Level int `json:"level"`

	// Grid describes the dungeon dimensions.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map holds every visible or explored tile of the player's level.
	Map []TileView `json:"map,omitempty"`

	// Entities holds every entity currently in the player's field of view.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs are the messages delivered to the player since the last snapshot.
	Logs []LogEntry `json:"logs,omitempty"`

	// GameOver is set once the player has died.
	GameOver bool `json:"gameOver"`

	// Error explains a rejected command (Type == ERROR).
	Error string `json:"error,omitempty"`
}

// GridMeta carries the map size so the client can size its grid.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
	Depth  int `json:"d"`
}

// TileView - one map cell as rendered.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol     string `json:"symbol"`
	Color      string `json:"color"`
	Background string `json:"background"`

	IsWalkable bool `json:"isWalkable"`

	// IsVisible is true inside the current field of view (render bright).
	IsVisible bool `json:"isVisible"`

	// IsExplored is true once the cell has ever been seen. Explored but not
	// visible cells render dimmed.
	IsExplored bool `json:"isExplored"`
}

// EntityView - one visible entity.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, CREATURE
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
		Z int `json:"z"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats is present for entities that can take damage.
	Stats *StatsView `json:"stats,omitempty"`

	Traits []string `json:"traits,omitempty"`
}

// StatsView - health and combat numbers.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Attack  int  `json:"attack,omitempty"`
	Defense int  `json:"defense,omitempty"`
	IsDead  bool `json:"isDead"`
}

// LogEntry - one message line.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root object of every client message.
type ClientCommand struct {
	// Action is INIT, MOVE, WAIT or CONFIRM.
	Action string `json:"action"`

	// Payload depends on Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload is used by MOVE. Dz of -1 climbs stairs up, +1 goes down.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
	Dz int `json:"dz"`
}

// InitPayload is used by INIT.
type InitPayload struct {
	Name string `json:"name,omitempty"`
	Seed *int64 `json:"seed,omitempty"`
}
