package domain

// ElectionMode says who decides whether voting is open.
type ElectionMode string

const (
	// ModeManual: an admin flips IsOpen; StartAt/EndAt are informational.
	ModeManual ElectionMode = "manual"
	// ModeScheduled: the external API derives IsOpen from [StartAt, EndAt) in Timezone.
	ModeScheduled ElectionMode = "scheduled"
)

// ElectionStatus is relayed as-is from the external API.
type ElectionStatus struct {
	IsOpen   bool         `json:"isOpen"`
	Mode     ElectionMode `json:"mode"`
	StartAt  *string      `json:"startAt,omitempty"`
	EndAt    *string      `json:"endAt,omitempty"`
	Timezone *string      `json:"timezone,omitempty"`
}

// Town is a town or neighborhood. Votes comes from the local vote-count store,
// Percentage from the external API.
type Town struct {
	ID         TownID   `json:"id"`
	Name       string   `json:"name"`
	Votes      int64    `json:"votes"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// Top3Town is one row of the standings computed by the external API.
type Top3Town struct {
	Rank   int    `json:"rank"`
	TownID TownID `json:"townId"`
	Name   string `json:"name"`
	Votes  int64  `json:"votes"`
}
