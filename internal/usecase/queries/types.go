package queries

import (
	"time"

	"card-drop/internal/domain/participant"
)

// StatusView answers "can I claim, and where do I stand".
type StatusView struct {
	ID            participant.ID `json:"id"`
	DisplayName   string         `json:"display_name"`
	Eligible      bool           `json:"eligible"`
	Remaining     time.Duration  `json:"remaining"`
	CooldownUntil *time.Time     `json:"cooldown_until,omitempty"`
	Score         int            `json:"score"`
	// Rank is nil until the participant has claimed something.
	Rank      *int     `json:"rank,omitempty"`
	ItemCount int      `json:"item_count"`
	Items     []string `json:"items"`
}

type LeaderboardEntry struct {
	Rank        int            `json:"rank"`
	ID          participant.ID `json:"id"`
	DisplayName string         `json:"display_name"`
	Score       int            `json:"score"`
	ItemCount   int            `json:"item_count"`
}

type StatsView struct {
	Participants int `json:"participants"`
	Claimers     int `json:"claimers"`
	ItemsOwned   int `json:"items_owned"`
	TotalPoints  int `json:"total_points"`
	CatalogSize  int `json:"catalog_size"`
	AvailableNow int `json:"available_items"`
}
