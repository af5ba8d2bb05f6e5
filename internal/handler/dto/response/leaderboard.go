package response

import (
	"card-drop/internal/usecase/queries"
)

type LeaderboardEntryResponse struct {
	Rank        int    `json:"rank"`
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
	ItemCount   int    `json:"item_count"`
}

func FromLeaderboard(entries []queries.LeaderboardEntry) []*LeaderboardEntryResponse {
	res := make([]*LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = &LeaderboardEntryResponse{
			Rank:        e.Rank,
			ID:          int64(e.ID),
			DisplayName: e.DisplayName,
			Score:       e.Score,
			ItemCount:   e.ItemCount,
		}
	}
	return res
}

type StatsResponse struct {
	Participants   int `json:"participants"`
	Claimers       int `json:"claimers"`
	ItemsOwned     int `json:"items_owned"`
	TotalPoints    int `json:"total_points"`
	CatalogSize    int `json:"catalog_size"`
	AvailableItems int `json:"available_items"`
}

func FromStatsView(v *queries.StatsView) *StatsResponse {
	return &StatsResponse{
		Participants:   v.Participants,
		Claimers:       v.Claimers,
		ItemsOwned:     v.ItemsOwned,
		TotalPoints:    v.TotalPoints,
		CatalogSize:    v.CatalogSize,
		AvailableItems: v.AvailableNow,
	}
}
