package response

import (
	"card-drop/internal/pkg/ptr"
	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/queries"
)

type ClaimResponse struct {
	Outcome          string `json:"outcome"`
	ItemID           string `json:"item_id,omitempty"`
	Points           int    `json:"points"`
	Score            int    `json:"score"`
	CooldownUntil    int64  `json:"cooldown_until"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

func FromClaimResult(r *commands.ClaimResult) *ClaimResponse {
	return &ClaimResponse{
		Outcome:          r.Outcome.String(),
		ItemID:           r.ItemID,
		Points:           r.Points,
		Score:            r.Score,
		CooldownUntil:    r.CooldownUntil.Unix(),
		RemainingSeconds: int64(r.Remaining.Seconds()),
	}
}

type StatusResponse struct {
	ID               int64    `json:"id"`
	DisplayName      string   `json:"display_name"`
	Eligible         bool     `json:"eligible"`
	RemainingSeconds int64    `json:"remaining_seconds"`
	CooldownUntil    *int64   `json:"cooldown_until,omitempty"`
	Score            int      `json:"score"`
	Rank             *int     `json:"rank"`
	ItemCount        int      `json:"item_count"`
	Items            []string `json:"items"`
}

func FromStatusView(v *queries.StatusView) *StatusResponse {
	res := &StatusResponse{
		ID:               int64(v.ID),
		DisplayName:      v.DisplayName,
		Eligible:         v.Eligible,
		RemainingSeconds: int64(v.Remaining.Seconds()),
		CooldownUntil:    ptr.UnixFromTime(v.CooldownUntil),
		Score:            v.Score,
		Rank:             v.Rank,
		ItemCount:        v.ItemCount,
		Items:            v.Items,
	}
	if res.Items == nil {
		res.Items = []string{}
	}
	return res
}
