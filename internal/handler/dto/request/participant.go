package request

import (
	"strings"
)

type RenameParticipantRequest struct {
	FirstName string `json:"first_name" binding:"required,max=64"`
	LastName  string `json:"last_name" binding:"omitempty,max=64"`
}

// Normalized trims both parts; the last name is optional.
func (r RenameParticipantRequest) Normalized() (first, last string) {
	return strings.TrimSpace(r.FirstName), strings.TrimSpace(r.LastName)
}

type LeaderboardQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
