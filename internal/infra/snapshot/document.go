package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"card-drop/internal/infra"
)

// CurrentVersion is bumped when the document layout changes incompatibly.
const CurrentVersion = 1

type ParticipantRecord struct {
	DisplayName   string     `json:"display_name,omitempty"`
	Items         []string   `json:"items"`
	Score         int        `json:"score"`
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
}

// Document is the whole persisted state, overwritten in full on each flush.
type Document struct {
	Version      int                          `json:"version"`
	SavedAt      time.Time                    `json:"saved_at"`
	Participants map[string]ParticipantRecord `json:"participants"`
	ItemPoints   map[string]int               `json:"item_points"`
	// Order keeps leaderboard ties stable across restarts.
	Order []int64 `json:"participant_order,omitempty"`
}

func NewDocument() *Document {
	return &Document{
		Version:      CurrentVersion,
		Participants: make(map[string]ParticipantRecord),
		ItemPoints:   make(map[string]int),
	}
}

// Backend is a durable home for one Document. Load returns an infra
// RepositoryError of KindNotFound when nothing has been saved yet.
type Backend interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

func Encode(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func Decode(logger *slog.Logger, data []byte) (*Document, error) {
	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDecodeFailure, "failed to decode snapshot", err)
	}
	if doc.Participants == nil {
		doc.Participants = make(map[string]ParticipantRecord)
	}
	if doc.ItemPoints == nil {
		doc.ItemPoints = make(map[string]int)
	}
	if doc.Version == 0 {
		doc.Version = CurrentVersion
	}
	return doc, nil
}
