package statestore

import (
	"slices"
	"strconv"

	"card-drop/internal/domain/catalog"
	"card-drop/internal/domain/participant"
	"card-drop/internal/infra/snapshot"
)

// documentLocked must be called with s.mu held.
func (s *Store) documentLocked() *snapshot.Document {
	doc := snapshot.NewDocument()
	doc.ItemPoints = s.catalog.Snapshot()
	doc.Order = make([]int64, 0, len(s.order))
	for _, id := range s.order {
		p := s.participants[id]
		doc.Participants[id.String()] = snapshot.ParticipantRecord{
			DisplayName:   rawDisplayName(p),
			Items:         p.OwnedItems(),
			Score:         p.Score(),
			CooldownUntil: p.CooldownUntil(),
		}
		doc.Order = append(doc.Order, int64(id))
	}
	return doc
}

func rawDisplayName(p *participant.Participant) string {
	if !p.HasDisplayName() {
		return ""
	}
	return p.DisplayName()
}

// restore loads doc into an empty store. It reports whether anything had to
// be repaired: items missing a point value, or a score that did not match
// the owned items.
func (s *Store) restore(doc *snapshot.Document) bool {
	s.catalog = catalog.Reconstruct(doc.ItemPoints)
	repaired := false

	ids := make([]participant.ID, 0, len(doc.Participants))
	seen := make(map[participant.ID]bool, len(doc.Participants))
	for _, raw := range doc.Order {
		id := participant.ID(raw)
		if _, ok := doc.Participants[id.String()]; ok && !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	// records missing from the order list go last, by id
	var rest []participant.ID
	for key := range doc.Participants {
		v, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			s.logger.Warn("skipping participant with invalid id", "id", key)
			continue
		}
		if id := participant.ID(v); !seen[id] {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	ids = append(ids, rest...)

	for _, id := range ids {
		rec := doc.Participants[id.String()]
		sum := 0
		for _, item := range rec.Items {
			v, created := s.catalog.AssignIfAbsent(item, s.draw)
			if created {
				repaired = true
			}
			sum += v
		}
		score := rec.Score
		if score != sum {
			s.logger.Warn("score does not match owned items, recomputing",
				"participant_id", int64(id),
				"stored", rec.Score,
				"computed", sum)
			score = sum
			repaired = true
		}
		s.participants[id] = participant.Reconstruct(id, rec.DisplayName, rec.Items, score, rec.CooldownUntil)
		s.order = append(s.order, id)
	}
	return repaired
}
