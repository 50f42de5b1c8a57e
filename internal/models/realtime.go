package models

import "time"

// MatchNotice — realtime-сповіщення, яке отримує кожен з пари після збігу.
type MatchNotice struct {
	Type      string    `json:"type"` // "match_found"
	EventID   string    `json:"event_id"`
	MatchID   string    `json:"match_id"`
	PartnerID string    `json:"partner_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
