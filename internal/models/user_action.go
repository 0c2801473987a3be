package models

import "time"

type UserAction struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;uniqueIndex:uidx_user_action" json:"user_id"`
	ActionID    string    `gorm:"not null;uniqueIndex:uidx_user_action" json:"action_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
	Notes       string    `json:"notes,omitempty"`
}

// HistoryEntry is a completion record joined with its catalog definition.
// Action is nil when the referenced catalog entry has since been removed.
type HistoryEntry struct {
	UserAction
	Action *EcoAction `json:"action"`
}
