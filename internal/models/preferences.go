package models

import "time"

// UserPreferences holds per-user settings, currently the custom task action
// type labels. Persisted server-side so they survive across devices.
type UserPreferences struct {
	UserID            int64     `json:"user_id"`
	CustomActionTypes []string  `json:"custom_action_types"`
	UpdatedAt         time.Time `json:"updated_at"`
}
