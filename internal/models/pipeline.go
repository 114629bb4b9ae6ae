package models

import "time"

// Pipeline is a named workflow variant: an ordered list of kanban lanes that
// converted clients move through. The first lane is the landing lane for a
// fresh conversion.
type Pipeline struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Lanes     []string  `json:"lanes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
