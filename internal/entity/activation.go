package entity

import "time"

// ActivationEvent - a single user interaction with a cell.
type ActivationEvent struct {
	MountID  string    `json:"mount_id"`
	Position int       `json:"position"`
	Label    string    `json:"label"`
	At       time.Time `json:"at"`
}
