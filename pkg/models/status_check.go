// Package models contains shared data models used across the Lotaya API codebase.
package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a lightweight liveness ping recorded by a client.
// Records are append-only; they are never mutated or deleted.
type StatusCheck struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	ClientName string    `db:"client_name" json:"client_name"`
	Timestamp  time.Time `db:"timestamp"   json:"timestamp"`
}
