package entities

import (
	"time"

	"github.com/google/uuid"
)

// GroupID is the internal identity of a group.
type GroupID int64

// Group belongs to exactly one system.
type Group struct {
	ID          GroupID
	UUID        uuid.UUID
	Hid         string
	System      SystemID
	Name        string
	DisplayName *string
	Description *string
	Created     time.Time
	Visibility  PrivacyLevel
}

// OwnerID returns the owning system.
func (g Group) OwnerID() SystemID {
	return g.System
}
