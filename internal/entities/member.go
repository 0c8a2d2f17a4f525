package entities

import (
	"time"

	"github.com/google/uuid"
)

// MemberID is the internal identity of a member.
type MemberID int64

// Member belongs to exactly one system.
type Member struct {
	ID          MemberID
	UUID        uuid.UUID
	Hid         string
	System      SystemID
	Name        string
	DisplayName *string
	Pronouns    *string
	Description *string
	Created     time.Time
	Visibility  PrivacyLevel
}

// OwnerID returns the owning system.
func (m Member) OwnerID() SystemID {
	return m.System
}
