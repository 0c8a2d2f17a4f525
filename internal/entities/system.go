// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// SystemID is the internal identity of a system.
type SystemID int64

// System is a profile owning members and groups.
type System struct {
	ID                 SystemID
	UUID               uuid.UUID
	Hid                string
	Name               *string
	Description        *string
	Tag                *string
	AvatarURL          *string
	Token              *string
	Created            time.Time
	DescriptionPrivacy PrivacyLevel
	MemberListPrivacy  PrivacyLevel
	Accounts           []uint64
}

// OwnerID returns the system's own id.
func (s System) OwnerID() SystemID {
	return s.ID
}
