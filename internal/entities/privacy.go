package entities

// PrivacyLevel controls visibility of a field or entity to non-owners.
type PrivacyLevel string

const (
	// PrivacyPublic is visible to everyone.
	PrivacyPublic PrivacyLevel = "public"
	// PrivacyPrivate is visible to the owning system only.
	PrivacyPrivate PrivacyLevel = "private"
)

// CanAccess reports whether a caller in the given context may see data at this level.
func (p PrivacyLevel) CanAccess(ctx LookupContext) bool {
	return p != PrivacyPrivate || ctx == ByOwner
}

// LookupContext describes the caller's relation to the entity being read.
type LookupContext int

const (
	// ByNonOwner is any caller other than the owning system, including anonymous ones.
	ByNonOwner LookupContext = iota
	// ByOwner is the owning system.
	ByOwner
)

func (c LookupContext) String() string {
	if c == ByOwner {
		return "owner"
	}
	return "non_owner"
}

// Owned is implemented by entities that belong to a system.
type Owned interface {
	OwnerID() SystemID
}
