// Package reference classifies caller supplied entity references by their lexical shape.
package reference

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"
)

// Self is the sentinel referring to the authenticated caller's own system.
const Self = "@me"

// Scheme identifies which lookup strategy a reference selects.
type Scheme int

const (
	// SchemeUnknown means no pattern matched and no lookup should be issued.
	SchemeUnknown Scheme = iota
	// SchemeSelf is the "@me" sentinel.
	SchemeSelf
	// SchemeUUID is an opaque UUID token.
	SchemeUUID
	// SchemeAccount is a 17-19 digit linked account id.
	SchemeAccount
	// SchemeShortID is a five lowercase letter hid.
	SchemeShortID
)

func (s Scheme) String() string {
	switch s {
	case SchemeSelf:
		return "self"
	case SchemeUUID:
		return "uuid"
	case SchemeAccount:
		return "account"
	case SchemeShortID:
		return "short_id"
	default:
		return "unknown"
	}
}

var (
	// SystemSchemes is the dispatch order for system references.
	SystemSchemes = []Scheme{SchemeSelf, SchemeUUID, SchemeAccount, SchemeShortID}
	// OwnedSchemes is the dispatch order for member and group references.
	OwnedSchemes = []Scheme{SchemeUUID, SchemeShortID}
)

var (
	shortIDRegex = regexp.MustCompile(`^[a-z]{5}$`)
	accountRegex = regexp.MustCompile(`^[0-9]{17,19}$`)
)

// Ref is a parsed reference. Only the payload field matching Scheme is set.
type Ref struct {
	Scheme  Scheme
	Raw     string
	UUID    uuid.UUID
	Account uint64
}

type matcher func(raw string) (Ref, bool)

var matchers = map[Scheme]matcher{
	SchemeSelf:    matchSelf,
	SchemeUUID:    matchUUID,
	SchemeAccount: matchAccount,
	SchemeShortID: matchShortID,
}

// Parse returns the first scheme in order that matches raw, or SchemeUnknown.
func Parse(raw string, order []Scheme) Ref {
	for _, s := range order {
		m, ok := matchers[s]
		if !ok {
			continue
		}
		if ref, ok := m(raw); ok {
			return ref
		}
	}
	return Ref{Scheme: SchemeUnknown, Raw: raw}
}

// ParseSystem parses a system reference.
func ParseSystem(raw string) Ref {
	return Parse(raw, SystemSchemes)
}

// ParseOwned parses a member or group reference.
func ParseOwned(raw string) Ref {
	return Parse(raw, OwnedSchemes)
}

func matchSelf(raw string) (Ref, bool) {
	if raw != Self {
		return Ref{}, false
	}
	return Ref{Scheme: SchemeSelf, Raw: raw}, true
}

func matchUUID(raw string) (Ref, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return Ref{}, false
	}
	return Ref{Scheme: SchemeUUID, Raw: raw, UUID: id}, true
}

func matchAccount(raw string) (Ref, bool) {
	if !accountRegex.MatchString(raw) {
		return Ref{}, false
	}
	// 19 nines still fits in a uint64.
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return Ref{}, false
	}
	return Ref{Scheme: SchemeAccount, Raw: raw, Account: id}, true
}

func matchShortID(raw string) (Ref, bool) {
	if !shortIDRegex.MatchString(raw) {
		return Ref{}, false
	}
	return Ref{Scheme: SchemeShortID, Raw: raw}, true
}
