// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/ambdroid/PluralKit/internal/entities"
	oapi "github.com/ambdroid/PluralKit/internal/oapi"
)

// ToOAPISystem maps a system to its transport model as seen from ctx.
func ToOAPISystem(s entities.System, ctx entities.LookupContext) oapi.System {
	created := s.Created
	res := oapi.System{
		Id:        s.Hid,
		Uuid:      s.UUID.String(),
		Name:      s.Name,
		Tag:       s.Tag,
		AvatarUrl: s.AvatarURL,
		Created:   &created,
	}
	if s.DescriptionPrivacy.CanAccess(ctx) {
		res.Description = s.Description
	}
	if ctx == entities.ByOwner {
		res.Privacy = &oapi.SystemPrivacy{
			DescriptionPrivacy: oapi.PrivacyLevel(s.DescriptionPrivacy),
			MemberListPrivacy:  oapi.PrivacyLevel(s.MemberListPrivacy),
		}
	}
	return res
}

// ToOAPIMember maps a member to its transport model as seen from ctx.
func ToOAPIMember(m entities.Member, ctx entities.LookupContext) oapi.Member {
	created := m.Created
	res := oapi.Member{
		Id:          m.Hid,
		Uuid:        m.UUID.String(),
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Pronouns:    m.Pronouns,
		Description: m.Description,
		Created:     &created,
	}
	if ctx == entities.ByOwner {
		res.Privacy = &oapi.MemberPrivacy{Visibility: oapi.PrivacyLevel(m.Visibility)}
	}
	return res
}

// ToOAPIGroup maps a group to its transport model as seen from ctx.
func ToOAPIGroup(g entities.Group, ctx entities.LookupContext) oapi.Group {
	created := g.Created
	res := oapi.Group{
		Id:          g.Hid,
		Uuid:        g.UUID.String(),
		Name:        g.Name,
		DisplayName: g.DisplayName,
		Description: g.Description,
		Created:     &created,
	}
	if ctx == entities.ByOwner {
		res.Privacy = &oapi.GroupPrivacy{Visibility: oapi.PrivacyLevel(g.Visibility)}
	}
	return res
}
