package mapper

import (
	"testing"
	"time"

	"github.com/ambdroid/PluralKit/internal/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestToOAPISystemHidesPrivateDescription(t *testing.T) {
	sys := entities.System{
		ID:                 1,
		UUID:               uuid.New(),
		Hid:                "abcde",
		Name:               strPtr("Example"),
		Description:        strPtr("secret"),
		Token:              strPtr("token"),
		Created:            time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC),
		DescriptionPrivacy: entities.PrivacyPrivate,
		MemberListPrivacy:  entities.PrivacyPublic,
	}

	public := ToOAPISystem(sys, entities.ByNonOwner)
	require.Equal(t, "abcde", public.Id)
	require.Equal(t, sys.UUID.String(), public.Uuid)
	require.Nil(t, public.Description)
	require.Nil(t, public.Privacy)

	owner := ToOAPISystem(sys, entities.ByOwner)
	require.Equal(t, "secret", *owner.Description)
	require.NotNil(t, owner.Privacy)
	require.EqualValues(t, entities.PrivacyPrivate, owner.Privacy.DescriptionPrivacy)
}

func TestToOAPISystemPublicDescription(t *testing.T) {
	sys := entities.System{Hid: "abcde", Description: strPtr("hello"), DescriptionPrivacy: entities.PrivacyPublic}
	require.Equal(t, "hello", *ToOAPISystem(sys, entities.ByNonOwner).Description)
}

func TestToOAPIMemberPrivacyOnlyForOwner(t *testing.T) {
	m := entities.Member{Hid: "mmbra", UUID: uuid.New(), Name: "Alex", Pronouns: strPtr("they/them"), Visibility: entities.PrivacyPublic}

	public := ToOAPIMember(m, entities.ByNonOwner)
	require.Equal(t, "Alex", public.Name)
	require.Equal(t, "they/them", *public.Pronouns)
	require.Nil(t, public.Privacy)

	owner := ToOAPIMember(m, entities.ByOwner)
	require.NotNil(t, owner.Privacy)
	require.EqualValues(t, entities.PrivacyPublic, owner.Privacy.Visibility)
}

func TestToOAPIGroupPrivacyOnlyForOwner(t *testing.T) {
	g := entities.Group{Hid: "grpaa", UUID: uuid.New(), Name: "Friends", Visibility: entities.PrivacyPrivate}

	require.Nil(t, ToOAPIGroup(g, entities.ByNonOwner).Privacy)
	require.EqualValues(t, entities.PrivacyPrivate, ToOAPIGroup(g, entities.ByOwner).Privacy.Visibility)
}
