package usecase

import (
	"context"

	"github.com/ambdroid/PluralKit/internal/entities"
)

// SystemUsecaseInterface resolves system references for the delivery layer.
type SystemUsecaseInterface interface {
	ResolveSystem(ctx context.Context, ref string, caller *entities.SystemID) (*entities.System, error)
}

// MemberUsecaseInterface resolves member references.
type MemberUsecaseInterface interface {
	ResolveMember(ctx context.Context, ref string) (*entities.Member, error)
}

// GroupUsecaseInterface resolves group references.
type GroupUsecaseInterface interface {
	ResolveGroup(ctx context.Context, ref string) (*entities.Group, error)
}

// AccessUsecaseInterface classifies the caller's relation to an entity.
type AccessUsecaseInterface interface {
	ContextFor(entity entities.Owned, caller *entities.SystemID) entities.LookupContext
}
