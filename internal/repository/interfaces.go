// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/ambdroid/PluralKit/internal/entities"

	"github.com/google/uuid"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// SystemInterface exposes system lookups. A nil system with a nil error means no match.
type SystemInterface interface {
	GetSystem(ctx context.Context, id entities.SystemID) (*entities.System, error)
	GetSystemByGUID(ctx context.Context, guid uuid.UUID) (*entities.System, error)
	GetSystemByAccount(ctx context.Context, account uint64) (*entities.System, error)
	GetSystemByHid(ctx context.Context, hid string) (*entities.System, error)
	GetSystemByToken(ctx context.Context, token string) (*entities.System, error)
}

// MemberInterface exposes member lookups.
type MemberInterface interface {
	GetMemberByGUID(ctx context.Context, guid uuid.UUID) (*entities.Member, error)
	GetMemberByHid(ctx context.Context, hid string) (*entities.Member, error)
}

// GroupInterface exposes group lookups.
type GroupInterface interface {
	GetGroupByGUID(ctx context.Context, guid uuid.UUID) (*entities.Group, error)
	GetGroupByHid(ctx context.Context, hid string) (*entities.Group, error)
}
