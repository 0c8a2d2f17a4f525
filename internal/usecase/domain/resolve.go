package domain

import (
	"context"
	"fmt"

	"github.com/ambdroid/PluralKit/internal/entities"
	"github.com/ambdroid/PluralKit/internal/reference"
)

// ResolveSystem looks up a system by "@me", UUID, linked account or short id, in that order.
// A nil system with a nil error means the reference matched nothing.
func (u *Usecase) ResolveSystem(ctx context.Context, ref string, caller *entities.SystemID) (*entities.System, error) {
	parsed := reference.ParseSystem(ref)
	switch parsed.Scheme {
	case reference.SchemeUnknown:
		u.log.Debugw("unrecognized system reference", "ref", ref)
		return nil, nil
	case reference.SchemeSelf:
		if caller == nil {
			return nil, entities.ErrAuthRequired
		}
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var (
		sys *entities.System
		err error
	)
	switch parsed.Scheme {
	case reference.SchemeSelf:
		sys, err = u.repo.GetSystem(ctx, *caller)
	case reference.SchemeUUID:
		sys, err = u.repo.GetSystemByGUID(ctx, parsed.UUID)
	case reference.SchemeAccount:
		sys, err = u.repo.GetSystemByAccount(ctx, parsed.Account)
	case reference.SchemeShortID:
		sys, err = u.repo.GetSystemByHid(ctx, parsed.Raw)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve system by %s: %w", parsed.Scheme, err)
	}
	return sys, nil
}

// ResolveMember looks up a member by UUID or short id.
func (u *Usecase) ResolveMember(ctx context.Context, ref string) (*entities.Member, error) {
	parsed := reference.ParseOwned(ref)
	if parsed.Scheme == reference.SchemeUnknown {
		u.log.Debugw("unrecognized member reference", "ref", ref)
		return nil, nil
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var (
		member *entities.Member
		err    error
	)
	if parsed.Scheme == reference.SchemeUUID {
		member, err = u.repo.GetMemberByGUID(ctx, parsed.UUID)
	} else {
		member, err = u.repo.GetMemberByHid(ctx, parsed.Raw)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve member by %s: %w", parsed.Scheme, err)
	}
	return member, nil
}

// ResolveGroup looks up a group by UUID or short id.
func (u *Usecase) ResolveGroup(ctx context.Context, ref string) (*entities.Group, error) {
	parsed := reference.ParseOwned(ref)
	if parsed.Scheme == reference.SchemeUnknown {
		u.log.Debugw("unrecognized group reference", "ref", ref)
		return nil, nil
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var (
		group *entities.Group
		err   error
	)
	if parsed.Scheme == reference.SchemeUUID {
		group, err = u.repo.GetGroupByGUID(ctx, parsed.UUID)
	} else {
		group, err = u.repo.GetGroupByHid(ctx, parsed.Raw)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve group by %s: %w", parsed.Scheme, err)
	}
	return group, nil
}
