package domain

import "github.com/ambdroid/PluralKit/internal/entities"

// ContextFor reports whether caller owns entity. Anonymous callers are never owners.
func (u *Usecase) ContextFor(entity entities.Owned, caller *entities.SystemID) entities.LookupContext {
	return ContextFor(entity, caller)
}

// ContextFor is the pure form of Usecase.ContextFor.
func ContextFor(entity entities.Owned, caller *entities.SystemID) entities.LookupContext {
	if caller == nil || isNilEntity(entity) {
		return entities.ByNonOwner
	}
	if *caller == entity.OwnerID() {
		return entities.ByOwner
	}
	return entities.ByNonOwner
}

func isNilEntity(entity entities.Owned) bool {
	switch e := entity.(type) {
	case nil:
		return true
	case *entities.System:
		return e == nil
	case *entities.Member:
		return e == nil
	case *entities.Group:
		return e == nil
	}
	return false
}
