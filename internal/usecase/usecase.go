package usecase

import (
	"context"
	"time"

	"github.com/ambdroid/PluralKit/internal/repository"
	"github.com/ambdroid/PluralKit/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	SystemUsecaseInterface
	MemberUsecaseInterface
	GroupUsecaseInterface
	AccessUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
