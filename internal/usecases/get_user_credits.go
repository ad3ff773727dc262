package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// GetUserCredits defines the interface for the GetUserCredits use case
type GetUserCredits interface {
	// Query returns the credit balance of a user.
	Query(ctx context.Context, userID uuid.UUID) (int, error)
}

// GetUserCreditsImpl is the implementation of the GetUserCredits use case
type GetUserCreditsImpl struct {
	userRepo domain.UserRepository
}

// NewGetUserCreditsImpl creates a new instance of GetUserCreditsImpl
func NewGetUserCreditsImpl(userRepo domain.UserRepository) GetUserCreditsImpl {
	return GetUserCreditsImpl{
		userRepo: userRepo,
	}
}

// Query returns the credit balance of a user.
func (guc GetUserCreditsImpl) Query(ctx context.Context, userID uuid.UUID) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, found, err := guc.userRepo.GetUser(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("user %s not found", userID))
		telemetry.RecordErrorAndStatus(span, err)
		return 0, err
	}

	return user.Credits, nil
}

// InitGetUserCredits initializes the GetUserCredits use case and registers it in the dependency container.
type InitGetUserCredits struct {
	UserRepo domain.UserRepository `resolve:""`
}

// Initialize registers the GetUserCredits use case in the dependency container
func (iguc InitGetUserCredits) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetUserCredits](NewGetUserCreditsImpl(iguc.UserRepo))
	return ctx, nil
}
