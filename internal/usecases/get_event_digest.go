package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

type GetEventDigest interface {
	Query(ctx context.Context) (domain.EventDigest, error)
}

type GetEventDigestImpl struct {
	digestRepo domain.EventDigestRepository
}

func NewGetEventDigestImpl(r domain.EventDigestRepository) GetEventDigestImpl {
	return GetEventDigestImpl{
		digestRepo: r,
	}
}

func (ged GetEventDigestImpl) Query(ctx context.Context) (domain.EventDigest, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	digest, found, err := ged.digestRepo.GetLatestEventDigest(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EventDigest{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("event digest not found")
		return domain.EventDigest{}, err
	}

	return digest, nil
}

type InitGetEventDigest struct {
	DigestRepo domain.EventDigestRepository `resolve:""`
}

func (iged InitGetEventDigest) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetEventDigest](NewGetEventDigestImpl(iged.DigestRepo))

	return ctx, nil
}
