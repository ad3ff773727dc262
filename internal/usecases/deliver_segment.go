package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// DeliverSegment defines the interface for the DeliverSegment use case
type DeliverSegment interface {
	// Execute delivers one outbound messaging segment through the gateway.
	Execute(ctx context.Context, segment domain.SegmentEvent) error
}

// DeliverSegmentImpl is the implementation of the DeliverSegment use case
type DeliverSegmentImpl struct {
	gateway domain.SegmentGateway
	logger  *log.Logger
}

// NewDeliverSegmentImpl creates a new instance of DeliverSegmentImpl
func NewDeliverSegmentImpl(gateway domain.SegmentGateway, logger *log.Logger) DeliverSegmentImpl {
	return DeliverSegmentImpl{
		gateway: gateway,
		logger:  logger,
	}
}

// Execute delivers one outbound messaging segment through the gateway.
func (ds DeliverSegmentImpl) Execute(ctx context.Context, segment domain.SegmentEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if segment.Recipient == "" {
		err := domain.NewValidationErr("segment recipient cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err := ds.gateway.SendSegment(spanCtx, segment)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	RecordSegmentDelivered(spanCtx)
	return nil
}

// InitDeliverSegment is used to initialize the DeliverSegment in the dependency container
type InitDeliverSegment struct {
	Gateway domain.SegmentGateway `resolve:""`
	Logger  *log.Logger           `resolve:""`
}

// Initialize registers the DeliverSegment implementation in the dependency container
func (ids InitDeliverSegment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeliverSegment](NewDeliverSegmentImpl(ids.Gateway, ids.Logger))
	return ctx, nil
}
