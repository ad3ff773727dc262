package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/usecases"
)

// SegmentDeliveryWorker consumes queued outbound segments from Pub/Sub
// and delivers them through the messaging gateway.
type SegmentDeliveryWorker struct {
	Logger              *log.Logger             `resolve:""`
	Client              *pubsub.Client          `resolve:""`
	DeliverSegment      usecases.DeliverSegment `resolve:""`
	Interval            time.Duration           `config:"SEGMENT_BATCH_INTERVAL" default:"1s"`
	BatchSize           int                     `config:"SEGMENT_BATCH_SIZE" default:"20"`
	SubscriptionID      string                  `config:"SEGMENT_EVENTS_SUBSCRIPTION_ID"`
	workerExecutionChan chan struct{}
}

// Run starts the segment delivery worker.
func (s SegmentDeliveryWorker) Run(ctx context.Context) error {
	s.Logger.Println("SegmentDeliveryWorker: running...")

	if s.BatchSize <= 0 {
		s.BatchSize = 20
	}
	if s.Interval <= 0 {
		s.Interval = 1 * time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// 1. Receive messages in background (blocking call).
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after batching.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	// 2. Batch + flush loop.
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("SegmentDeliveryWorker: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// flush delivers one batch of queued segments. Each segment is acked only
// after the gateway accepted it, so failed deliveries are redelivered.
func (s SegmentDeliveryWorker) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("SegmentDeliveryWorker: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	for _, msg := range batch {
		var event domain.SegmentEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Printf("SegmentDeliveryWorker: failed to decode event payload: %v", err)
			msg.Nack()
			continue
		}

		// Ignore unrelated events that may be delivered to this subscription.
		if event.Type != domain.EventType_SEGMENT_QUEUED {
			msg.Ack()
			continue
		}

		if err := s.DeliverSegment.Execute(ctx, event); err != nil {
			// Validation failures are permanent; redelivering the message
			// would only replay the same rejection forever.
			var validationErr *domain.ValidationErr
			if errors.As(err, &validationErr) {
				s.Logger.Printf("SegmentDeliveryWorker: dropping segment for conversation %s: %v", event.ConversationID, err)
				msg.Ack()
				continue
			}
			msg.Nack()
			if !errors.Is(err, context.Canceled) {
				s.Logger.Printf("SegmentDeliveryWorker: %v", err)
			}
			continue
		}
		msg.Ack()
	}
}
