package workers

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/festpass/festpass/internal/usecases"
)

func TestDigestScheduler_Run(t *testing.T) {
	ged := usecases.NewMockGenerateEventDigest(t)

	// One run on startup, one error on the first tick, one success after.
	ged.EXPECT().Execute(mock.Anything).Return(nil).Once()
	ged.EXPECT().Execute(mock.Anything).Return(assert.AnError).Once()
	ged.EXPECT().Execute(mock.Anything).Return(nil).Once()
	// The ticker may fire once more before cancellation is observed.
	ged.EXPECT().Execute(mock.Anything).Return(nil).Maybe()

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan struct{})

	ds := DigestScheduler{
		GenerateEventDigest: ged,
		Logger:              log.Default(),
		Interval:            2 * time.Millisecond,
		workerExecutionChan: signalChan,
	}

	go func() {
		err := ds.Run(cancelCtx)
		assert.NoError(t, err)
	}()

	for range 3 {
		select {
		case <-signalChan:
			// Received signal that a digest run finished
		case <-time.After(1 * time.Second):
			t.Fatal("timeout waiting for digest scheduler to run")
		}
	}

	cancel()
}
