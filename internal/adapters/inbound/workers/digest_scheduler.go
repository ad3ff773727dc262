package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/festpass/festpass/internal/usecases"
)

// DigestScheduler is a runnable that periodically regenerates the event digest.
type DigestScheduler struct {
	GenerateEventDigest usecases.GenerateEventDigest `resolve:""`
	Logger              *log.Logger                  `resolve:""`
	Interval            time.Duration                `config:"DIGEST_REFRESH_INTERVAL" default:"6h"`
	workerExecutionChan chan struct{}
}

// Run regenerates the digest once on startup and then on every interval tick.
func (ds DigestScheduler) Run(ctx context.Context) error {
	ds.Logger.Println("DigestScheduler: running...")

	ds.generate(ctx)

	ticker := time.NewTicker(ds.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ds.generate(ctx)
		case <-ctx.Done():
			ds.Logger.Println("DigestScheduler: stopping...")
			return nil
		}
	}
}

func (ds DigestScheduler) generate(ctx context.Context) {
	if err := ds.GenerateEventDigest.Execute(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			ds.Logger.Printf("DigestScheduler: %v", err)
		}
	}
	if ds.workerExecutionChan != nil {
		ds.workerExecutionChan <- struct{}{}
	}
}
