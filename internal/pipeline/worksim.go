package pipeline

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// SimulateWork mimics the extra processing phase of the job: each batch
// averages a 1000x100 pseudo-random matrix and waits a second. The output is
// purely decorative and feeds nothing downstream.
func SimulateWork(ctx context.Context, log *zap.SugaredLogger, batches int) {
	log.Infow("⏳ Simulating additional processing work", "batches", batches)

	for i := 0; i < batches; i++ {
		total := 0.0
		for r := 0; r < 1000; r++ {
			sum := 0.0
			for c := 0; c < 100; c++ {
				sum += rand.Float64()
			}
			total += sum / 100
		}

		select {
		case <-ctx.Done():
			log.Warnw("simulated work interrupted", "batch", i+1)
			return
		case <-time.After(time.Second):
		}

		log.Infof("   Batch %d/%d completed, mean result: %.4f", i+1, batches, total/1000)
	}
}
