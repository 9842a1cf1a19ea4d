package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shakecalc/internal/domain"
	"shakecalc/internal/motion"
)

// feeder batches samples from a source and posts them with client.
type feeder struct {
	client   *motion.Client
	batch    int
	interval time.Duration
	log      *zap.Logger

	pending []domain.Sample
	sent    int
	posts   int
	err     error
}

// feed streams src to the client and returns the number of samples posted.
// A cancelled ctx ends the feed without error.
func (f *feeder) feed(ctx context.Context, src domain.MotionSource) (int, error) {
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := src.Stream(streamCtx, func(s domain.Sample) {
		if f.err != nil {
			return
		}
		f.pending = append(f.pending, s)
		if len(f.pending) < f.batch {
			return
		}
		if f.err = f.flush(streamCtx); f.err != nil {
			cancel()
		}
	})
	if err != nil {
		return f.sent, err
	}
	if f.err == nil && ctx.Err() == nil {
		f.err = f.flush(ctx)
	}
	if f.err != nil && ctx.Err() != nil {
		return f.sent, nil
	}
	return f.sent, f.err
}

func (f *feeder) flush(ctx context.Context) error {
	if len(f.pending) == 0 {
		return nil
	}
	if f.posts > 0 && f.interval > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.interval):
		}
	}
	if err := f.client.Send(ctx, f.pending...); err != nil {
		return err
	}
	f.posts++
	f.sent += len(f.pending)
	f.log.Debug("posted samples", zap.Int("count", len(f.pending)), zap.Int("total", f.sent))
	f.pending = f.pending[:0]
	return nil
}
