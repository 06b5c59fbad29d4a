package otp

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Delivery abstracts how a generated code reaches the client's phone, so a
// real SMS transport can be substituted without touching the state machine.
type Delivery interface {
	Deliver(ctx context.Context, phone, code string) error
}

// LogDelivery simulates network latency and logs the code instead of sending
// it. Demo only: production must never surface the code this way.
type LogDelivery struct {
	Log   *zap.Logger
	Delay time.Duration
}

func (d *LogDelivery) Deliver(ctx context.Context, phone, code string) error {
	if d.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.Delay):
		}
	}
	d.Log.Info("otp generated",
		zap.String("phone", phone),
		zap.String("code", code))
	return nil
}
