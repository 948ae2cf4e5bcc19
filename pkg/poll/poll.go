package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auctionscan/pkg/logger"
)

// Check is one readiness consult; true means the wait is over.
type Check func() bool

// ErrExhausted is returned when MaxPolls consults all came back false.
var ErrExhausted = errors.New("poll budget exhausted")

// Config holds poll configuration
type Config struct {
	// Interval between consults
	Interval time.Duration
	// MaxPolls is the maximum number of consults (0 means unlimited)
	MaxPolls int
	// OnPoll is called after each denied consult
	OnPoll func(attempt int)
	// Context for cancellation
	Context context.Context
	// Logger for poll progress
	Logger logger.Logger
}

// DefaultConfig returns a poll configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Interval: 250 * time.Millisecond,
		MaxPolls: 0,
		Context:  context.Background(),
		Logger:   logger.GetLogger(),
	}
}

// Do consults check on a fixed interval until it returns true, the
// context is cancelled, or the poll budget runs out. The denied state
// carries no error; waiting is expressed purely as re-invocation.
func Do(check Check, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	attempt := 0
	for {
		attempt++

		if check() {
			if attempt > 1 && cfg.Logger != nil {
				cfg.Logger.DebugWithFields("readiness granted", map[string]interface{}{
					"polls": attempt,
				})
			}
			return nil
		}

		if cfg.MaxPolls > 0 && attempt >= cfg.MaxPolls {
			if cfg.Logger != nil {
				cfg.Logger.WarnWithFields("giving up polling", map[string]interface{}{
					"polls": attempt,
				})
			}
			return fmt.Errorf("%d polls without readiness: %w", attempt, ErrExhausted)
		}

		if cfg.OnPoll != nil {
			cfg.OnPoll(attempt)
		}

		if err := Wait(ctx, interval); err != nil {
			return fmt.Errorf("poll cancelled: %w", err)
		}
	}
}

// Wait blocks for d or until ctx is done, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
