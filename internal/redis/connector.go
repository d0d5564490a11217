// Package redis connects to the session backend with retry and backoff.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/compasshq/compass/internal/logger"
)

// ConnectOptions defines the Redis connection and its retry behavior.
type ConnectOptions struct {
	Addr           string
	User           string
	Password       string
	DB             int
	DialTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	PoolSize       int
	ConnectTimeout time.Duration // total time allowed for connection attempts
	RetryInterval  time.Duration // initial wait between retries, grows exponentially
	MaxWait        time.Duration // cap on the wait between retries
	PingTimeout    time.Duration // timeout for each ping attempt
}

func (o ConnectOptions) validate() error {
	if o.Addr == "" {
		return fmt.Errorf("redis addr must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"ConnectTimeout": o.ConnectTimeout,
		"RetryInterval":  o.RetryInterval,
		"MaxWait":        o.MaxWait,
		"PingTimeout":    o.PingTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be > 0, got %v", name, d)
		}
	}
	return nil
}

// New creates a Redis client and pings it until it answers or
// ConnectTimeout runs out, backing off exponentially between attempts.
func New(opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	log.Info("connecting to redis",
		logger.String("addr", opts.Addr),
		logger.Duration("timeout", opts.ConnectTimeout))

	wait := opts.RetryInterval
	for attempt := 1; ; attempt++ {
		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err := client.Ping(pingCtx).Err()
		pingCancel()

		if err == nil {
			if attempt > 1 {
				log.Warn("connected to redis after retry",
					logger.String("addr", opts.Addr),
					logger.Int("attempts", attempt))
			} else {
				log.Info("connected to redis", logger.String("addr", opts.Addr))
			}
			return client, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("redis unavailable at %s after %d attempts (timeout: %v): %w",
				opts.Addr, attempt, opts.ConnectTimeout, err)
		case <-timer.C:
			log.Warn("redis connection failed, retrying",
				logger.String("addr", opts.Addr),
				logger.Int("attempt", attempt),
				logger.Duration("next_retry_in", wait),
				logger.Error(err))
			wait *= 2
			if wait > opts.MaxWait {
				wait = opts.MaxWait
			}
		}
	}
}
