// Package idempotency tracks the state of keyed operations in Redis so that a
// retried request does not repeat its side effects.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyInProgress = errors.New("operation already in progress")
	ErrAlreadyCompleted  = errors.New("operation already completed")
	ErrAlreadyFailed     = errors.New("operation already failed")
	ErrInvalidState      = errors.New("invalid state")
)

type State string

const (
	StateNone       State = "none"        // operation can proceed
	StateInProgress State = "in_progress" // operation already in progress
	StateCompleted  State = "completed"   // operation already completed
	StateFailed     State = "failed"      // previous attempt failed
	StateError      State = "error"       // state lookup failed
)

func (s State) String() string {
	return string(s)
}

// Idempotency runs fn at most once per key while the key's state is kept.
type Idempotency interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// StateTracker stores operation state as plain Redis string values.
type StateTracker struct {
	client redis.Cmdable
	prefix string
}

// New returns a StateTracker whose keys are stored under "idempotency:<namespace>:".
func New(client redis.Cmdable, namespace string) *StateTracker {
	prefix := "idempotency:"
	if namespace != "" {
		prefix += namespace + ":"
	}

	return &StateTracker{client: client, prefix: prefix}
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = 24 * time.Hour
)

type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
	retryFailed  bool
}

// WithLockDuration bounds how long an in-progress marker survives a crashed caller.
func WithLockDuration(lockDuration time.Duration) Option {
	return func(o *execOptions) {
		o.lockDuration = lockDuration
	}
}

// WithStateTTL sets how long the completed or failed state is remembered.
func WithStateTTL(stateTTL time.Duration) Option {
	return func(o *execOptions) {
		o.stateTTL = stateTTL
	}
}

// WithRetryFailed lets a key whose previous attempt failed run again.
func WithRetryFailed() Option {
	return func(o *execOptions) {
		o.retryFailed = true
	}
}

// Acquire tries to start an operation.
func (s *StateTracker) Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	fk := s.prefix + key

	for range 2 {
		acquired, err := s.client.SetNX(ctx, fk, StateInProgress.String(), lockDuration).Result()
		if err != nil {
			return StateError, err
		}
		if acquired {
			return StateNone, nil
		}

		result, err := s.client.Get(ctx, fk).Result()
		if errors.Is(err, redis.Nil) {
			// expired between SETNX and GET
			continue
		}
		if err != nil {
			return StateError, err
		}

		switch State(result) {
		case StateInProgress, StateCompleted, StateFailed:
			return State(result), nil
		default:
			return StateError, ErrInvalidState
		}
	}

	return StateError, ErrInvalidState
}

// MarkCompleted records a successful operation.
func (s *StateTracker) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateCompleted.String(), ttl).Err()
}

// MarkFailed records a failed operation.
func (s *StateTracker) MarkFailed(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateFailed.String(), ttl).Err()
}

// Exec acquires key, runs fn and records the outcome.
//
// A key that is in progress or completed yields ErrAlreadyInProgress or
// ErrAlreadyCompleted without calling fn.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	execOpt := &execOptions{
		lockDuration: defaultLockDuration,
		stateTTL:     defaultStateTTL,
	}
	for _, opt := range opts {
		opt(execOpt)
	}
	if execOpt.lockDuration <= 0 {
		execOpt.lockDuration = defaultLockDuration
	}
	if execOpt.stateTTL <= 0 {
		execOpt.stateTTL = defaultStateTTL
	}

	state, err := s.Acquire(ctx, key, execOpt.lockDuration)
	if err != nil {
		return err
	}

	switch state {
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	case StateFailed:
		if !execOpt.retryFailed {
			return ErrAlreadyFailed
		}
		if err := s.client.Set(ctx, s.prefix+key, StateInProgress.String(), execOpt.lockDuration).Err(); err != nil {
			return err
		}
	}

	if err := fn(ctx); err != nil {
		if markErr := s.MarkFailed(ctx, key, execOpt.stateTTL); markErr != nil {
			return errors.Join(err, markErr)
		}
		return err
	}

	return s.MarkCompleted(ctx, key, execOpt.stateTTL)
}
