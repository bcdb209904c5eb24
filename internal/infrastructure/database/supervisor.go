package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"blog-api/internal/logger"
)

// DefaultRetryDelay is the fixed wait between failed connection attempts.
const DefaultRetryDelay = 5 * time.Second

// State is the lifecycle state of the store connection.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// ErrNotConnected is returned by Wait when the context ends before the
// first successful connection.
var ErrNotConnected = errors.New("store not connected")

// Store is the handle the supervisor keeps alive. *pgxpool.Pool satisfies it.
type Store interface {
	Ping(ctx context.Context) error
	Close()
}

// Connector opens a new store handle.
type Connector[S Store] func(ctx context.Context) (S, error)

// Options tunes a Supervisor. Zero values take defaults.
type Options struct {
	RetryDelay     time.Duration
	CheckInterval  time.Duration
	AttemptTimeout time.Duration

	OnStateChange func(State)
	OnAttempt     func(err error)
}

// Supervisor establishes the store connection, retries with a fixed delay
// and watches it once connected. Retries never stop until Run's context ends.
type Supervisor[S Store] struct {
	connect Connector[S]
	opts    Options

	state atomic.Int32

	mu       sync.RWMutex
	store    S
	hasStore bool

	ready     chan struct{}
	readyOnce sync.Once
	kick      chan struct{}
}

// NewSupervisor creates a supervisor in the Disconnected state.
func NewSupervisor[S Store](connect Connector[S], opts Options) *Supervisor[S] {
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.CheckInterval <= 0 {
		opts.CheckInterval = 15 * time.Second
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = 10 * time.Second
	}
	return &Supervisor[S]{
		connect: connect,
		opts:    opts,
		ready:   make(chan struct{}),
		kick:    make(chan struct{}, 1),
	}
}

// State returns the current connection state.
func (s *Supervisor[S]) State() State {
	return State(s.state.Load())
}

// Connected reports whether the store is currently usable.
func (s *Supervisor[S]) Connected() bool {
	return s.State() == StateConnected
}

// Wait blocks until the first successful connection and returns the store.
func (s *Supervisor[S]) Wait(ctx context.Context) (S, error) {
	select {
	case <-s.ready:
		st, _ := s.Store()
		return st, nil
	case <-ctx.Done():
		var zero S
		return zero, fmt.Errorf("%w: %v", ErrNotConnected, ctx.Err())
	}
}

// Store returns the store handle, if one has ever been opened.
func (s *Supervisor[S]) Store() (S, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store, s.hasStore
}

// ReportFailure asks for an immediate health check after a failed store
// operation. It never blocks.
func (s *Supervisor[S]) ReportFailure(err error) {
	if err == nil || !s.Connected() {
		return
	}
	select {
	case s.kick <- struct{}{}:
		logger.Debug("Store failure reported, checking connection", slog.String("error", err.Error()))
	default:
	}
}

// Run drives the state machine until ctx is done.
func (s *Supervisor[S]) Run(ctx context.Context) {
	for {
		if !s.establish(ctx) {
			return
		}
		if !s.monitor(ctx) {
			return
		}
	}
}

// Close releases the store handle.
func (s *Supervisor[S]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasStore {
		s.store.Close()
		var zero S
		s.store = zero
		s.hasStore = false
	}
	s.setState(StateDisconnected)
}

func (s *Supervisor[S]) establish(ctx context.Context) bool {
	for attempt := 1; ; attempt++ {
		s.setState(StateConnecting)
		err := s.attempt(ctx)
		if s.opts.OnAttempt != nil {
			s.opts.OnAttempt(err)
		}
		if err == nil {
			s.setState(StateConnected)
			s.readyOnce.Do(func() { close(s.ready) })
			logger.Info("Database connection established", slog.Int("attempt", attempt))
			return true
		}

		s.setState(StateDisconnected)
		logger.Warn("Database connection failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
			slog.Duration("retry_in", s.opts.RetryDelay))

		if !s.sleep(ctx) {
			return false
		}
	}
}

func (s *Supervisor[S]) monitor(ctx context.Context) bool {
	ticker := time.NewTicker(s.opts.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		case <-s.kick:
		}

		if err := s.ping(ctx); err != nil {
			if ctx.Err() != nil {
				return false
			}
			s.setState(StateDisconnected)
			logger.Error("Database connection lost",
				slog.String("error", err.Error()),
				slog.Duration("retry_in", s.opts.RetryDelay))
			return s.sleep(ctx)
		}
	}
}

// attempt pings the existing handle or opens a new one. Panics from the
// connector are turned into errors so the loop survives them.
func (s *Supervisor[S]) attempt(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("connector panic: %v", r)
		}
	}()

	if _, ok := s.Store(); ok {
		return s.ping(ctx)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, s.opts.AttemptTimeout)
	defer cancel()

	st, err := s.connect(attemptCtx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.store = st
	s.hasStore = true
	s.mu.Unlock()
	return nil
}

func (s *Supervisor[S]) ping(ctx context.Context) error {
	st, ok := s.Store()
	if !ok {
		return ErrNotConnected
	}
	pingCtx, cancel := context.WithTimeout(ctx, s.opts.AttemptTimeout)
	defer cancel()
	return st.Ping(pingCtx)
}

func (s *Supervisor[S]) sleep(ctx context.Context) bool {
	timer := time.NewTimer(s.opts.RetryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Supervisor[S]) setState(next State) {
	prev := State(s.state.Swap(int32(next)))
	if prev != next && s.opts.OnStateChange != nil {
		s.opts.OnStateChange(next)
	}
}
