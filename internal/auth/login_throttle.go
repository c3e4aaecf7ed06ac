package auth

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/myapp/bookstore/internal/apperror"
	"github.com/myapp/bookstore/internal/entities"
)

// ThrottleConfig controls how many wrong passwords an account accepts from one
// client before logins are refused.
type ThrottleConfig struct {
	MaxAttempts     int           // failures before lockout (default: 5)
	WindowDuration  time.Duration // failures older than this are forgotten (default: 15m)
	LockoutDuration time.Duration // how long logins are refused (default: 30m)
}

func (c ThrottleConfig) withDefaults() ThrottleConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.WindowDuration <= 0 {
		c.WindowDuration = 15 * time.Minute
	}
	if c.LockoutDuration <= 0 {
		c.LockoutDuration = 30 * time.Minute
	}
	return c
}

// LockedOutError is returned by LoginThrottle.Check while an account is locked
// for the calling client. It unwraps to apperror.ErrTooManyAttempts.
type LockedOutError struct {
	RetryAfter time.Duration
}

func (e *LockedOutError) Error() string {
	return apperror.ErrTooManyAttempts.Message
}

func (e *LockedOutError) Unwrap() error {
	return apperror.ErrTooManyAttempts
}

// RetryAfterSeconds rounds up, so a client that waits that long is let in.
func (e *LockedOutError) RetryAfterSeconds() int {
	return int(math.Ceil(e.RetryAfter.Seconds()))
}

// LoginThrottle counts wrong-password logins per client IP and account.
// Accounts are keyed the way usernames are stored, so "Alice" and "alice"
// share a counter.
type LoginThrottle struct {
	cfg ThrottleConfig
	now func() time.Time

	mu        sync.Mutex
	accounts  map[throttleKey]*failures
	lastPrune time.Time
}

type throttleKey struct {
	ip      string
	account string
}

type failures struct {
	count       int
	since       time.Time
	lockedUntil time.Time
}

func NewLoginThrottle(cfg ThrottleConfig) *LoginThrottle {
	return &LoginThrottle{
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		accounts: make(map[throttleKey]*failures),
	}
}

func keyFor(ip, username string) throttleKey {
	return throttleKey{ip: ip, account: entities.NormalizeUsername(username)}
}

// Check returns a *LockedOutError while the account is locked for ip.
func (t *LoginThrottle) Check(ip, username string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, ok := t.accounts[keyFor(ip, username)]
	if !ok {
		return nil
	}
	if now := t.now(); now.Before(f.lockedUntil) {
		return &LockedOutError{RetryAfter: f.lockedUntil.Sub(now)}
	}
	return nil
}

// Observe records the outcome of a login. A success clears the account's
// failures; only invalid credentials count against it. Other errors, such as
// an unverified account or a store failure, leave the counter alone.
func (t *LoginThrottle) Observe(ip, username string, loginErr error) {
	key := keyFor(ip, username)
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked(now)

	if loginErr == nil {
		delete(t.accounts, key)
		return
	}
	if !errors.Is(loginErr, apperror.ErrInvalidCredentials) {
		return
	}

	f, ok := t.accounts[key]
	if !ok || t.expired(f, now) {
		f = &failures{since: now}
		t.accounts[key] = f
	}
	f.count++
	if f.count >= t.cfg.MaxAttempts {
		f.lockedUntil = now.Add(t.cfg.LockoutDuration)
	}
}

// expired reports whether f no longer affects logins: its window has passed
// and any lockout is over.
func (t *LoginThrottle) expired(f *failures, now time.Time) bool {
	return now.Sub(f.since) > t.cfg.WindowDuration && !now.Before(f.lockedUntil)
}

// pruneLocked drops expired records at most once per window.
func (t *LoginThrottle) pruneLocked(now time.Time) {
	if now.Sub(t.lastPrune) < t.cfg.WindowDuration {
		return
	}
	t.lastPrune = now
	for key, f := range t.accounts {
		if t.expired(f, now) {
			delete(t.accounts, key)
		}
	}
}

