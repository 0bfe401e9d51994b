// Package session tracks the lifetime of an access token on the client and
// walks the user through expiry: a warning with a live countdown, an optional
// renewal, and a forced logout when the countdown runs out.
package session

import (
	"log/slog"
	"sync"
	"time"
)

// State is the monitor's position in the session lifecycle.
type State string

const (
	// StateIdle means no session is being tracked.
	StateIdle State = "Idle"
	// StateScheduled means the token is healthy and a re-check is armed for
	// one warning-window before expiry.
	StateScheduled State = "Scheduled"
	// StateWarningVisible means the expiry warning is showing and the
	// countdown ticks once per second.
	StateWarningVisible State = "WarningVisible"
	// StateLoggedOut means the session ended, by expiry or failed renewal.
	StateLoggedOut State = "LoggedOut"
)

const (
	// warnThreshold is how long before expiry the warning appears.
	warnThreshold = 60 * time.Second
	// countdownTick is the cadence of countdown updates while warning.
	countdownTick = time.Second
)

// Callbacks are the side effects the monitor triggers. All of them are
// invoked without the monitor's lock held, so they may call back into the
// monitor freely.
type Callbacks struct {
	// ShowWarning fires once when the warning window opens.
	ShowWarning func(remaining time.Duration)
	// UpdateCountdown fires every tick while the warning is visible.
	UpdateCountdown func(remaining time.Duration)
	// Refresh exchanges the refresh cookie for a new access token.
	Refresh func() (string, error)
	// Purge discards locally stored tokens.
	Purge func()
	// NavigateLogin sends the user back to the login screen.
	NavigateLogin func()
}

// Monitor is the session-expiry state machine. One Monitor tracks one
// session; Start with a new token resets it to the beginning of a cycle.
type Monitor struct {
	mu        sync.Mutex
	clock     Clock
	callbacks Callbacks
	logger    *slog.Logger

	state State
	// generation invalidates timers armed for earlier cycles. A timer
	// captures the generation at arm time and becomes a no-op once the
	// monitor moves on, so cancellation never races the firing callback.
	generation uint64
	timer      Timer
	expiry     time.Time
	// refreshed limits renewal to one attempt per expiry cycle.
	refreshed bool
}

// NewMonitor builds a monitor in the Idle state.
func NewMonitor(clock Clock, callbacks Callbacks, logger *slog.Logger) *Monitor {
	if clock == nil {
		clock = NewRealClock()
	}

	return &Monitor{
		clock:     clock,
		callbacks: callbacks,
		logger:    logger,
		state:     StateIdle,
	}
}

// State reports the current state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Start begins tracking a freshly issued access token. A token whose expiry
// cannot be read is treated as already expired.
func (m *Monitor) Start(accessToken string) {
	expiry, err := decodeExpiry(accessToken)

	m.mu.Lock()
	m.beginCycle()
	if err != nil {
		m.logger.Warn("Unreadable access token, treating as expired", slog.Any("error", err))
		m.expiry = m.clock.Now()
	} else {
		m.expiry = expiry
	}

	m.transitionLocked()
}

// Stop abandons tracking without touching stored tokens.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.beginCycle()
	m.state = StateIdle
}

// Extend is the user's response to the warning: renew the session. Only one
// renewal is attempted per cycle; a failed renewal ends the session.
func (m *Monitor) Extend() {
	m.mu.Lock()
	if m.state != StateWarningVisible || m.refreshed {
		m.mu.Unlock()

		return
	}
	m.refreshed = true
	m.mu.Unlock()

	token, err := m.callbacks.Refresh()
	if err != nil {
		m.logger.Warn("Session renewal failed", slog.Any("error", err))
		m.mu.Lock()
		if m.state != StateWarningVisible {
			// The countdown beat us to it; nothing left to end.
			m.mu.Unlock()

			return
		}
		m.logoutLocked()

		return
	}

	m.logger.Debug("Session renewed")
	m.Start(token)
}

// beginCycle cancels any armed timer and advances the generation so that a
// timer that already fired and is waiting on the lock does nothing.
// Callers must hold the lock.
func (m *Monitor) beginCycle() {
	m.generation++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.refreshed = false
}

// transitionLocked places the monitor in Scheduled, WarningVisible or
// LoggedOut based on the time left. Callers must hold the lock; it is
// released before any callback runs.
func (m *Monitor) transitionLocked() {
	remaining := m.expiry.Sub(m.clock.Now())

	switch {
	case remaining <= 0:
		m.logoutLocked()
	case remaining <= warnThreshold:
		m.state = StateWarningVisible
		m.armLocked(0, m.onCountdownTick)
		show := m.callbacks.ShowWarning
		m.mu.Unlock()
		if show != nil {
			show(remaining)
		}
	default:
		m.state = StateScheduled
		m.armLocked(remaining-warnThreshold, m.onRecheck)
		m.mu.Unlock()
	}
}

// armLocked schedules fn after d, tagged with the current generation.
func (m *Monitor) armLocked(d time.Duration, fn func(gen uint64)) {
	gen := m.generation
	m.timer = m.clock.AfterFunc(d, func() { fn(gen) })
}

// onRecheck fires when a scheduled session reaches the warning window.
func (m *Monitor) onRecheck(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.state != StateScheduled {
		m.mu.Unlock()

		return
	}

	m.transitionLocked()
}

// onCountdownTick drives the per-second countdown while the warning shows.
func (m *Monitor) onCountdownTick(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || m.state != StateWarningVisible {
		m.mu.Unlock()

		return
	}

	remaining := m.expiry.Sub(m.clock.Now())
	if remaining <= 0 {
		m.logoutLocked()

		return
	}

	m.armLocked(countdownTick, m.onCountdownTick)
	update := m.callbacks.UpdateCountdown
	m.mu.Unlock()
	if update != nil {
		update(remaining)
	}
}

// logoutLocked ends the session: purge stored tokens, go to LoggedOut and
// send the user to login. The lock is released before the callbacks run.
func (m *Monitor) logoutLocked() {
	m.generation++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.state = StateLoggedOut
	purge := m.callbacks.Purge
	navigate := m.callbacks.NavigateLogin
	m.mu.Unlock()

	if purge != nil {
		purge()
	}
	if navigate != nil {
		navigate()
	}
}
