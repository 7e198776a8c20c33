package rotation

import (
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultResetWindow is how long a vocabulary may sit idle before its rotation starts over.
const DefaultResetWindow = 5 * time.Minute

// ResetReason reports whether a draw started a fresh cycle.
type ResetReason string

const (
	ResetNone      ResetReason = ""
	ResetIdle      ResetReason = "idle"
	ResetExhausted ResetReason = "exhausted"
)

// Tracker is the shuffle-bag state for one vocabulary of size n.
// Every index is returned once before any index repeats, unless the
// idle window expires first.
type Tracker struct {
	mu        sync.Mutex
	n         int
	used      map[int]struct{}
	lastReset time.Time

	window time.Duration
	now    func() time.Time
	intn   func(int) int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithRandom replaces the uniform source. intn(k) must return a value in [0,k).
func WithRandom(intn func(int) int) Option {
	return func(t *Tracker) {
		if intn != nil {
			t.intn = intn
		}
	}
}

// WithWindow sets the idle reset window. Non-positive values keep the default.
func WithWindow(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.window = d
		}
	}
}

// NewTracker creates a tracker for a vocabulary with n fragments.
func NewTracker(n int, opts ...Option) *Tracker {
	t := &Tracker{
		n:      n,
		used:   make(map[int]struct{}, n),
		window: DefaultResetWindow,
		now:    time.Now,
		intn:   rand.IntN,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lastReset = t.now()
	return t
}

// Next draws an unused index. It panics if the vocabulary is empty.
func (t *Tracker) Next() (int, ResetReason) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.n <= 0 {
		panic("rotation: draw from empty vocabulary")
	}

	reason := ResetNone
	now := t.now()
	if now.Sub(t.lastReset) > t.window {
		clear(t.used)
		t.lastReset = now
		reason = ResetIdle
	}
	if len(t.used) >= t.n {
		// lastReset is only moved by the idle path
		clear(t.used)
		reason = ResetExhausted
	}

	available := make([]int, 0, t.n-len(t.used))
	for i := 0; i < t.n; i++ {
		if _, ok := t.used[i]; !ok {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		for i := 0; i < t.n; i++ {
			available = append(available, i)
		}
	}

	idx := available[t.intn(len(available))]
	t.used[idx] = struct{}{}
	return idx, reason
}

// Used returns how many indices have been drawn in the current cycle.
func (t *Tracker) Used() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.used)
}

// Size is the vocabulary size the tracker rotates over.
func (t *Tracker) Size() int {
	return t.n
}

// Reset clears the used set and restarts the idle window.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.used)
	t.lastReset = t.now()
}
