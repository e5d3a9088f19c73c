// ABOUTME: Confirmer holds the transient "shared via X" state of one share control
// ABOUTME: Each confirmation clears itself after a delay unless a newer one replaced it

package share

import (
	"sync"
	"time"

	"opportunities-portal-api/core/domain"
)

// DefaultConfirmationDelay is how long a confirmation stays visible
const DefaultConfirmationDelay = 2000 * time.Millisecond

// Confirmer keeps at most one live confirmation. Safe for concurrent use.
type Confirmer struct {
	delay   time.Duration
	now     func() time.Time
	onClear func()

	mu      sync.Mutex
	current *domain.Confirmation
	gen     uint64
	timer   *time.Timer
}

// NewConfirmer creates a confirmer; delay <= 0 uses DefaultConfirmationDelay
func NewConfirmer(delay time.Duration) *Confirmer {
	if delay <= 0 {
		delay = DefaultConfirmationDelay
	}
	return &Confirmer{delay: delay, now: time.Now}
}

// Confirm replaces any live confirmation with label and restarts the clear timer.
// The superseded timer can no longer clear anything.
func (c *Confirmer) Confirm(label string) domain.Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}

	conf := domain.Confirmation{Label: label, ExpiresAt: c.now().Add(c.delay)}
	c.current = &conf
	c.timer = time.AfterFunc(c.delay, func() { c.expire(gen) })

	return conf
}

// Current returns the live confirmation, if any
func (c *Confirmer) Current() (domain.Confirmation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return domain.Confirmation{}, false
	}
	return *c.current, true
}

// Stop clears the confirmation and cancels its timer
func (c *Confirmer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
}

func (c *Confirmer) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.current = nil
	c.timer = nil
	onClear := c.onClear
	c.mu.Unlock()

	if onClear != nil {
		onClear()
	}
}
