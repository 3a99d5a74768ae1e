package snake

import "time"

// Pacer gates ticks on elapsed time. The platform calls Due once per frame
// with a monotonically increasing clock; a tick fires when at least the
// interval has passed since the previous one.
type Pacer struct {
	interval time.Duration
	last     time.Duration
}

// NewPacer creates a pacer whose first tick is due one interval after zero.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Interval returns the current tick interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// SetInterval changes the tick interval; it applies from the next Due call.
func (p *Pacer) SetInterval(d time.Duration) {
	p.interval = d
}

// Due reports whether a tick should run at now and, if so, records now as
// the last tick time.
func (p *Pacer) Due(now time.Duration) bool {
	if now-p.last < p.interval {
		return false
	}
	p.last = now
	return true
}

// Rewind makes now the last tick time, postponing the next tick by a full
// interval.
func (p *Pacer) Rewind(now time.Duration) {
	p.last = now
}
