package shapegrid

import "time"

// DefaultTickInterval is the animation tick the project has always run at.
const DefaultTickInterval = 20 * time.Millisecond

// Ticker turns elapsed wall time into fixed animation ticks. Each tick
// advances the registered tweens and runs the hooks; the periodic hooks fire
// on tick counts, so they stay in step with the animation rather than the
// wall clock.
type Ticker struct {
	interval time.Duration
	accum    time.Duration
	ticks    uint64
	seconds  uint64
	tweens   []*Tween

	// OnTick runs every tick and reports whether the frame needs repainting.
	OnTick func(t *Ticker) bool

	OnSecond     func(t *Ticker)
	OnTenSeconds func(t *Ticker)
	OnMinute     func(t *Ticker)
}

// NewTicker creates a ticker. A non-positive interval uses
// DefaultTickInterval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Ticker{interval: interval}
}

// Interval returns the tick length.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Ticks returns the number of ticks run so far.
func (t *Ticker) Ticks() uint64 { return t.ticks }

// Seconds returns the number of whole animated seconds so far.
func (t *Ticker) Seconds() uint64 { return t.seconds }

// AddTween registers a tween to be advanced every tick until it is done.
func (t *Ticker) AddTween(tw *Tween) {
	if tw != nil {
		t.tweens = append(t.tweens, tw)
	}
}

// ActiveTweens returns how many tweens are still running.
func (t *Ticker) ActiveTweens() int { return len(t.tweens) }

// Advance runs as many ticks as elapsed covers, carrying the remainder to the
// next call. It reports whether any tick left the frame dirty.
func (t *Ticker) Advance(elapsed time.Duration) bool {
	t.accum += elapsed
	dirty := false
	for t.accum >= t.interval {
		t.accum -= t.interval
		if t.Tick() {
			dirty = true
		}
	}
	return dirty
}

// Tick runs a single tick.
func (t *Ticker) Tick() bool {
	t.ticks++
	dirty := false

	if len(t.tweens) > 0 {
		dt := float32(t.interval.Seconds())
		live := t.tweens[:0]
		for _, tw := range t.tweens {
			tw.Update(dt)
			if !tw.Done {
				live = append(live, tw)
			}
		}
		for i := len(live); i < len(t.tweens); i++ {
			t.tweens[i] = nil
		}
		t.tweens = live
		dirty = true
	}

	if t.OnTick != nil && t.OnTick(t) {
		dirty = true
	}

	perSecond := t.ticksPer(time.Second)
	if t.ticks%perSecond == 0 {
		t.seconds++
		if t.OnSecond != nil {
			t.OnSecond(t)
		}
	}
	if t.ticks%t.ticksPer(10*time.Second) == 0 && t.OnTenSeconds != nil {
		t.OnTenSeconds(t)
	}
	if t.ticks%t.ticksPer(time.Minute) == 0 && t.OnMinute != nil {
		t.OnMinute(t)
	}
	return dirty
}

func (t *Ticker) ticksPer(d time.Duration) uint64 {
	n := uint64(d / t.interval)
	if n == 0 {
		return 1
	}
	return n
}
