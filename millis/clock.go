// Package millis provides a wrapping 32 bit millisecond clock and an
// elapsed-time timer that stays correct when that clock rolls over.
package millis

import (
	"sync"
	"time"
)

// Max is the largest value a Clock can report before wrapping back to zero
const Max = ^uint32(0)

// Clock is the source of time for timers. NowMillis increases monotonically
// from an arbitrary epoch and wraps from Max back to 0.
type Clock interface {
	NowMillis() uint32
}

// SystemClock reports the milliseconds elapsed since it was created,
// truncated to 32 bits the same way a microcontroller millis() counter is.
type SystemClock struct {
	start  time.Time
	offset uint32
	scale  float64
}

// NewSystemClock returns a clock that starts counting at offset and runs
// scale times faster than wall time. A scale below 1 is treated as 1.
func NewSystemClock(offset uint32, scale float64) (clock *SystemClock) {
	if scale < 1 {
		scale = 1
	}
	return &SystemClock{
		start:  time.Now(),
		offset: offset,
		scale:  scale,
	}
}

// NowMillis implements Clock
func (clock *SystemClock) NowMillis() uint32 {
	elapsed := uint64(float64(time.Since(clock.start).Milliseconds()) * clock.scale)
	// Truncation to 32 bits is the wraparound
	return clock.offset + uint32(elapsed)
}

// ManualClock is a Clock whose value only changes when told to. It is used
// to step animations deterministically.
type ManualClock struct {
	now uint32
	sync.Mutex
}

// NewManualClock returns a clock reading now
func NewManualClock(now uint32) (clock *ManualClock) {
	return &ManualClock{now: now}
}

// NowMillis implements Clock
func (clock *ManualClock) NowMillis() uint32 {
	clock.Lock()
	defer clock.Unlock()
	return clock.now
}

// Set moves the clock to an absolute reading, which may be lower than the
// current one to simulate a wrap.
func (clock *ManualClock) Set(now uint32) {
	clock.Lock()
	clock.now = now
	clock.Unlock()
}

// Advance moves the clock forward by delta milliseconds, wrapping past Max
func (clock *ManualClock) Advance(delta uint32) uint32 {
	clock.Lock()
	defer clock.Unlock()
	clock.now += delta
	return clock.now
}
