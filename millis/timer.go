package millis

// Timer tracks the time elapsed since it was last reset against a Clock.
//
// Used as a countdown, IsDue reports when the wait interval has passed and
// immediately starts the next interval. Used as a count up timer, Elapsed
// reports how long it has been since Reset.
//
// A baseline of zero is the expired sentinel; a freshly constructed or
// reconfigured timer fires on its first check once the clock is past the
// wait interval.
type Timer struct {
	clock    Clock
	baseline uint32
	wait     uint32
}

// New creates a countdown timer that becomes due every wait milliseconds
func New(clock Clock, wait uint32) (timer *Timer) {
	return &Timer{
		clock: clock,
		wait:  wait,
	}
}

// NewCounter creates a count up timer. Its wait interval is Max so IsDue
// never fires unless the clock wraps.
func NewCounter(clock Clock) (timer *Timer) {
	return New(clock, Max)
}

// Wait returns the current wait interval
func (timer *Timer) Wait() uint32 {
	return timer.wait
}

// IsDue returns true when at least the wait interval has passed since the
// baseline, or when the clock has wrapped below the baseline. When it
// returns true the baseline moves to the current clock reading.
func (timer *Timer) IsDue() bool {
	now := timer.clock.NowMillis()

	if now < timer.baseline || now-timer.baseline >= timer.wait {
		timer.baseline = now
		return true
	}
	return false
}

// Elapsed returns the milliseconds since the baseline, allowing for a
// single wrap of the clock.
func (timer *Timer) Elapsed() uint32 {
	now := timer.clock.NowMillis()

	if now < timer.baseline {
		return Max - timer.baseline + now
	}
	return now - timer.baseline
}

// Reset starts a full wait period from the current clock reading
func (timer *Timer) Reset() {
	timer.baseline = timer.clock.NowMillis()
}

// ArmExpired moves the baseline back to the zero sentinel so the next IsDue
// fires without waiting a full interval.
func (timer *Timer) ArmExpired() {
	timer.baseline = 0
}

// Reconfigure changes the wait interval and arms the timer expired
func (timer *Timer) Reconfigure(wait uint32) {
	timer.wait = wait
	timer.ArmExpired()
}
