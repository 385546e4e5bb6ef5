package onboarding

import "time"

// Scheduler abstracts delayed callbacks so the welcome sequence can be driven
// by hand in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// startTimer arms the next welcome sub-page. Must be called with mu held.
func (c *Controller) startTimer() {
	c.timerGen++
	gen := c.timerGen
	c.timer = c.sched.AfterFunc(c.dwell, func() { c.welcomeTick(gen) })
}

// stopTimer cancels any pending welcome callback. Must be called with mu held.
// Bumping the generation also neutralises a callback that already fired and
// is waiting on the lock.
func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

func (c *Controller) welcomeTick(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.timerGen || c.complete || c.step != StepWelcome {
		return
	}
	c.timer = nil
	c.welcomePage++
	if c.welcomePage >= WelcomePages {
		c.setStep(StepProfileSetup)
		return
	}
	c.startTimer()
}
