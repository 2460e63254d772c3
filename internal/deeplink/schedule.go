package deeplink

import "time"

// Scheduler runs a function after a delay on a detached execution. It exists
// so tests can capture scheduled retries and fire them under a virtual clock
// instead of sleeping.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler schedules onto real timers.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
