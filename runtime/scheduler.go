package runtime

import (
	"assignment-lab/contract"
	"time"
)

// TimerScheduler gives every call its own runtime timer.
type TimerScheduler struct{}

var _ contract.Scheduler = TimerScheduler{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
