package runtime

import (
	"assignment-lab/contract"
	"assignment-lab/errors"
	"log/slog"
	"math"
	"time"

	"github.com/mama165/sdk-go/logs"
)

const DefaultSquareDelay = 1000 * time.Millisecond

var defaultLog = logs.GetLoggerFromString("INFO")

// Squarer computes n*n once its delay has elapsed.
// Negative inputs are rejected with errors.ErrNegativeNumber,
// squares that do not fit a finite float64 with errors.ErrSquareOutOfRange.
type Squarer struct {
	log       *slog.Logger
	scheduler contract.Scheduler
	delay     time.Duration
}

func NewSquarer(log *slog.Logger, scheduler contract.Scheduler, delay time.Duration) *Squarer {
	return &Squarer{log: log, scheduler: scheduler, delay: delay}
}

// Square returns immediately, the future settles when the scheduler fires.
func (s *Squarer) Square(n float64) *Future[float64] {
	future := newFuture[float64]()
	s.log.Debug("Square scheduled", "id", future.ID, "n", n, "delay", s.delay)

	s.scheduler.AfterFunc(s.delay, func() {
		if n < 0 {
			s.log.Warn("Square rejected", "id", future.ID, "n", n, "error", errors.ErrNegativeNumber)
			future.reject(errors.ErrNegativeNumber)
			return
		}
		square := n * n
		if math.IsInf(square, 0) || math.IsNaN(square) {
			s.log.Warn("Square rejected", "id", future.ID, "n", n, "error", errors.ErrSquareOutOfRange)
			future.reject(errors.ErrSquareOutOfRange)
			return
		}
		future.resolve(square)
		s.log.Debug("Square resolved", "id", future.ID, "n", n)
	})
	return future
}

// SquareAsync squares n after DefaultSquareDelay on a runtime timer.
func SquareAsync(n float64) *Future[float64] {
	return NewSquarer(defaultLog, TimerScheduler{}, DefaultSquareDelay).Square(n)
}
