package runtime

import (
	"assignment-lab/errors"
	"assignment-lab/mocks"
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSquarer_ResolvesOnlyWhenSchedulerFires(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	scheduler := mocks.NewMockScheduler(ctrl)

	var fire func()
	scheduler.EXPECT().
		AfterFunc(DefaultSquareDelay, gomock.Any()).
		Do(func(_ time.Duration, f func()) { fire = f }).
		Times(1)

	future := NewSquarer(log, scheduler, DefaultSquareDelay).Square(4)

	// Given the delay has not elapsed, nothing is available
	req.False(future.Settled())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := future.Await(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)

	// When the delay elapses
	req.NotNil(fire)
	fire()

	// Then the square is available
	value, err := future.Await(context.Background())
	req.NoError(err)
	req.Equal(16.0, value)
}

func TestSquarer_RejectsNegativeNumber(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	scheduler := mocks.NewMockScheduler(ctrl)

	scheduler.EXPECT().
		AfterFunc(gomock.Any(), gomock.Any()).
		Do(func(_ time.Duration, f func()) { f() }).
		Times(1)

	future := NewSquarer(log, scheduler, time.Second).Square(-1)

	value, err := future.Await(context.Background())
	req.ErrorIs(err, errors.ErrNegativeNumber)
	req.EqualError(err, "Negative number not allowed")
	req.Zero(value)
}

func TestSquarer_ZeroIsNotNegative(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	scheduler := mocks.NewMockScheduler(ctrl)
	scheduler.EXPECT().
		AfterFunc(gomock.Any(), gomock.Any()).
		Do(func(_ time.Duration, f func()) { f() })

	value, err := NewSquarer(logs.GetLoggerFromLevel(slog.LevelDebug), scheduler, time.Second).Square(0).Await(context.Background())

	req.NoError(err)
	req.Zero(value)
}

func TestSquarer_LargeInputs(t *testing.T) {
	tests := []struct {
		name     string
		n        float64
		expected float64
		err      error
	}{
		{name: "Square of 2^32 is 2^64", n: 4294967296, expected: 18446744073709551616},
		{name: "Square above the int64 range", n: 3037000500, expected: 9223372037000250000},
		{name: "Square beyond float64 is rejected", n: 1e200, err: errors.ErrSquareOutOfRange},
		{name: "Infinity is rejected", n: math.Inf(1), err: errors.ErrSquareOutOfRange},
		{name: "NaN is rejected", n: math.NaN(), err: errors.ErrSquareOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			scheduler := mocks.NewMockScheduler(ctrl)
			scheduler.EXPECT().
				AfterFunc(gomock.Any(), gomock.Any()).
				Do(func(_ time.Duration, f func()) { f() })

			value, err := NewSquarer(logs.GetLoggerFromLevel(slog.LevelDebug), scheduler, time.Second).
				Square(tt.n).
				Await(context.Background())

			if tt.err != nil {
				req.ErrorIs(err, tt.err)
				req.Zero(value)
				return
			}
			req.NoError(err)
			req.Greater(value, 0.0)
			req.InEpsilon(tt.expected, value, 1e-15)
		})
	}
}

func TestSquarer_ConcurrentCallsAreIndependent(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	squarer := NewSquarer(log, TimerScheduler{}, 20*time.Millisecond)

	inputs := []float64{3, -2, 7.5, 0, -9, 11}
	futures := make([]*Future[float64], len(inputs))
	for i, n := range inputs {
		futures[i] = squarer.Square(n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i, n := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := futures[i].Await(ctx)
			if n < 0 {
				assert.ErrorIs(t, err, errors.ErrNegativeNumber)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, n*n, value)
		}()
	}
	wg.Wait()
	for _, f := range futures {
		req.True(f.Settled())
	}
}

func TestSquareAsync_WaitsForDefaultDelay(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the real delay")
	}
	req := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	positive := SquareAsync(4)
	negative := SquareAsync(-1)
	req.False(positive.Settled())

	value, err := positive.Await(ctx)
	req.NoError(err)
	req.Equal(16.0, value)
	req.GreaterOrEqual(time.Since(start), DefaultSquareDelay)

	_, err = negative.Await(ctx)
	req.EqualError(err, "Negative number not allowed")
}
