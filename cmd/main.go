package main

import (
	"assignment-lab/internal"
	"assignment-lab/report"
	"assignment-lab/runtime"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run evaluates every drill, waits for the delayed squares and prints the report.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	inputs, err := internal.ParseInputs(config.SquareInputs)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Synchronous drills
	rows, err := report.Domain()
	if err != nil {
		return fmt.Errorf("drills failed: %w", err)
	}

	// 4. Delayed squares, each on its own timer
	squarer := runtime.NewSquarer(log, runtime.TimerScheduler{}, config.SquareDelay)
	log.Info("Waiting for squares", "count", len(inputs), "delay", config.SquareDelay)
	squares, err := report.Squares(ctx, squarer, inputs)
	if err != nil {
		return fmt.Errorf("squares interrupted: %w", err)
	}

	report.Render(os.Stdout, append(rows, squares...), config.ReportColor)
	return nil
}
