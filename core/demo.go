// Package core contains the execution logic behind each CLI command.
package core

import (
	"context"
	"time"

	"github.com/dcoder4/backpack/internal/contract"
	"github.com/dcoder4/backpack/internal/outwriter"
	"github.com/dcoder4/backpack/timepiece"
)

// ExecuteDemo runs a simulated frame pipeline instrumented with nested
// scope timers and a frame-rate ticker, then prints the collected
// statistics.
func ExecuteDemo(ctx context.Context, cfg *contract.Config) error {
	frame, err := timepiece.NewScopeTimer("frame", cfg.Capacity)
	if err != nil {
		return err
	}
	fetch, err := frame.Child("fetch")
	if err != nil {
		return err
	}
	process, err := frame.Child("process")
	if err != nil {
		return err
	}
	detect, err := process.Child("detect")
	if err != nil {
		return err
	}
	track, err := process.Child("track")
	if err != nil {
		return err
	}

	rate, err := timepiece.NewTicker(cfg.Capacity)
	if err != nil {
		return err
	}

	for range cfg.Iterations {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rate.Mark()
		frame.Measure(func() {
			fetch.Measure(func() {
				simulateWork(cfg.WorkDelay)
			})
			process.Measure(func() {
				detect.Measure(func() {
					simulateWork(2 * cfg.WorkDelay)
				})
				track.Measure(func() {
					simulateWork(cfg.WorkDelay / 2)
				})
			})
		})
	}
	rate.Mark()

	return outwriter.WriteTimerReport(frame, rate, cfg)
}

// simulateWork stands in for a real pipeline stage.
func simulateWork(d time.Duration) {
	time.Sleep(d)
}
