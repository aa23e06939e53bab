// Package chyp8 schedules a machine: instructions and timers advance on independent clocks.
package chyp8

import (
	"context"
	"errors"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/log"
)

const (
	DefaultClock   = 500 // instructions per second
	DefaultTimerHz = 60
	slice          = 2 * time.Millisecond
	maxBacklog     = 100 * time.Millisecond
)

// Machine is the part of the emulator the runner drives.
type Machine interface {
	Step() error
	Cycle() error
	TickTimers()
	SetKeys(pad cpu.Keypad)
}

type Config struct {
	Clock   int  // instructions per second
	TimerHz int  // timer decrements per second
	Coupled bool // tick timers once per instruction instead of at TimerHz
}

// Runner advances a Machine by wall clock time.
type Runner struct {
	machine Machine
	keypad  cpu.Keypad
	logger  *log.Logger
	cfg     Config

	stepDebt  float64
	timerDebt float64
	steps     uint64
}

func NewRunner(machine Machine, keypad cpu.Keypad, logger *log.Logger, cfg Config) *Runner {
	if cfg.Clock <= 0 {
		cfg.Clock = DefaultClock
	}
	if cfg.TimerHz <= 0 {
		cfg.TimerHz = DefaultTimerHz
	}
	return &Runner{
		machine: machine,
		keypad:  keypad,
		logger:  logger,
		cfg:     cfg,
	}
}

// Run advances the machine until the context is done or the machine fails.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("Starting machine",
		log.Int("clock", r.cfg.Clock),
		log.Int("timer_hz", r.cfg.TimerHz))

	ticker := time.NewTicker(slice)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Stopping machine", log.Int("steps", int(r.steps)))
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if err := r.Advance(elapsed); err != nil {
				return err
			}
		}
	}
}

// Advance runs as many instructions and timer ticks as fit into the elapsed time.
// Fractions carry over to the next call.
func (r *Runner) Advance(elapsed time.Duration) error {
	if elapsed > maxBacklog {
		elapsed = maxBacklog
	}
	seconds := elapsed.Seconds()
	r.stepDebt += seconds * float64(r.cfg.Clock)
	r.timerDebt += seconds * float64(r.cfg.TimerHz)

	if r.keypad != nil {
		r.machine.SetKeys(r.keypad)
	}

	for ; r.stepDebt >= 1; r.stepDebt-- {
		var err error
		if r.cfg.Coupled {
			err = r.machine.Cycle()
		} else {
			err = r.machine.Step()
		}
		if err != nil {
			return err
		}
		r.steps++
	}

	if r.cfg.Coupled {
		r.timerDebt = 0
		return nil
	}
	for ; r.timerDebt >= 1; r.timerDebt-- {
		r.machine.TickTimers()
	}
	return nil
}
