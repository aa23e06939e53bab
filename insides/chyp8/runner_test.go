package chyp8

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fakeMachine struct {
	steps   int
	cycles  int
	ticks   int
	keySets int
	failAt  int
}

var errFake = errors.New("fake failure")

func (m *fakeMachine) Step() error {
	m.steps++
	if m.failAt > 0 && m.steps == m.failAt {
		return errFake
	}
	return nil
}

func (m *fakeMachine) Cycle() error {
	m.cycles++
	return nil
}

func (m *fakeMachine) TickTimers() {
	m.ticks++
}

func (m *fakeMachine) SetKeys(cpu.Keypad) {
	m.keySets++
}

func TestAdvanceDecouplesTimers(t *testing.T) {
	machine := &fakeMachine{}
	runner := NewRunner(machine, cpu.Keys{}, log.NewTestLogger(t), Config{Clock: 600, TimerHz: 60})

	assert.NoError(t, runner.Advance(50*time.Millisecond))
	assert.Equal(t, 30, machine.steps)
	assert.Equal(t, 3, machine.ticks)
	assert.Equal(t, 1, machine.keySets)
	assert.Equal(t, 0, machine.cycles)
}

func TestAdvanceCarriesFractions(t *testing.T) {
	machine := &fakeMachine{}
	runner := NewRunner(machine, nil, log.NewTestLogger(t), Config{Clock: 500, TimerHz: 60})

	for i := 0; i < 10; i++ {
		assert.NoError(t, runner.Advance(time.Millisecond))
	}
	assert.Equal(t, 5, machine.steps)
	assert.Equal(t, 0, machine.ticks)
	assert.Equal(t, 0, machine.keySets)

	assert.NoError(t, runner.Advance(10*time.Millisecond))
	assert.Equal(t, 10, machine.steps)
	assert.Equal(t, 1, machine.ticks)
}

func TestAdvanceCoupled(t *testing.T) {
	machine := &fakeMachine{}
	runner := NewRunner(machine, nil, log.NewTestLogger(t), Config{Clock: 1000, Coupled: true})

	assert.NoError(t, runner.Advance(20*time.Millisecond))
	assert.Equal(t, 20, machine.cycles)
	assert.Equal(t, 0, machine.steps)
	assert.Equal(t, 0, machine.ticks)
}

func TestAdvanceCapsBacklog(t *testing.T) {
	machine := &fakeMachine{}
	runner := NewRunner(machine, nil, log.NewTestLogger(t), Config{Clock: 1000, TimerHz: 60})

	assert.NoError(t, runner.Advance(10*time.Second))
	assert.Equal(t, 100, machine.steps)
	assert.Equal(t, 6, machine.ticks)
}

func TestAdvanceStopsOnError(t *testing.T) {
	machine := &fakeMachine{failAt: 3}
	runner := NewRunner(machine, nil, log.NewTestLogger(t), Config{Clock: 1000})

	err := runner.Advance(10 * time.Millisecond)
	assert.True(t, errors.Is(err, errFake))
	assert.Equal(t, 3, machine.steps)
	assert.Equal(t, 0, machine.ticks)
}

func TestRunDrivesMachine(t *testing.T) {
	emu := cpu.NewEMU(cpu.WithRandom(cpu.NewFixedRandom(0)))
	// 0x200: LD V0, 1; 0x202: ADD V1, V0 (loop)
	assert.NoError(t, emu.Load([]uint8{0x60, 0x01, 0x71, 0x01, 0x12, 0x02}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	runner := NewRunner(emu, cpu.Keys{}, log.NewTestLogger(t), Config{Clock: 2000})
	err := runner.Run(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, emu.Registers().V[1] > 0)
}

func TestRunReturnsMachineError(t *testing.T) {
	emu := cpu.NewEMU()
	assert.NoError(t, emu.Load([]uint8{0xFF, 0xFF}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	runner := NewRunner(emu, nil, log.NewTestLogger(t), Config{Clock: 1000})
	err := runner.Run(ctx)
	assert.True(t, errors.Is(err, cpu.ErrUnknownOpcode))
}
