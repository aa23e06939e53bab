package cpu

import (
	"fmt"
	"sync"

	"github.com/retroenv/retrogolib/log"
)

// EMU is the CHIP-8 virtual machine: memory, registers, stack, display, timers and keypad.
// Its methods are safe to call from a stepping goroutine and a rendering goroutine at once.
type EMU struct {
	mu sync.RWMutex

	memory  Memory
	regs    Registers
	stack   Stack
	display Display
	timers  Timers
	keys    Keys

	random  RandomSource
	speaker Speaker
	logger  *log.Logger

	halted error //set once a fatal error stops the machine
}

// Option configures an EMU at construction.
type Option func(*EMU)

func WithRandom(src RandomSource) Option {
	return func(emu *EMU) { emu.random = src }
}

func WithSpeaker(speaker Speaker) Option {
	return func(emu *EMU) { emu.speaker = speaker }
}

// WithLogger attaches a logger; every executed instruction is traced at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) { emu.logger = logger }
}

//NewEMU returns a reset machine with the font loaded and PC at 0x200
func NewEMU(opts ...Option) *EMU {
	emu := &EMU{}
	for _, opt := range opts {
		opt(emu)
	}
	if emu.random == nil {
		emu.random = NewLiveRandom(0)
	}
	emu.reset()
	return emu
}

func (emu *EMU) Reset() {
	emu.mu.Lock()
	defer emu.mu.Unlock()
	emu.reset()
}

func (emu *EMU) reset() {
	emu.memory.reset()
	emu.regs = Registers{PC: ProgramStart}
	emu.stack = Stack{}
	emu.display.Clear()
	emu.timers = Timers{}
	emu.keys = Keys{}
	emu.halted = nil
}

// Load resets the machine and copies the program to 0x200.
func (emu *EMU) Load(program []uint8) error {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	emu.reset()
	return emu.memory.Load(program)
}

// Step runs one fetch-decode-execute cycle without touching the timers.
// Any error is fatal: the machine halts and keeps returning it.
func (emu *EMU) Step() error {
	emu.mu.Lock()
	defer emu.mu.Unlock()
	return emu.step()
}

// TickTimers decrements the delay and sound timers once.
func (emu *EMU) TickTimers() {
	emu.mu.Lock()
	defer emu.mu.Unlock()
	emu.timers.Tick(emu.speaker)
}

// Cycle is Step followed by one timer tick, the instruction-locked timing of the original chip.
func (emu *EMU) Cycle() error {
	emu.mu.Lock()
	defer emu.mu.Unlock()

	if err := emu.step(); err != nil {
		return err
	}
	emu.timers.Tick(emu.speaker)
	return nil
}

func (emu *EMU) step() error {
	if emu.halted != nil {
		return emu.halted
	}

	pc := emu.regs.PC
	word, err := emu.memory.Slice(pc, 2)
	if err != nil {
		return emu.halt(fmt.Errorf("fetching at %03X: %w", pc, err))
	}
	opcode := uint16(word[0])<<8 | uint16(word[1])

	ins, ok := Decode(opcode)
	if !ok {
		return emu.halt(&DecodeError{Opcode: opcode, PC: pc})
	}

	if emu.logger != nil {
		emu.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.String("instruction", ins.String()))
	}

	if err := emu.execute(ins); err != nil {
		return emu.halt(fmt.Errorf("executing %s at %03X: %w", ins, pc, err))
	}
	return nil
}

func (emu *EMU) halt(err error) error {
	emu.halted = err
	if emu.logger != nil {
		emu.logger.Error("Machine halted", log.Err(err))
	}
	return err
}

// Halted returns the fatal error that stopped the machine, if any.
func (emu *EMU) Halted() error {
	emu.mu.RLock()
	defer emu.mu.RUnlock()
	return emu.halted
}

// SetKeys snapshots the keypad state used by the following steps.
func (emu *EMU) SetKeys(pad Keypad) {
	var keys Keys
	for i := range keys {
		keys[i] = pad.Pressed(uint8(i))
	}

	emu.mu.Lock()
	emu.keys = keys
	emu.mu.Unlock()
}

// Frame returns a copy of the display.
func (emu *EMU) Frame() Display {
	emu.mu.RLock()
	defer emu.mu.RUnlock()
	return emu.display
}

func (emu *EMU) Registers() Registers {
	emu.mu.RLock()
	defer emu.mu.RUnlock()
	return emu.regs
}

func (emu *EMU) Stack() Stack {
	emu.mu.RLock()
	defer emu.mu.RUnlock()
	return emu.stack
}

func (emu *EMU) Timers() Timers {
	emu.mu.RLock()
	defer emu.mu.RUnlock()
	return emu.timers
}

// Memory returns a copy of the address space.
func (emu *EMU) Memory() Memory {
	emu.mu.RLock()
	defer emu.mu.RUnlock()
	return emu.memory
}
