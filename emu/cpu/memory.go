package cpu

import "fmt"

const (
	MemorySize   = 4096
	ProgramStart = 0x200
	MaxROMSize   = MemorySize - ProgramStart
	fontStart    = 0x000
	glyphSize    = 5
)

var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the 4KB address space. The font lives at 0x000, programs at 0x200.
type Memory [MemorySize]uint8

func (m *Memory) reset() {
	*m = Memory{}
	copy(m[fontStart:], FontSet[:])
}

// Load copies a program image to ProgramStart. Images that do not fit are rejected whole.
func (m *Memory) Load(program []uint8) error {
	if len(program) > MaxROMSize {
		return fmt.Errorf("%d bytes, can't cross %d: %w", len(program), MaxROMSize, ErrProgramTooLarge)
	}
	copy(m[ProgramStart:], program)
	return nil
}

func (m *Memory) Read(addr uint16) (uint8, error) {
	if err := m.check(addr, 1); err != nil {
		return 0, err
	}
	return m[addr], nil
}

func (m *Memory) Write(addr uint16, value uint8) error {
	if err := m.check(addr, 1); err != nil {
		return err
	}
	m[addr] = value
	return nil
}

// Slice returns a copy of the n bytes starting at addr.
func (m *Memory) Slice(addr, n uint16) ([]uint8, error) {
	if err := m.check(addr, n); err != nil {
		return nil, err
	}
	out := make([]uint8, n)
	copy(out, m[addr:int(addr)+int(n)])
	return out, nil
}

//check fails unless the whole range [addr, addr+n) is addressable
func (m *Memory) check(addr, n uint16) error {
	if int(addr)+int(n) > MemorySize {
		return fmt.Errorf("access %03X+%d: %w", addr, n, ErrMemoryOutOfBounds)
	}
	return nil
}
