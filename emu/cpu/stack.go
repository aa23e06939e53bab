package cpu

import "fmt"

const StackDepth = 16

// Registers is the general register file plus the address register and program counter.
// V[0xF] is clobbered as a flag by arithmetic and draw instructions.
type Registers struct {
	V  [16]uint8
	I  uint16 //address register
	PC uint16
}

// Stack holds return addresses. SP indexes the next free slot.
type Stack struct {
	Slots [StackDepth]uint16
	SP    uint8
}

func (s *Stack) Push(addr uint16) error {
	if s.SP >= StackDepth {
		return fmt.Errorf("push %03X: %w", addr, ErrStackOverflow)
	}
	s.Slots[s.SP] = addr
	s.SP++
	return nil
}

func (s *Stack) Pop() (uint16, error) {
	if s.SP == 0 {
		return 0, ErrStackUnderflow
	}
	s.SP--
	return s.Slots[s.SP], nil
}
