package cpu

import "fmt"

const flag = 0xF

// execute applies a decoded instruction. Anything that can fail is checked before state changes.
func (emu *EMU) execute(ins Instruction) error {
	v := &emu.regs.V
	x, y := ins.X, ins.Y
	next := emu.regs.PC + 2

	switch ins.Op {
	case OpCLS:
		emu.display.Clear()

	case OpRET:
		//the call site was pushed, so return past it
		addr, err := emu.stack.Pop()
		if err != nil {
			return err
		}
		next = addr + 2

	case OpJP:
		next = ins.Addr

	case OpCALL:
		if err := emu.stack.Push(emu.regs.PC); err != nil {
			return err
		}
		next = ins.Addr

	case OpSEByte:
		if v[x] == ins.KK {
			next += 2
		}

	case OpSNEByte:
		if v[x] != ins.KK {
			next += 2
		}

	case OpSEReg:
		if v[x] == v[y] {
			next += 2
		}

	case OpSNEReg:
		if v[x] != v[y] {
			next += 2
		}

	case OpLDByte:
		v[x] = ins.KK

	case OpADDByte:
		v[x] += ins.KK

	case OpLDReg:
		v[x] = v[y]
	case OpOR:
		v[x] |= v[y]
	case OpAND:
		v[x] &= v[y]
	case OpXOR:
		v[x] ^= v[y]

	case OpADDReg:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = uint8(sum)
		v[flag] = boolByte(sum > 0xFF)

	case OpSUB:
		noBorrow := v[x] >= v[y]
		v[x] -= v[y]
		v[flag] = boolByte(noBorrow)

	case OpSUBN:
		noBorrow := v[y] >= v[x]
		v[x] = v[y] - v[x]
		v[flag] = boolByte(noBorrow)

	case OpSHR:
		lsb := v[x] & 0x01
		v[x] >>= 1
		v[flag] = lsb

	case OpSHL:
		msb := v[x] >> 7
		v[x] <<= 1
		v[flag] = msb

	case OpLDI:
		emu.regs.I = ins.Addr

	case OpJPV0:
		next = ins.Addr + uint16(v[0])

	case OpRND:
		v[x] = emu.random.NextByte() & ins.KK

	case OpDRW:
		sprite, err := emu.memory.Slice(emu.regs.I, uint16(ins.N))
		if err != nil {
			return err
		}
		v[flag] = boolByte(emu.display.Draw(v[x], v[y], sprite))

	case OpSKP:
		if emu.keys.Pressed(v[x]) {
			next += 2
		}

	case OpSKNP:
		if !emu.keys.Pressed(v[x]) {
			next += 2
		}

	case OpLDVxDT:
		v[x] = emu.timers.Delay

	case OpLDVxK:
		//hold PC on this instruction until a key is down
		key, ok := emu.keys.first()
		if !ok {
			next = emu.regs.PC
			break
		}
		v[x] = key

	case OpLDDTVx:
		emu.timers.Delay = v[x]

	case OpLDSTVx:
		emu.timers.Sound = v[x]

	case OpADDI:
		addr := uint32(emu.regs.I) + uint32(v[x])
		if addr >= MemorySize {
			return fmt.Errorf("I=%03X+%02X: %w", emu.regs.I, v[x], ErrMemoryOutOfBounds)
		}
		emu.regs.I = uint16(addr)

	case OpLDF:
		emu.regs.I = uint16(v[x]) * glyphSize

	case OpLDB:
		if err := emu.memory.check(emu.regs.I, 3); err != nil {
			return err
		}
		emu.memory[emu.regs.I] = v[x] / 100
		emu.memory[emu.regs.I+1] = v[x] / 10 % 10
		emu.memory[emu.regs.I+2] = v[x] % 10

	case OpLDIVx:
		n := uint16(x) + 1
		if err := emu.memory.check(emu.regs.I, n); err != nil {
			return err
		}
		copy(emu.memory[emu.regs.I:emu.regs.I+n], v[:n])

	case OpLDVxI:
		data, err := emu.memory.Slice(emu.regs.I, uint16(x)+1)
		if err != nil {
			return err
		}
		copy(v[:], data)

	default:
		return &DecodeError{Opcode: ins.Opcode, PC: emu.regs.PC}
	}

	emu.regs.PC = next
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
