package cpu

// Op identifies a decoded instruction.
type Op uint8

const (
	OpCLS     Op = iota // 00E0
	OpRET               // 00EE
	OpJP                // 1nnn
	OpCALL              // 2nnn
	OpSEByte            // 3xkk
	OpSNEByte           // 4xkk
	OpSEReg             // 5xy0
	OpLDByte            // 6xkk
	OpADDByte           // 7xkk
	OpLDReg             // 8xy0
	OpOR                // 8xy1
	OpAND               // 8xy2
	OpXOR               // 8xy3
	OpADDReg            // 8xy4
	OpSUB               // 8xy5
	OpSHR               // 8xy6
	OpSUBN              // 8xy7
	OpSHL               // 8xyE
	OpSNEReg            // 9xy0
	OpLDI               // Annn
	OpJPV0              // Bnnn
	OpRND               // Cxkk
	OpDRW               // Dxyn
	OpSKP               // Ex9E
	OpSKNP              // ExA1
	OpLDVxDT            // Fx07
	OpLDVxK             // Fx0A
	OpLDDTVx            // Fx15
	OpLDSTVx            // Fx18
	OpADDI              // Fx1E
	OpLDF               // Fx29
	OpLDB               // Fx33
	OpLDIVx             // Fx55
	OpLDVxI             // Fx65
)

// Instruction is a decoded opcode with its operand fields extracted.
type Instruction struct {
	Op     Op
	Opcode uint16
	X      uint8
	Y      uint8
	N      uint8
	KK     uint8
	Addr   uint16
}

// Decode classifies an opcode by its high nibble and then its low nibble or low byte.
// It returns false when no instruction matches.
func Decode(opcode uint16) (Instruction, bool) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0xF,
		Y:      uint8(opcode>>4) & 0xF,
		N:      uint8(opcode) & 0xF,
		KK:     uint8(opcode),
		Addr:   opcode & 0x0FFF,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			ins.Op = OpCLS
		case 0x00EE:
			ins.Op = OpRET
		default:
			return ins, false
		}
	case 0x1000:
		ins.Op = OpJP
	case 0x2000:
		ins.Op = OpCALL
	case 0x3000:
		ins.Op = OpSEByte
	case 0x4000:
		ins.Op = OpSNEByte
	case 0x5000:
		if ins.N != 0 {
			return ins, false
		}
		ins.Op = OpSEReg
	case 0x6000:
		ins.Op = OpLDByte
	case 0x7000:
		ins.Op = OpADDByte
	case 0x8000:
		switch ins.N {
		case 0x0:
			ins.Op = OpLDReg
		case 0x1:
			ins.Op = OpOR
		case 0x2:
			ins.Op = OpAND
		case 0x3:
			ins.Op = OpXOR
		case 0x4:
			ins.Op = OpADDReg
		case 0x5:
			ins.Op = OpSUB
		case 0x6:
			ins.Op = OpSHR
		case 0x7:
			ins.Op = OpSUBN
		case 0xE:
			ins.Op = OpSHL
		default:
			return ins, false
		}
	case 0x9000:
		if ins.N != 0 {
			return ins, false
		}
		ins.Op = OpSNEReg
	case 0xA000:
		ins.Op = OpLDI
	case 0xB000:
		ins.Op = OpJPV0
	case 0xC000:
		ins.Op = OpRND
	case 0xD000:
		ins.Op = OpDRW
	case 0xE000:
		switch ins.KK {
		case 0x9E:
			ins.Op = OpSKP
		case 0xA1:
			ins.Op = OpSKNP
		default:
			return ins, false
		}
	case 0xF000:
		switch ins.KK {
		case 0x07:
			ins.Op = OpLDVxDT
		case 0x0A:
			ins.Op = OpLDVxK
		case 0x15:
			ins.Op = OpLDDTVx
		case 0x18:
			ins.Op = OpLDSTVx
		case 0x1E:
			ins.Op = OpADDI
		case 0x29:
			ins.Op = OpLDF
		case 0x33:
			ins.Op = OpLDB
		case 0x55:
			ins.Op = OpLDIVx
		case 0x65:
			ins.Op = OpLDVxI
		default:
			return ins, false
		}
	}
	return ins, true
}
