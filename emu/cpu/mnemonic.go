package cpu

import "fmt"

// String renders the instruction in assembler notation, e.g. "LD V0, $05".
func (ins Instruction) String() string {
	x, y := ins.X, ins.Y
	switch ins.Op {
	case OpCLS:
		return "CLS"
	case OpRET:
		return "RET"
	case OpJP:
		return fmt.Sprintf("JP $%03X", ins.Addr)
	case OpCALL:
		return fmt.Sprintf("CALL $%03X", ins.Addr)
	case OpSEByte:
		return fmt.Sprintf("SE V%X, $%02X", x, ins.KK)
	case OpSNEByte:
		return fmt.Sprintf("SNE V%X, $%02X", x, ins.KK)
	case OpSEReg:
		return fmt.Sprintf("SE V%X, V%X", x, y)
	case OpLDByte:
		return fmt.Sprintf("LD V%X, $%02X", x, ins.KK)
	case OpADDByte:
		return fmt.Sprintf("ADD V%X, $%02X", x, ins.KK)
	case OpLDReg:
		return fmt.Sprintf("LD V%X, V%X", x, y)
	case OpOR:
		return fmt.Sprintf("OR V%X, V%X", x, y)
	case OpAND:
		return fmt.Sprintf("AND V%X, V%X", x, y)
	case OpXOR:
		return fmt.Sprintf("XOR V%X, V%X", x, y)
	case OpADDReg:
		return fmt.Sprintf("ADD V%X, V%X", x, y)
	case OpSUB:
		return fmt.Sprintf("SUB V%X, V%X", x, y)
	case OpSHR:
		return fmt.Sprintf("SHR V%X", x)
	case OpSUBN:
		return fmt.Sprintf("SUBN V%X, V%X", x, y)
	case OpSHL:
		return fmt.Sprintf("SHL V%X", x)
	case OpSNEReg:
		return fmt.Sprintf("SNE V%X, V%X", x, y)
	case OpLDI:
		return fmt.Sprintf("LD I, $%03X", ins.Addr)
	case OpJPV0:
		return fmt.Sprintf("JP V0, $%03X", ins.Addr)
	case OpRND:
		return fmt.Sprintf("RND V%X, $%02X", x, ins.KK)
	case OpDRW:
		return fmt.Sprintf("DRW V%X, V%X, %d", x, y, ins.N)
	case OpSKP:
		return fmt.Sprintf("SKP V%X", x)
	case OpSKNP:
		return fmt.Sprintf("SKNP V%X", x)
	case OpLDVxDT:
		return fmt.Sprintf("LD V%X, DT", x)
	case OpLDVxK:
		return fmt.Sprintf("LD V%X, K", x)
	case OpLDDTVx:
		return fmt.Sprintf("LD DT, V%X", x)
	case OpLDSTVx:
		return fmt.Sprintf("LD ST, V%X", x)
	case OpADDI:
		return fmt.Sprintf("ADD I, V%X", x)
	case OpLDF:
		return fmt.Sprintf("LD F, V%X", x)
	case OpLDB:
		return fmt.Sprintf("LD B, V%X", x)
	case OpLDIVx:
		return fmt.Sprintf("LD [I], V%X", x)
	case OpLDVxI:
		return fmt.Sprintf("LD V%X, [I]", x)
	}
	return fmt.Sprintf("DW $%04X", ins.Opcode)
}

// Disassemble renders a single opcode, falling back to a data word for unknown patterns.
func Disassemble(opcode uint16) string {
	ins, ok := Decode(opcode)
	if !ok {
		return fmt.Sprintf("DW $%04X", opcode)
	}
	return ins.String()
}
