package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP $234"},
		{0x2ABC, "CALL $ABC"},
		{0x3A05, "SE VA, $05"},
		{0x5120, "SE V1, V2"},
		{0x6005, "LD V0, $05"},
		{0x8124, "ADD V1, V2"},
		{0x810E, "SHL V1"},
		{0xA123, "LD I, $123"},
		{0xB200, "JP V0, $200"},
		{0xC3FF, "RND V3, $FF"},
		{0xD125, "DRW V1, V2, 5"},
		{0xE49E, "SKP V4"},
		{0xF40A, "LD V4, K"},
		{0xF533, "LD B, V5"},
		{0xF655, "LD [I], V6"},
		{0xF765, "LD V7, [I]"},
		{0xFFFF, "DW $FFFF"},
		{0x0123, "DW $0123"},
		{0x5121, "DW $5121"},
		{0x8128, "DW $8128"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Disassemble(tt.opcode))
	}
}

func TestDecodeFields(t *testing.T) {
	ins, ok := Decode(0xD7A3)
	assert.True(t, ok)
	assert.Equal(t, OpDRW, ins.Op)
	assert.Equal(t, uint8(7), ins.X)
	assert.Equal(t, uint8(0xA), ins.Y)
	assert.Equal(t, uint8(3), ins.N)
	assert.Equal(t, uint8(0xA3), ins.KK)
	assert.Equal(t, uint16(0x7A3), ins.Addr)
}
