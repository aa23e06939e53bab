package cpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryBounds(t *testing.T) {
	var m Memory

	assert.NoError(t, m.Write(0xFFF, 0x12))
	value, err := m.Read(0xFFF)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x12), value)

	_, err = m.Read(0x1000)
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
	err = m.Write(0x1000, 1)
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))

	_, err = m.Slice(0xFFE, 3)
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
	data, err := m.Slice(0xFFE, 2)
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0, 0x12}, data)
}

func TestMemoryLoad(t *testing.T) {
	var m Memory
	m.reset()

	assert.NoError(t, m.Load([]uint8{0xDE, 0xAD}))
	assert.Equal(t, uint8(0xDE), m[ProgramStart])
	assert.Equal(t, uint8(0xAD), m[ProgramStart+1])
	assert.Equal(t, FontSet[0], m[0])

	err := m.Load(make([]uint8, MaxROMSize+1))
	assert.True(t, errors.Is(err, ErrProgramTooLarge))
}

func TestStack(t *testing.T) {
	var s Stack
	for i := 0; i < StackDepth; i++ {
		assert.NoError(t, s.Push(uint16(0x200+i*2)))
	}
	assert.True(t, errors.Is(s.Push(0x300), ErrStackOverflow))

	addr, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x21E), addr)
	for i := 1; i < StackDepth; i++ {
		_, err = s.Pop()
		assert.NoError(t, err)
	}

	_, err = s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, uint8(0), s.SP)
}
