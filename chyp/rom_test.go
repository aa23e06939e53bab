package chyp

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoadROM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, []byte{0x60, 0x05, 0x12, 0x02}, 0o644))

	rom, err := LoadROM(path)
	assert.NoError(t, err)
	assert.Equal(t, []uint8{0x60, 0x05, 0x12, 0x02}, rom)
}

func TestLoadROMMissing(t *testing.T) {
	_, err := LoadROM(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadROMTooLarge(t *testing.T) {
	_, err := ReadROM(bytes.NewReader(make([]byte, cpu.MaxROMSize+1)))
	assert.True(t, errors.Is(err, cpu.ErrProgramTooLarge))

	rom, err := ReadROM(bytes.NewReader(make([]byte, cpu.MaxROMSize)))
	assert.NoError(t, err)
	assert.Equal(t, cpu.MaxROMSize, len(rom))
}
