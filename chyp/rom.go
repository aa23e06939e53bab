package chyp

import (
	"fmt"
	"io"
	"os"

	"github.com/beanboi7/chyp8/emu/cpu"
)

// LoadROM reads a program image from disk. Images that cannot fit above 0x200 are rejected.
func LoadROM(filename string) ([]uint8, error) {
	rom, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ROM: %w", err)
	}
	defer rom.Close()

	return ReadROM(rom)
}

// ReadROM reads a program image, failing once it grows past the program area.
func ReadROM(r io.Reader) ([]uint8, error) {
	data, err := io.ReadAll(io.LimitReader(r, cpu.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	if len(data) > cpu.MaxROMSize {
		return nil, fmt.Errorf("ROM too big, can't cross %d bytes: %w", cpu.MaxROMSize, cpu.ErrProgramTooLarge)
	}
	return data, nil
}
