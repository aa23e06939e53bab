package cmd

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/viper"
)

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, disassemble(&buf, []uint8{0x60, 0x05, 0x22, 0x04, 0xFF}))

	expected := "200  6005  LD V0, $05\n" +
		"202  2204  CALL $204\n" +
		"204  FF    DB $FF\n"
	assert.Equal(t, expected, buf.String())
}

func newTestViper() *viper.Viper {
	v := viper.New()
	v.Set("clock", 700)
	v.Set("timer", 60)
	v.Set("refresh", 60)
	v.Set("scale", 10.0)
	v.Set("frontend", frontendTerminal)
	return v
}

func TestLoadSettings(t *testing.T) {
	v := newTestViper()
	v.Set("seed", 42)
	v.Set("coupled", true)

	s, err := loadSettings(v)
	assert.NoError(t, err)
	assert.Equal(t, 700, s.Clock)
	assert.Equal(t, int64(42), s.Seed)
	assert.True(t, s.Coupled)
	assert.Equal(t, frontendTerminal, s.Frontend)
}

func TestLoadSettingsRejectsInvalid(t *testing.T) {
	v := newTestViper()
	v.Set("clock", 0)
	_, err := loadSettings(v)
	assert.Error(t, err)

	v = newTestViper()
	v.Set("frontend", "vga")
	_, err = loadSettings(v)
	assert.ErrorContains(t, err, "unknown frontend")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["disasm"])
}
