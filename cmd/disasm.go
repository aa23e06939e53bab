package cmd

import (
	"fmt"
	"io"

	"github.com/beanboi7/chyp8/chyp"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print the instructions of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := chyp.LoadROM(args[0])
		if err != nil {
			return err
		}
		return disassemble(cmd.OutOrStdout(), rom)
	},
}

// disassemble lists every word of the ROM with its load address, a trailing odd byte as data.
func disassemble(w io.Writer, rom []uint8) error {
	for i := 0; i+1 < len(rom); i += 2 {
		opcode := uint16(rom[i])<<8 | uint16(rom[i+1])
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", cpu.ProgramStart+i, opcode, cpu.Disassemble(opcode)); err != nil {
			return err
		}
	}
	if len(rom)%2 == 1 {
		last := len(rom) - 1
		if _, err := fmt.Fprintf(w, "%03X  %02X    DB $%02X\n", cpu.ProgramStart+last, rom[last], rom[last]); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}
