package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gbcore/internal/cpu"
)

func opcodesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "opcodes",
		Short: "List the opcode dispatch table",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i := 0; i < 256; i++ {
				instr := cpu.Lookup(uint8(i))
				if !instr.Implemented() && !all {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%02X  %s\n", i, instr)
			}
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include unimplemented opcodes")

	return cmd
}
