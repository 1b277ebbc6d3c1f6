package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gbcore/internal/asm"
)

func asmCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "asm [source]",
		Short: "Assemble a source file into a program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			program, err := asm.Assemble(args[0], src)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".gb"
			}
			if filepath.Clean(output) == filepath.Clean(args[0]) {
				return fmt.Errorf("asm: output %s would overwrite the source", output)
			}
			if err := os.WriteFile(output, program, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(program), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: source with a .gb extension)")

	return cmd
}
