package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	level := levelFlag(logrus.InfoLevel)

	rootCmd := &cobra.Command{
		Use:           "gbcore",
		Short:         "Game Boy CPU interpreter core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Var(&level, "log-level", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(runCmd(&level), asmCmd(), opcodesCmd())

	if err := rootCmd.Execute(); err != nil {
		log.New(logrus.Level(level)).Fatal(err)
	}
}

func runCmd(level *levelFlag) *cobra.Command {
	var (
		bootROM string
		steps   int
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Execute a program image until it aborts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := logrus.Level(*level)
			if debug {
				lvl = logrus.TraceLevel
			}
			logger := log.New(lvl)

			// open the rom file
			rom, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			opts := []gameboy.Opt{gameboy.WithLogger(logger)}
			if bootROM != "" {
				boot, err := utils.LoadFile(bootROM)
				if err != nil {
					return err
				}
				opts = append(opts, gameboy.WithBootROM(boot))
			}
			if lvl == logrus.TraceLevel {
				opts = append(opts, gameboy.Debug())
			}

			gb, err := gameboy.NewGameBoy(rom, opts...)
			if err != nil {
				return err
			}

			if steps > 0 {
				if err := gb.Step(steps); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), gb.CPU)
				return nil
			}

			err = gb.Run()
			fmt.Fprintln(cmd.OutOrStdout(), gb.CPU)
			return err
		},
	}
	cmd.Flags().StringVar(&bootROM, "boot", "", "Boot ROM to map over the low addresses")
	cmd.Flags().IntVar(&steps, "steps", 0, "Number of instructions to execute (0 = until abort)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Trace every instruction (implies --log-level trace)")

	return cmd
}
