package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oisee/i8080/pkg/emu"
	"github.com/oisee/i8080/pkg/inst"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080",
		Short: "Intel 8080 emulator and disassembler",
	}

	// disasm command
	disasmCmd := &cobra.Command{
		Use:   "disasm [rom]",
		Short: "Disassemble a flat binary ROM image to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := emu.ReadROM(args[0])
			if err != nil {
				return err
			}
			return inst.Disassemble(image, os.Stdout)
		},
	}

	// run command
	var trace bool
	var maxSteps uint64
	var dumpState bool
	var configPath string

	runCmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Load a ROM at address 0 and run until halt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := emu.Options{Trace: trace, MaxSteps: maxSteps}
			dump := dumpState

			if configPath != "" {
				cfg, err := emu.LoadConfig(configPath)
				if err != nil {
					return err
				}
				// File values apply only where the flag wasn't given.
				if !cmd.Flags().Changed("trace") {
					opts.Trace = cfg.Trace
				}
				if !cmd.Flags().Changed("max-steps") {
					opts.MaxSteps = cfg.MaxSteps
				}
				if !cmd.Flags().Changed("dump-state") {
					dump = cfg.DumpState
				}
			}

			logger := zap.NewNop()
			if opts.Trace {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer l.Sync()
				logger = l
			}

			image, err := emu.ReadROM(args[0])
			if err != nil {
				return err
			}

			m := emu.NewMachine(opts, logger)
			if err := m.Load(image); err != nil {
				return err
			}

			steps, err := m.Run()
			if err != nil {
				return err
			}

			snap := emu.Take(m.CPU, steps)
			if dump {
				return snap.WriteJSON(os.Stdout)
			}
			fmt.Println(snap)
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&trace, "trace", "t", false, "Log every instruction and port access")
	runCmd.Flags().Uint64Var(&maxSteps, "max-steps", 0, "Stop after N instructions (0 = run to halt)")
	runCmd.Flags().BoolVar(&dumpState, "dump-state", false, "Print final CPU state as JSON")
	runCmd.Flags().StringVar(&configPath, "config", "", "TOML config file with run options")

	rootCmd.AddCommand(disasmCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
