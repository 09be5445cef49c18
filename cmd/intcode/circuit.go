package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/config"
)

var circuitCmd = &cobra.Command{
	Use:   "circuit CONFIG.toml",
	Short: "Run the circuit described by a TOML file, and print its output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		conf, err := config.Load(args[0])
		if err != nil {
			return
		}
		conf.Verbose = conf.Verbose || verbose

		circuit, err := conf.Circuit()
		if err != nil {
			return
		}

		output, err := circuit.Execute()
		if err != nil {
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), output)

		return
	},
}
