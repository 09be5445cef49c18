// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command intcode runs Intcode programs and circuits.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/efronlicht/enve"

	"github.com/ezrec/intcode/io"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "intcode [command]",
	Short:         "Intcode virtual machine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", enve.BoolOr("INTCODE_VERBOSE", false), "Trace each instruction")
	rootCmd.AddCommand(runCmd, circuitCmd, disasmCmd)
}

// readImage loads a program image file.
func readImage(path string) (cells []int64, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return io.ReadImage(inf)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
