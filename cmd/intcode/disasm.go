package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/intcode"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm IMAGE",
	Short: "Print a listing of a program image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		image, err := readImage(args[0])
		if err != nil {
			return
		}

		for line := range intcode.Listing(image) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}

		return
	},
}
