package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/translate"
)

var errPoke = errors.New(translate.From("poke must be ADDR=VALUE"))

var (
	runInput string
	runPokes []string
	runAscii bool
	runDump  bool
)

var runCmd = &cobra.Command{
	Use:   "run IMAGE",
	Short: "Run a program, with tape input from stdin and output to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Inputs queued before the tape, comma separated")
	runCmd.Flags().StringArrayVarP(&runPokes, "poke", "p", nil, "Patch memory before running, as ADDR=VALUE")
	runCmd.Flags().BoolVarP(&runAscii, "ascii", "a", false, "Tape values are bytes")
	runCmd.Flags().BoolVarP(&runDump, "dump", "d", false, "Write the final memory image to stderr")
}

// parsePoke splits an ADDR=VALUE patch.
func parsePoke(poke string) (addr int64, value int64, err error) {
	left, right, ok := strings.Cut(poke, "=")
	if !ok {
		err = fmt.Errorf("%w: %q", errPoke, poke)
		return
	}

	addr, err = strconv.ParseInt(strings.TrimSpace(left), 0, 64)
	if err != nil {
		err = fmt.Errorf("%w: %q", errPoke, poke)
		return
	}

	value, err = strconv.ParseInt(strings.TrimSpace(right), 0, 64)
	if err != nil {
		err = fmt.Errorf("%w: %q", errPoke, poke)
	}

	return
}

func runImage(cmd *cobra.Command, args []string) (err error) {
	image, err := readImage(args[0])
	if err != nil {
		return
	}

	preset, err := io.ReadImage(strings.NewReader(runInput))
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(image, preset...)
	emu.Verbose = verbose

	for _, poke := range runPokes {
		var addr, value int64
		addr, value, err = parsePoke(poke)
		if err != nil {
			return
		}
		err = emu.Memory.Write(addr, value)
		if err != nil {
			return
		}
	}

	tape := &io.Tape{Input: cmd.InOrStdin(), Ascii: runAscii}
	emu.Input = tape
	emu.Output = &io.Tape{Output: cmd.OutOrStdout(), Ascii: runAscii}

	err = emu.Run()
	if tape.Err != nil {
		err = errors.Join(err, tape.Err)
	}
	if err != nil {
		if verbose {
			logrus.Debug(emu.Program.String())
		}
		return
	}

	if runDump {
		err = io.WriteImage(cmd.ErrOrStderr(), emu.Memory.Snapshot())
	}

	return
}
