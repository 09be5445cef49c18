// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs an Intcode program against value channels.
package emulator

import (
	"iter"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
)

// Emulator state. Program + IO channels.
type Emulator struct {
	Verbose          bool               // If set, enables verbose logging.
	Log              logrus.FieldLogger // Trace destination, the logrus standard logger if nil.
	*intcode.Program                    // Reference to the running program.

	Preset []int64    // Inputs consumed before any from the Input channel.
	Input  io.Channel // Input channel.
	Output io.Channel // Output channel.

	preset []int64
}

// NewEmulator creates a new emulator for a program image, with in-memory
// input and output buffers.
func NewEmulator(image []int64, preset ...int64) (emu *Emulator) {
	emu = &Emulator{
		Program: intcode.NewProgram(image),
		Preset:  slices.Clone(preset),
		Input:   &io.Buffer{},
		Output:  &io.Buffer{},
		preset:  slices.Clone(preset),
	}

	return
}

// Reset restores the program image and the preset inputs, and rewinds
// both channels.
func (emu *Emulator) Reset() {
	emu.Program.Reset()
	emu.Preset = slices.Clone(emu.preset)
	if emu.Input != nil {
		emu.Input.Rewind()
	}
	if emu.Output != nil {
		emu.Output.Rewind()
	}
}

// source returns the pending inputs, presets first.
func (emu *Emulator) source() iter.Seq[int64] {
	preset := internal.IterSliceDrain(&emu.Preset)
	if emu.Input == nil {
		return preset
	}

	return internal.IterSeqConcat(preset, emu.Input.Receive())
}

// Tick performs a single instruction of the emulator.
// An input instruction with nothing queued pulls one value from the
// input channel first.
func (emu *Emulator) Tick() (done bool, err error) {
	prog := emu.Program
	prog.Verbose = emu.Verbose
	prog.Log = emu.Log

	ip := prog.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Ticks: prog.Ticks, Err: err}
		}
	}()

	if prog.Halted {
		done = true
		return
	}

	if prog.Waiting() {
		for value := range emu.source() {
			prog.Push(value)
			break
		}
	}

	value, emitted, err := prog.Tick()
	if err != nil {
		return
	}

	if emitted {
		err = emu.Output.Send(value)
		if err != nil {
			return
		}
	}

	done = prog.Halted

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
