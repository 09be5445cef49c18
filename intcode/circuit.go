package intcode

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// InputFunc returns the input batch for a program of a circuit, given the
// cycle number, the program index, and the last output of the chain.
type InputFunc func(cycle int, index int, output int64) ([]int64, error)

// Circuit chains copies of one program, feeding the output of each program
// to the input of the next.
type Circuit struct {
	Verbose bool               // Set to enable verbose logging.
	Log     logrus.FieldLogger // Trace destination, the logrus standard logger if nil.

	Programs []*Program // Programs, in chain order.
	Inputs   InputFunc  // Input batch generator.
	Feedback bool       // Repeat passes until the last program halts.

	Cycle int // Current cycle.
}

// NewCircuit creates a circuit of count private copies of image.
func NewCircuit(count int, image []int64, inputs InputFunc, feedback bool) (circuit *Circuit) {
	circuit = &Circuit{
		Inputs:   inputs,
		Feedback: feedback,
	}

	for range count {
		circuit.Programs = append(circuit.Programs, NewProgram(image))
	}

	return
}

func (circuit *Circuit) logger() logrus.FieldLogger {
	if circuit.Log == nil {
		return logrus.StandardLogger()
	}

	return circuit.Log
}

// Pass runs every program once, in index order, starting from output.
// Each program's input queue is replaced by the batch from Inputs.
// With feedback, each program is settled after its output, so the last
// program is Halted once it has produced its final output.
func (circuit *Circuit) Pass(output int64) (last int64, err error) {
	last = output

	for index, prog := range circuit.Programs {
		var batch []int64
		batch, err = circuit.Inputs(circuit.Cycle, index, last)
		if err != nil {
			err = &ErrStage{Cycle: circuit.Cycle, Index: index, Err: err}
			return
		}
		prog.Input.Replace(batch...)
		prog.Verbose = circuit.Verbose
		prog.Log = circuit.Log

		value, ok, run_err := prog.RunForOutput()
		if run_err == nil && !ok {
			run_err = errors.Join(ErrTopology, ErrCircuitSilent)
		}
		if run_err != nil {
			err = &ErrStage{Cycle: circuit.Cycle, Index: index, Err: run_err}
			return
		}
		if circuit.Feedback {
			prog.Settle()
		}

		if circuit.Verbose {
			circuit.logger().WithFields(logrus.Fields{
				"cycle": circuit.Cycle,
				"index": index,
				"input": batch,
			}).Debugf("output %d", value)
		}

		last = value
	}

	return
}

// Execute runs the circuit to completion and returns the last output.
//
// Without feedback, a single pass is made. With feedback, passes repeat until
// the last program has halted.
func (circuit *Circuit) Execute() (output int64, err error) {
	if len(circuit.Programs) == 0 {
		err = errors.Join(ErrTopology, ErrCircuitEmpty)
		return
	}

	tail := circuit.Programs[len(circuit.Programs)-1]
	for {
		output, err = circuit.Pass(output)
		if err != nil {
			return
		}

		if !circuit.Feedback || tail.Halted {
			return
		}

		circuit.Cycle++
	}
}
