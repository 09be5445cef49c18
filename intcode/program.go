package intcode

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/sirupsen/logrus"
)

// Program is the execution state of a single Intcode machine.
type Program struct {
	Verbose bool               // Set to enable verbose logging.
	Log     logrus.FieldLogger // Trace destination, the logrus standard logger if nil.

	Memory *Memory // Program memory.
	Ip     int64   // Address of the next instruction.
	Base   int64   // Relative base.
	Input  Queue   // Pending input values.
	Halted bool    // Set once the halt opcode executes.

	Ticks int // Instructions executed since reset.

	image []int64
}

// NewProgram creates a program from a memory image and initial inputs.
// The image is copied; the caller keeps ownership of its slice.
func NewProgram(image []int64, inputs ...int64) (prog *Program) {
	prog = &Program{
		image: slices.Clone(image),
	}

	prog.Reset()
	prog.Input.Push(inputs...)

	return
}

// Reset restores the initial memory image and clears all execution state,
// including pending input.
func (prog *Program) Reset() {
	prog.Memory = NewMemory(prog.image)
	prog.Ip = 0
	prog.Base = 0
	prog.Input.Reset()
	prog.Halted = false
	prog.Ticks = 0
}

// Push queues input values for later input instructions.
func (prog *Program) Push(values ...int64) {
	prog.Input.Push(values...)
}

// String returns the current machine state as a string.
func (prog *Program) String() (text string) {
	text += fmt.Sprintf("%6s: %d\n", "ip", prog.Ip)
	text += fmt.Sprintf("%6s: %d\n", "base", prog.Base)
	text += fmt.Sprintf("%6s: %v\n", "input", prog.Input.Data)
	text += fmt.Sprintf("%6s: %v\n", "halted", prog.Halted)
	text += fmt.Sprintf("%6s: %d\n", "memory", prog.Memory.Len())
	text += fmt.Sprintf("%6s: %d\n", "ticks", prog.Ticks)

	return
}

func (prog *Program) logger() logrus.FieldLogger {
	if prog.Log == nil {
		return logrus.StandardLogger()
	}

	return prog.Log
}

// Next decodes the instruction at the instruction pointer without executing it.
func (prog *Program) Next() (ins Instruction, err error) {
	word, err := prog.Memory.Read(prog.Ip)
	if err == nil {
		ins, err = Decode(word)
	}
	if err != nil {
		err = &ErrInstruction{Ip: prog.Ip, Word: word, Err: err}
	}

	return
}

// Waiting returns true if the next instruction is an input and no input is queued.
func (prog *Program) Waiting() bool {
	if prog.Halted || !prog.Input.Empty() {
		return false
	}

	ins, err := prog.Next()
	return err == nil && ins.Op == OP_IN
}

// Tick executes a single instruction.
// If the instruction was an output, emitted is set and value holds the output.
// Ticking a halted program does nothing.
func (prog *Program) Tick() (value int64, emitted bool, err error) {
	if prog.Halted {
		return
	}

	ins, err := prog.Next()
	if err != nil {
		return
	}

	return prog.Execute(ins)
}

// Execute executes a single decoded instruction located at the instruction pointer.
// An input instruction with an empty queue fails with ErrInputExhausted and
// leaves the program untouched.
func (prog *Program) Execute(ins Instruction) (value int64, emitted bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrInstruction{Ip: prog.Ip, Word: ins.Word(), Err: err}
		}
	}()

	var args [3]int64
	for n := range ins.Op.Arity() {
		args[n], err = prog.Memory.Read(prog.Ip + 1 + int64(n))
		if err != nil {
			return
		}
	}

	if prog.Verbose {
		prog.logger().WithFields(logrus.Fields{
			"ip":   prog.Ip,
			"base": prog.Base,
		}).Debug(ins.Format(args[:]...))
	}

	next_ip := prog.Ip + ins.Width()

	switch ins.Op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b, result int64
		a, err = prog.load(ins.Modes[0], args[0])
		if err != nil {
			return
		}
		b, err = prog.load(ins.Modes[1], args[1])
		if err != nil {
			return
		}
		switch ins.Op {
		case OP_ADD:
			result, err = addChecked(a, b)
		case OP_MUL:
			result, err = mulChecked(a, b)
		case OP_LT:
			result = boolValue(a < b)
		case OP_EQ:
			result = boolValue(a == b)
		}
		if err != nil {
			return
		}
		err = prog.store(ins.Modes[2], args[2], result)
		if err != nil {
			return
		}
	case OP_IN:
		var addr int64
		addr, err = prog.address(ins.Modes[0], args[0])
		if err != nil {
			return
		}
		input, ok := prog.Input.Pop()
		if !ok {
			err = ErrInputExhausted
			return
		}
		err = prog.Memory.Write(addr, input)
		if err != nil {
			return
		}
	case OP_OUT:
		value, err = prog.load(ins.Modes[0], args[0])
		if err != nil {
			return
		}
		emitted = true
	case OP_JT, OP_JF:
		var cond, target int64
		cond, err = prog.load(ins.Modes[0], args[0])
		if err != nil {
			return
		}
		target, err = prog.load(ins.Modes[1], args[1])
		if err != nil {
			return
		}
		if (cond != 0) == (ins.Op == OP_JT) {
			next_ip = target
		}
	case OP_ARB:
		var delta, base int64
		delta, err = prog.load(ins.Modes[0], args[0])
		if err != nil {
			return
		}
		base, err = addChecked(prog.Base, delta)
		if err != nil {
			return
		}
		prog.Base = base
	case OP_HALT:
		prog.Halted = true
		next_ip = prog.Ip
	default:
		err = errors.Join(ErrDecode, ErrOpcode(ins.Word()))
		return
	}

	prog.Ip = next_ip
	prog.Ticks++

	return
}

// address resolves the memory address an operand refers to.
func (prog *Program) address(mode Mode, arg int64) (addr int64, err error) {
	switch mode {
	case MODE_POSITION:
		addr = arg
	case MODE_RELATIVE:
		addr, err = addChecked(prog.Base, arg)
		if err != nil {
			return
		}
	case MODE_IMMEDIATE:
		err = errors.Join(ErrAddress, ErrImmediateWrite)
		return
	default:
		err = errors.Join(ErrDecode, ErrMode)
		return
	}

	if addr < 0 {
		err = errors.Join(ErrAddress, ErrAddressNegative)
	}

	return
}

// load returns the value of an operand.
func (prog *Program) load(mode Mode, arg int64) (value int64, err error) {
	if mode == MODE_IMMEDIATE {
		value = arg
		return
	}

	addr, err := prog.address(mode, arg)
	if err != nil {
		return
	}

	return prog.Memory.Read(addr)
}

// store writes a value through an operand.
func (prog *Program) store(mode Mode, arg int64, value int64) (err error) {
	addr, err := prog.address(mode, arg)
	if err != nil {
		return
	}

	return prog.Memory.Write(addr, value)
}

// Run executes until the program halts.
func (prog *Program) Run() (err error) {
	for !prog.Halted {
		_, _, err = prog.Tick()
		if err != nil {
			return
		}
	}

	return
}

// RunForOutput executes until the next output, and returns it immediately
// after the output instruction. If the program halts first, ok is false.
func (prog *Program) RunForOutput() (value int64, ok bool, err error) {
	for !prog.Halted {
		value, ok, err = prog.Tick()
		if err != nil || ok {
			return
		}
	}

	return 0, false, nil
}

// Settle runs forward through instructions that are neither input nor
// output, stopping before the next input, output, or fault, or at halt.
// After the final output of a program, Settle leaves it Halted.
// A fault is not reported; the next Tick meets it again.
func (prog *Program) Settle() {
	for !prog.Halted {
		ins, err := prog.Next()
		if err != nil || ins.Op == OP_IN || ins.Op == OP_OUT {
			return
		}
		_, _, err = prog.Execute(ins)
		if err != nil {
			return
		}
	}
}

// Outputs iterates over the remaining outputs of the program.
// Iteration stops at halt, or after yielding the first error.
func (prog *Program) Outputs() iter.Seq2[int64, error] {
	return func(yield func(value int64, err error) bool) {
		for {
			value, ok, err := prog.RunForOutput()
			if err != nil {
				yield(0, err)
				return
			}
			if !ok {
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

func boolValue(cond bool) int64 {
	if cond {
		return 1
	}

	return 0
}

func addChecked(a, b int64) (sum int64, err error) {
	sum = a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		err = ErrOverflow
	}

	return
}

func mulChecked(a, b int64) (product int64, err error) {
	if a == 0 || b == 0 {
		return
	}

	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		err = ErrOverflow
		return
	}

	product = a * b
	if product/b != a {
		err = ErrOverflow
	}

	return
}
