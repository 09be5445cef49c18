package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrDecode = errors.New(f("decode"))
	ErrMode   = errors.New(f("mode invalid"))

	// Address errors
	ErrAddress         = errors.New(f("address"))
	ErrAddressNegative = errors.New(f("address negative"))
	ErrImmediateWrite  = errors.New(f("write through immediate"))
	ErrAddressLimit    = errors.New(f("address beyond memory limit"))

	// Execution errors
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrOverflow       = errors.New(f("overflow"))

	// Circuit errors
	ErrTopology      = errors.New(f("topology"))
	ErrCircuitSilent = errors.New(f("program halted without output"))
	ErrCircuitEmpty  = errors.New(f("circuit has no programs"))
)

// ErrOpcode is an undecodable instruction cell.
type ErrOpcode int64

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", int64(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrInstruction locates a fault at the instruction that raised it.
type ErrInstruction struct {
	Ip   int64
	Word int64
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("ip %v word %v: %v", err.Ip, err.Word, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrStage locates a circuit fault at a program slot and cycle.
type ErrStage struct {
	Cycle int
	Index int
	Err   error
}

func (err *ErrStage) Error() string {
	return f("cycle %v program %v: %v", err.Cycle, err.Index, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}
