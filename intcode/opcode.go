package intcode

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

// Valid returns true for the three known modes.
func (mode Mode) Valid() bool {
	return mode >= MODE_POSITION && mode <= MODE_RELATIVE
}

// Opcode is an Intcode operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JT   = Opcode(5)  // jt
	OP_JF   = Opcode(6)  // jf
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

// opArity is the operand count of each opcode.
var opArity = map[Opcode]int{
	OP_ADD:  3,
	OP_MUL:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_JT:   2,
	OP_JF:   2,
	OP_LT:   3,
	OP_EQ:   3,
	OP_ARB:  1,
	OP_HALT: 0,
}

// Known returns true if the opcode is part of the instruction set.
func (op Opcode) Known() (ok bool) {
	_, ok = opArity[op]
	return
}

// Arity returns the number of operands of the opcode.
func (op Opcode) Arity() int {
	return opArity[op]
}

// Target returns the index of the written operand, or -1.
func (op Opcode) Target() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 2
	case OP_IN:
		return 0
	}

	return -1
}

// Instruction is a decoded instruction cell.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Decode splits an instruction cell into its opcode and operand modes.
// Mode digits past the arity of the opcode are ignored.
func Decode(word int64) (ins Instruction, err error) {
	if word < 0 {
		err = errors.Join(ErrDecode, ErrOpcode(word))
		return
	}

	ins.Op = Opcode(word % 100)
	if !ins.Op.Known() {
		err = errors.Join(ErrDecode, ErrOpcode(word))
		ins = Instruction{}
		return
	}

	digits := word / 100
	for n := range ins.Op.Arity() {
		mode := Mode(digits % 10)
		digits /= 10
		if !mode.Valid() || (n == ins.Op.Target() && mode == MODE_IMMEDIATE) {
			if mode == MODE_IMMEDIATE {
				err = errors.Join(ErrAddress, ErrImmediateWrite)
			} else {
				err = errors.Join(ErrDecode, ErrMode, ErrOpcode(word))
			}
			ins = Instruction{}
			return
		}
		ins.Modes[n] = mode
	}

	return
}

// Width returns the number of cells the instruction occupies.
func (ins Instruction) Width() int64 {
	return int64(1 + ins.Op.Arity())
}

// Word encodes the instruction back into a cell value.
func (ins Instruction) Word() (word int64) {
	scale := int64(100)
	word = int64(ins.Op)
	for n := range ins.Op.Arity() {
		word += int64(ins.Modes[n]) * scale
		scale *= 10
	}

	return
}

// Format renders the instruction with its raw operand values.
func (ins Instruction) Format(args ...int64) string {
	words := []string{ins.Op.String()}
	for n := range min(ins.Op.Arity(), len(args)) {
		var word string
		switch ins.Modes[n] {
		case MODE_IMMEDIATE:
			word = fmt.Sprintf("%d", args[n])
		case MODE_RELATIVE:
			word = fmt.Sprintf("[base%+d]", args[n])
		default:
			word = fmt.Sprintf("[%d]", args[n])
		}
		words = append(words, word)
	}

	return strings.Join(words, " ")
}

// String returns the mnemonic and operand modes of the instruction.
func (ins Instruction) String() string {
	words := []string{ins.Op.String()}
	for n := range ins.Op.Arity() {
		words = append(words, ins.Modes[n].String())
	}

	return strings.Join(words, ".")
}
