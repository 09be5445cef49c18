// Package intcode implements the Intcode virtual machine and the circuits
// that chain several machines together.
//
// A Program owns a growable memory of int64 cells, an instruction pointer (Ip),
// a relative base (Base), a FIFO input queue, and a halted flag. Instructions
// are decoded from a single cell: the two low decimal digits select the
// opcode, and the hundreds, thousands, and ten-thousands digits select the
// addressing mode of the first, second, and third operand.
//
// Execution is cooperative. RunForOutput returns after every output so the
// host can inspect or patch state, push more input, and resume. A Circuit
// drives a row of Programs in round-robin order, feeding each output into the
// next program's input, either once (pipeline) or until the last program
// halts (feedback).
package intcode
