package intcode

import (
	"fmt"
	"iter"
	"slices"
)

// Line is one decoded entry of a memory listing.
type Line struct {
	Addr         int64   // Address of the first cell.
	*Instruction         // Decoded instruction, nil for data.
	Args         []int64 // Raw operands, or the single data word.
}

// String renders the line as listing text.
func (line Line) String() string {
	if line.Instruction == nil {
		return fmt.Sprintf("%6d: .data %d", line.Addr, line.Args[0])
	}

	return fmt.Sprintf("%6d: %v", line.Addr, line.Instruction.Format(line.Args...))
}

// Width returns the number of cells the line covers.
func (line Line) Width() int64 {
	if line.Instruction == nil {
		return 1
	}

	return line.Instruction.Width()
}

// Listing iterates over cells, decoding instructions where possible.
// Cells that do not decode, or whose operands run past the end, are listed as data.
func Listing(cells []int64) iter.Seq[Line] {
	return func(yield func(line Line) bool) {
		var addr int64
		for addr < int64(len(cells)) {
			line := Line{Addr: addr}
			ins, err := Decode(cells[addr])
			if err == nil && addr+ins.Width() <= int64(len(cells)) {
				line.Instruction = &ins
				line.Args = slices.Clone(cells[addr+1 : addr+ins.Width()])
				addr += ins.Width()
			} else {
				line.Args = []int64{cells[addr]}
				addr++
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Locate returns the listing line covering addr.
func Locate(cells []int64, addr int64) (line Line, ok bool) {
	for line = range Listing(cells) {
		if addr >= line.Addr && addr < line.Addr+line.Width() {
			ok = true
			return
		}
	}

	return Line{}, false
}
