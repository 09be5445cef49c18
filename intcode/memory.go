package intcode

import (
	"errors"
	"slices"
)

const (
	MEMORY_LIMIT = 1 << 24 // Maximum number of cells a memory may grow to.
)

// Memory is the linear, zero-extended store of a Program.
// Any read or write past the end grows it with zeros, up to MEMORY_LIMIT
// cells; an address at or beyond the limit fails with ErrAddressLimit.
type Memory struct {
	Cells []int64
}

// NewMemory creates a memory holding a private copy of image.
func NewMemory(image []int64) (mem *Memory) {
	mem = &Memory{
		Cells: slices.Clone(image),
	}

	return
}

// Len returns the number of cells materialized so far.
func (mem *Memory) Len() int {
	return len(mem.Cells)
}

// grow extends the memory with zeros through addr.
func (mem *Memory) grow(addr int64) (err error) {
	if addr < 0 {
		err = errors.Join(ErrAddress, ErrAddressNegative)
		return
	}

	if addr >= MEMORY_LIMIT {
		err = errors.Join(ErrAddress, ErrAddressLimit)
		return
	}

	if addr >= int64(len(mem.Cells)) {
		mem.Cells = append(mem.Cells, make([]int64, int(addr)+1-len(mem.Cells))...)
	}

	return
}

// Read returns the cell at addr, growing the memory if needed.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	err = mem.grow(addr)
	if err != nil {
		return
	}

	value = mem.Cells[addr]
	return
}

// Write sets the cell at addr, growing the memory if needed.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	err = mem.grow(addr)
	if err != nil {
		return
	}

	mem.Cells[addr] = value
	return
}

// Snapshot returns a copy of the materialized cells.
func (mem *Memory) Snapshot() []int64 {
	return slices.Clone(mem.Cells)
}
