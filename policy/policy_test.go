package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
)

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	globals := map[string][]int64{
		"phases": {9, 8, 7, 6, 5},
	}

	table := [](struct {
		name   string
		expr   string
		cycle  int
		index  int
		output int64
		batch  []int64
	}){
		{"amplifier_first", "[phases[index], output] if cycle == 0 else [output]", 0, 2, 17, []int64{7, 17}},
		{"amplifier_later", "[phases[index], output] if cycle == 0 else [output]", 3, 2, 17, []int64{17}},
		{"int", "output * 2", 0, 0, 21, []int64{42}},
		{"tuple", "(index, cycle)", 4, 1, 0, []int64{1, 4}},
		{"range", "range(index)", 0, 3, 0, []int64{0, 1, 2}},
		{"empty", "[]", 0, 0, 0, []int64{}},
		{"wide", "output + 1", 0, 0, 1125899906842623, []int64{1125899906842624}},
	}

	for _, entry := range table {
		inputs, err := Compile(entry.expr, globals)
		if !assert.NoError(err, entry.name) {
			continue
		}
		batch, err := inputs(entry.cycle, entry.index, entry.output)
		assert.NoError(err, entry.name)
		assert.Equal(entry.batch, batch, entry.name)
	}
}

func TestCompile_Syntax(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile("[output,", nil)
	assert.ErrorIs(err, ErrPolicySyntax)
}

func TestCompile_Result(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		expr string
	}){
		{"string", `"five"`},
		{"none", "None"},
		{"list_of_strings", `["a"]`},
		{"huge", "1 << 70"},
		{"huge_item", "[1 << 70]"},
	}

	for _, entry := range table {
		inputs, err := Compile(entry.expr, nil)
		if !assert.NoError(err, entry.name) {
			continue
		}
		_, err = inputs(0, 0, 0)
		assert.ErrorIs(err, ErrPolicyResult, entry.name)
	}
}

func TestCompile_Runtime(t *testing.T) {
	assert := assert.New(t)

	inputs, err := Compile("[phases[index]]", map[string][]int64{"phases": {1}})
	assert.NoError(err)

	_, err = inputs(0, 5, 0)
	assert.Error(err)

	// Globals are frozen.
	inputs, err = Compile("phases.append(output)", map[string][]int64{"phases": {1}})
	assert.NoError(err)
	_, err = inputs(0, 0, 0)
	assert.Error(err)
}

func TestCompile_Circuit(t *testing.T) {
	assert := assert.New(t)

	image := []int64{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4,
		27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5}

	inputs, err := Compile("[phases[index], output] if cycle == 0 else [output]",
		map[string][]int64{"phases": {9, 8, 7, 6, 5}})
	assert.NoError(err)

	circuit := intcode.NewCircuit(5, image, inputs, true)
	output, err := circuit.Execute()
	assert.NoError(err)
	assert.Equal(int64(139629729), output)
}

func TestAmplifier(t *testing.T) {
	assert := assert.New(t)

	inputs := Amplifier([]int64{4, 3, 2, 1, 0})

	batch, err := inputs(0, 0, 0)
	assert.NoError(err)
	assert.Equal([]int64{4, 0}, batch)

	batch, err = inputs(2, 4, 99)
	assert.NoError(err)
	assert.Equal([]int64{99}, batch)

	_, err = inputs(0, 5, 0)
	assert.ErrorIs(err, ErrPhaseMissing)

	image := []int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	output, err := intcode.NewCircuit(5, image, inputs, false).Execute()
	assert.NoError(err)
	assert.Equal(int64(43210), output)
}
