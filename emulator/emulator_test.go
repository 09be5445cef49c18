package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
)

// Compares its input against 8: 999 below, 1000 equal, 1001 above.
var compare8 = []int64{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
	1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
	999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{99})

	assert.False(emu.Verbose)
	assert.NotNil(emu.Program)
	assert.NotNil(emu.Input)
	assert.NotNil(emu.Output)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulator_Buffer(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		input  int64
		output int64
	}){
		{"below", 7, 999},
		{"equal", 8, 1000},
		{"above", 9, 1001},
	}

	for _, entry := range table {
		emu := NewEmulator(compare8)
		assert.NoError(emu.Input.Send(entry.input), entry.name)
		assert.NoError(emu.Run(), entry.name)
		assert.Equal([]int64{entry.output}, emu.Output.(*io.Buffer).Data, entry.name)
		assert.True(emu.Halted, entry.name)
	}
}

func TestEmulator_Tape(t *testing.T) {
	assert := assert.New(t)

	// Doubles each input until a zero arrives.
	image := []int64{3, 15, 1006, 15, 14, 1002, 15, 2, 15, 4, 15, 1105, 1, 0, 99, 0}

	output := &bytes.Buffer{}
	emu := NewEmulator(image, 1)
	emu.Input = &io.Tape{Input: strings.NewReader("2\n30\n0\n")}
	emu.Output = &io.Tape{Output: output}

	assert.NoError(emu.Run())
	assert.Equal("2\n4\n60\n", output.String())
	assert.Empty(emu.Preset)
}

func TestEmulator_Ascii(t *testing.T) {
	assert := assert.New(t)

	// Echoes one byte, then a wide value.
	image := []int64{3, 9, 4, 9, 104, 1000, 99, 0, 0, 0}

	output := &bytes.Buffer{}
	emu := NewEmulator(image)
	emu.Input = &io.Tape{Input: strings.NewReader("A"), Ascii: true}
	emu.Output = &io.Tape{Output: output, Ascii: true}

	assert.NoError(emu.Run())
	assert.Equal("A1000\n", output.String())
}

func TestEmulator_InputExhausted(t *testing.T) {
	assert := assert.New(t)

	image := []int64{3, 0, 3, 0, 99}
	emu := NewEmulator(image, 5)

	var done bool
	var err error
	for !done && err == nil {
		done, err = emu.Tick()
	}
	assert.False(done)
	assert.ErrorIs(err, intcode.ErrInputExhausted)

	var er *ErrRuntime
	if assert.ErrorAs(err, &er) {
		assert.Equal(int64(2), er.Ip)
		assert.Equal(1, er.Ticks)
	}

	// The program resumes once input arrives.
	assert.NoError(emu.Input.Send(6))
	assert.NoError(emu.Run())
	assert.Equal(int64(6), emu.Memory.Cells[0])
}

func TestEmulator_OutputFull(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{104, 1, 104, 2, 99})
	emu.Output = &io.Buffer{Capacity: 1}

	err := emu.Run()
	assert.ErrorIs(err, io.ErrChannelFull)
}

func TestEmulator_Reset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator([]int64{3, 0, 4, 0, 99})
	assert.NoError(emu.Input.Send(42))
	assert.NoError(emu.Run())

	emu.Reset()
	assert.Equal(int64(3), emu.Memory.Cells[0])
	assert.False(emu.Halted)

	assert.NoError(emu.Run())
	assert.Equal([]int64{42, 42}, emu.Output.(*io.Buffer).Data)
}

func TestEmulator_ResetPreset(t *testing.T) {
	assert := assert.New(t)

	preset := []int64{42, 7}
	emu := NewEmulator([]int64{3, 0, 4, 0, 99}, preset...)
	preset[0] = 0

	assert.NoError(emu.Run())
	assert.Equal([]int64{7}, emu.Preset)

	emu.Reset()
	assert.Equal([]int64{42, 7}, emu.Preset)

	assert.NoError(emu.Run())
	assert.Equal([]int64{42, 42}, emu.Output.(*io.Buffer).Data)
}

func TestEmulator_Verbose(t *testing.T) {
	assert := assert.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	emu := NewEmulator([]int64{1101, 2, 3, 5, 99})
	emu.Log = logger
	assert.NoError(emu.Run())
	assert.Empty(hook.AllEntries())

	emu.Reset()
	emu.Verbose = true
	assert.NoError(emu.Run())
	if assert.Len(hook.AllEntries(), 2) {
		entry := hook.AllEntries()[0]
		assert.Equal("add 2 3 [5]", entry.Message)
		assert.Equal(int64(0), entry.Data["ip"])
	}
}
