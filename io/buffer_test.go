package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{}
	assert.NoError(buf.Send(1))
	assert.NoError(buf.Send(2))
	assert.NoError(buf.Send(3))
	assert.Equal(3, buf.Len())

	for value := range buf.Receive() {
		assert.Equal(int64(1), value)
		break
	}
	assert.Equal(2, buf.Len())

	var values []int64
	for value := range buf.Receive() {
		values = append(values, value)
	}
	assert.Equal([]int64{2, 3}, values)
	assert.Equal(0, buf.Len())

	buf.Rewind()
	assert.Equal(3, buf.Len())
}

func TestBuffer_Capacity(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{Capacity: 2}
	assert.NoError(buf.Send(1))
	assert.NoError(buf.Send(2))
	assert.ErrorIs(buf.Send(3), ErrChannelFull)

	for range buf.Receive() {
		break
	}
	assert.NoError(buf.Send(3))
	assert.Equal([]int64{1, 2, 3}, buf.Data)
	assert.Equal(2, buf.Len())

	// Read values stay in Data for Rewind, but free capacity.
	for range buf.Receive() {
	}
	assert.NoError(buf.Send(4))
	assert.NoError(buf.Send(5))
	assert.ErrorIs(buf.Send(6), ErrChannelFull)
	assert.Equal([]int64{1, 2, 3, 4, 5}, buf.Data)

	buf.Rewind()
	assert.Equal(5, buf.Len())
	assert.ErrorIs(buf.Send(6), ErrChannelFull)
}
