package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
)

// ErrParseNumber is returned for a token that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("not a number: %q", string(err))
}
