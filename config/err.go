package config

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrConfigKey   = errors.New(f("unknown configuration key"))
	ErrConfigImage = errors.New(f("no program image"))
)
