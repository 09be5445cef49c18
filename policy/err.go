package policy

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrPolicySyntax = errors.New(f("policy syntax"))
	ErrPolicyResult = errors.New(f("policy result is not an int or a list of ints"))
	ErrPhaseMissing = errors.New(f("no phase for program"))
)
