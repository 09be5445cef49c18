// Package policy builds circuit input functions.
//
// A policy is a Starlark expression evaluated once per program per cycle,
// with `cycle`, `index` and `output` bound, plus any integer-list globals.
// It yields a single int, or an iterable of ints, as the input batch.
//
//	[phases[index], output] if cycle == 0 else [output]
package policy

import (
	"errors"
	"fmt"
	"maps"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/intcode"
)

// Compile parses expr once, and returns an input function evaluating it.
func Compile(expr string, globals map[string][]int64) (inputs intcode.InputFunc, err error) {
	opts := syntax.FileOptions{}
	parsed, err := opts.ParseExpr("policy", expr, 0)
	if err != nil {
		err = errors.Join(ErrPolicySyntax, err)
		return
	}

	pred := starlark.StringDict{}
	for key, values := range globals {
		list := make([]starlark.Value, len(values))
		for n, value := range values {
			list[n] = starlark.MakeInt64(value)
		}
		pred[key] = starlark.NewList(list)
	}
	pred.Freeze()

	inputs = func(cycle int, index int, output int64) (batch []int64, err error) {
		thread := &starlark.Thread{
			Name: "policy",
			Print: func(_ *starlark.Thread, msg string) {
				logrus.WithFields(logrus.Fields{"cycle": cycle, "index": index}).Debug(msg)
			},
		}

		env := maps.Clone(pred)
		env["cycle"] = starlark.MakeInt(cycle)
		env["index"] = starlark.MakeInt(index)
		env["output"] = starlark.MakeInt64(output)

		st_rc, err := starlark.EvalExprOptions(&opts, thread, parsed, env)
		if err != nil {
			return
		}

		return toBatch(st_rc)
	}

	return
}

// toBatch converts a policy result to an input batch.
func toBatch(value starlark.Value) (batch []int64, err error) {
	if st_int, ok := value.(starlark.Int); ok {
		var one int64
		one, err = toInt64(st_int)
		if err != nil {
			return
		}
		batch = []int64{one}
		return
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = errors.Join(ErrPolicyResult, fmt.Errorf("%s", value.Type()))
		return
	}

	it := iterable.Iterate()
	defer it.Done()

	batch = []int64{}
	var item starlark.Value
	for it.Next(&item) {
		st_int, ok := item.(starlark.Int)
		if !ok {
			err = errors.Join(ErrPolicyResult, fmt.Errorf("%s", item.Type()))
			return nil, err
		}
		var one int64
		one, err = toInt64(st_int)
		if err != nil {
			return nil, err
		}
		batch = append(batch, one)
	}

	return
}

func toInt64(st_int starlark.Int) (value int64, err error) {
	value, ok := st_int.Int64()
	if !ok {
		err = errors.Join(ErrPolicyResult, intcode.ErrOverflow)
	}

	return
}

// Amplifier is the phase setting policy: the first cycle feeds each program
// its phase followed by the signal, later cycles feed the signal alone.
func Amplifier(phases []int64) intcode.InputFunc {
	return func(cycle int, index int, output int64) (batch []int64, err error) {
		if cycle > 0 {
			batch = []int64{output}
			return
		}

		if index >= len(phases) {
			err = ErrPhaseMissing
			return
		}

		batch = []int64{phases[index], output}
		return
	}
}
