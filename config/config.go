// Package config handles TOML circuit descriptions.
//
//	image = "day07.txt"
//	feedback = true
//	phases = [9, 8, 7, 6, 5]
//	policy = "[phases[index], output] if cycle == 0 else [output]"
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/policy"
)

// Config is a circuit description.
type Config struct {
	Image    string             `toml:"image"`    // Program image path, relative to the file.
	Count    int                `toml:"count"`    // Program count, defaults to the phase count.
	Feedback bool               `toml:"feedback"` // Feedback topology.
	Phases   []int64            `toml:"phases"`
	Policy   string             `toml:"policy"`  // Starlark input policy, Amplifier if empty.
	Globals  map[string][]int64 `toml:"globals"` // Extra lists bound for the policy.
	Verbose  bool               `toml:"verbose"`

	// Dir is the directory containing the file (set at load time).
	Dir string `toml:"-"`
	// Cells is the loaded program image.
	Cells []int64 `toml:"-"`
}

// Load parses a circuit description, and reads its program image.
func Load(path string) (*Config, error) {
	var conf Config
	meta, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: %w", path, errors.Join(ErrConfigKey, fmt.Errorf("%v", undecoded)))
	}

	conf.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	if conf.Image == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrConfigImage)
	}

	image := conf.ImagePath()
	inf, err := os.Open(image)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", image, err)
	}
	defer inf.Close()

	conf.Cells, err = io.ReadImage(inf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", image, err)
	}

	// Defaults
	if conf.Count == 0 {
		conf.Count = len(conf.Phases)
	}

	return &conf, nil
}

// ImagePath returns the absolute path of the program image.
func (conf *Config) ImagePath() string {
	if filepath.IsAbs(conf.Image) {
		return conf.Image
	}

	return filepath.Join(conf.Dir, conf.Image)
}

// Inputs returns the input function of the circuit.
func (conf *Config) Inputs() (intcode.InputFunc, error) {
	if conf.Policy == "" {
		return policy.Amplifier(conf.Phases), nil
	}

	globals := maps.Clone(conf.Globals)
	if globals == nil {
		globals = map[string][]int64{}
	}
	globals["phases"] = conf.Phases

	return policy.Compile(conf.Policy, globals)
}

// Circuit builds the described circuit.
func (conf *Config) Circuit() (circuit *intcode.Circuit, err error) {
	inputs, err := conf.Inputs()
	if err != nil {
		return
	}

	circuit = intcode.NewCircuit(conf.Count, conf.Cells, inputs, conf.Feedback)
	circuit.Verbose = conf.Verbose

	return
}
