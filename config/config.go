// Package config loads strategy selections from YAML documents, with
// optional environment-variable overrides.
//
// A selection file names one strategy and, optionally, its parameters:
//
//	strategy: constant
//	params:
//	  value: 0.5
//
// The params block is kept as a raw YAML node so each consumer package can
// decode it into its own parameter struct (see trim.FromSelection,
// impute.FromSelection, outlier.FromSelection) — the file format stays the
// same no matter which strategy set a call site uses.
package config

import (
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrMissingStrategy indicates a selection document without a strategy name.
var ErrMissingStrategy = errors.New("config: selection is missing a strategy name")

// Selection names a strategy and carries its raw, not-yet-decoded
// parameters.
type Selection struct {
	// Strategy is the tag or name passed on to resolution.
	Strategy string `yaml:"strategy"`

	// Params is the raw parameter block; decode it with DecodeParams.
	Params yaml.Node `yaml:"params"`
}

// Load reads one selection document from r.
func Load(r io.Reader) (Selection, error) {
	var sel Selection
	if err := yaml.NewDecoder(r).Decode(&sel); err != nil {
		return Selection{}, errors.Wrap(err, "config: decode selection")
	}
	if sel.Strategy == "" {
		return Selection{}, ErrMissingStrategy
	}

	return sel, nil
}

// LoadFile reads one selection document from the file at path.
func LoadFile(path string) (Selection, error) {
	f, err := os.Open(path)
	if err != nil {
		return Selection{}, errors.Wrap(err, "config: open selection file")
	}
	defer f.Close()

	sel, err := Load(f)
	return sel, errors.Wrapf(err, "config: load %s", path)
}

// DecodeParams unmarshals the params block into a per-strategy parameter
// struct. An absent block leaves out untouched and returns nil.
func (s Selection) DecodeParams(out any) error {
	if s.Params.IsZero() {
		return nil
	}
	return errors.Wrapf(s.Params.Decode(out), "config: decode %s params", s.Strategy)
}

// envSelection mirrors the supported override variables.
type envSelection struct {
	Strategy string `envconfig:"STRATEGY"`
}

// EnvOverride replaces sel.Strategy with <PREFIX>_STRATEGY when that
// variable is set. The params block is cleared with it: parameters written
// for the overridden strategy rarely fit the replacement, and resolution
// reports missing ones precisely.
func EnvOverride(prefix string, sel *Selection) error {
	var env envSelection
	if err := envconfig.Process(prefix, &env); err != nil {
		return errors.Wrap(err, "config: process environment")
	}
	if env.Strategy != "" {
		sel.Strategy = env.Strategy
		sel.Params = yaml.Node{}
	}

	return nil
}
