package bfvm

import (
	"io"
	"log/slog"
)

type Option func(*Machine)

// WithInput sets the source of the input instruction.
// Without it every input instruction sees an exhausted source.
func WithInput(r io.Reader) Option {
	return func(m *Machine) {
		m.input = r
	}
}

func WithEOFPolicy(policy EOFPolicy) Option {
	return func(m *Machine) {
		m.eofPolicy = policy
	}
}

// WithOutput mirrors every output byte to w as it is produced.
// The output buffer is filled either way.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		m.mirror = w
	}
}

// WithMaxSteps bounds the number of dispatched bytes, zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(m *Machine) {
		m.maxSteps = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithName(name string) Option {
	return func(m *Machine) {
		m.name = name
	}
}
