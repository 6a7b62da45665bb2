package bfvm

import (
	"io"
	"log/slog"
	"slices"
)

const unmatched = -1

type Machine struct {
	name string

	tape    []byte
	pointer int

	// program holds every loaded byte. Bytes before ip have been consumed,
	// bytes from ip on are pending.
	program []byte
	ip      int
	// matches maps the offset of a bracket to the offset of its partner.
	// Entries of other bytes and of unpaired brackets are unmatched.
	matches []int
	// loop-starts seen by Load and not yet paired
	opens []int
	// loop-starts executed and not yet closed
	depth int

	output []byte
	steps  int

	running    bool
	terminated bool
	err        *HaltError

	input     io.Reader
	eofPolicy EOFPolicy
	mirror    io.Writer
	maxSteps  int
	logger    *slog.Logger
}

// New creates a machine with a zero-filled tape of tapeSize cells.
func New(tapeSize int, options ...Option) (*Machine, error) {
	if tapeSize <= 0 {
		return nil, ErrInvalidTapeSize
	}
	m := &Machine{
		tape:   make([]byte, tapeSize),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(m)
	}
	return m, nil
}

func (m *Machine) Name() string {
	return m.name
}

func (m *Machine) TapeSize() int {
	return len(m.tape)
}

// Tape returns a copy of the tape cells.
func (m *Machine) Tape() []byte {
	return slices.Clone(m.tape)
}

func (m *Machine) Cell(i int) byte {
	return m.tape[i]
}

func (m *Machine) Pointer() int {
	return m.pointer
}

// Output returns a copy of the output buffer.
func (m *Machine) Output() []byte {
	return slices.Clone(m.output)
}

// Program returns a copy of all loaded bytes.
func (m *Machine) Program() []byte {
	return slices.Clone(m.program)
}

// Consumed returns the number of program bytes before the instruction pointer.
func (m *Machine) Consumed() int {
	return m.ip
}

func (m *Machine) Steps() int {
	return m.steps
}

// Err returns the halt error, nil if the machine has not halted on an error.
func (m *Machine) Err() *HaltError {
	return m.err
}

func (m *Machine) Running() bool {
	return m.running
}

func (m *Machine) Terminated() bool {
	return m.terminated
}
