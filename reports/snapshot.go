package reports

import (
	"errors"

	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/bfvm"
)

// Snapshot is the final state of one run
type Snapshot struct {
	Name     string `json:"name" yaml:"name"`
	Status   string `json:"status" yaml:"status"`
	TapeSize int    `json:"tape_size" yaml:"tape_size"`
	Pointer  int    `json:"pointer" yaml:"pointer"`
	// Tape holds the cells up to the last non-zero one or the pointer, whichever is further
	Tape   []byte `json:"tape" yaml:"tape"`
	Output []byte `json:"output" yaml:"output"`
	Steps  int    `json:"steps" yaml:"steps"`
	// program bytes, and how many of them are instructions
	ProgramSize  int   `json:"program_size" yaml:"program_size"`
	Instructions int   `json:"instructions" yaml:"instructions"`
	Consumed     int   `json:"consumed" yaml:"consumed"`
	Halt         *Halt `json:"halt,omitempty" yaml:"halt,omitempty"`
}

type Halt struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Offset  int    `json:"offset" yaml:"offset"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Step    int    `json:"step" yaml:"step"`
}

const (
	StatusOK     = "ok"
	StatusHalted = "halted"
)

// Report is what gets written to a report file
type Report struct {
	Runs []Snapshot `json:"runs" yaml:"runs"`
}

func Take(m *bfvm.Machine) Snapshot {
	tape := m.Tape()
	used := m.Pointer() + 1
	for i := len(tape) - 1; i >= used; i-- {
		if tape[i] != 0 {
			used = i + 1
			break
		}
	}

	program := m.Program()
	instructions := 0
	for range bfcode.Instructions(program) {
		instructions++
	}

	snapshot := Snapshot{
		Name:         m.Name(),
		Status:       StatusOK,
		TapeSize:     m.TapeSize(),
		Pointer:      m.Pointer(),
		Tape:         tape[:used],
		Output:       m.Output(),
		Steps:        m.Steps(),
		ProgramSize:  len(program),
		Instructions: instructions,
		Consumed:     m.Consumed(),
	}

	if err := m.Err(); err != nil {
		snapshot.Status = StatusHalted
		snapshot.Halt = &Halt{
			Kind:    bfvm.KindName(err.Kind),
			Message: err.Error(),
			Offset:  err.Offset,
			Line:    err.Line,
			Column:  err.Column,
			Step:    err.Step,
		}
	}

	return snapshot
}

// Failed returns a snapshot of a program that could not be run at all
func Failed(name string, err error) Snapshot {
	kind := "Usage"
	if errors.Is(err, bfvm.ErrInvalidTapeSize) {
		kind = "InvalidTapeSize"
	}
	return Snapshot{
		Name:   name,
		Status: StatusHalted,
		Halt: &Halt{
			Kind:    kind,
			Message: err.Error(),
		},
	}
}
