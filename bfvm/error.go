package bfvm

import (
	"errors"
	"fmt"
)

// halt kinds
var (
	ErrPointerOverrun     = errors.New("data pointer overran tape")
	ErrPointerUnderrun    = errors.New("data pointer underran tape")
	ErrUnmatchedLoopStart = errors.New("could not find closing ]")
	ErrUnmatchedLoopEnd   = errors.New("unmatched ]")
	ErrInputExhausted     = errors.New("input exhausted")
	ErrInput              = errors.New("input failed")
	ErrOutput             = errors.New("output failed")
	ErrStepLimit          = errors.New("step limit exceeded")
	ErrCanceled           = errors.New("canceled")
)

// usage errors
var (
	ErrInvalidTapeSize = errors.New("tape size must be positive")
	ErrTerminated      = errors.New("machine terminated")
	ErrRunning         = errors.New("machine running")
)

var kindNames = map[error]string{
	ErrPointerOverrun:     "PointerOverrun",
	ErrPointerUnderrun:    "PointerUnderrun",
	ErrUnmatchedLoopStart: "UnmatchedLoopStart",
	ErrUnmatchedLoopEnd:   "UnmatchedLoopEnd",
	ErrInputExhausted:     "InputExhausted",
	ErrInput:              "Input",
	ErrOutput:             "Output",
	ErrStepLimit:          "StepLimit",
	ErrCanceled:           "Canceled",
}

// KindName returns the stable name of a halt kind, or "" for other errors.
func KindName(kind error) string {
	return kindNames[kind]
}

// HaltError records why and where a machine stopped.
type HaltError struct {
	Kind  error
	Cause error

	// Offset is the position of the offending byte in the loaded program.
	// Line and Column are 1-based.
	Offset int
	Line   int
	Column int

	Step    int
	Pointer int
}

func (h *HaltError) Error() string {
	msg := fmt.Sprintf("%s at %d:%d (offset %d, step %d, pointer %d)",
		h.Kind, h.Line, h.Column, h.Offset, h.Step, h.Pointer)
	if h.Cause != nil {
		msg += ": " + h.Cause.Error()
	}
	return msg
}

func (h *HaltError) Unwrap() []error {
	if h.Cause != nil {
		return []error{h.Kind, h.Cause}
	}
	return []error{h.Kind}
}
