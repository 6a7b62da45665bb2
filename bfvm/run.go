package bfvm

import (
	"context"

	"github.com/reusee/bfi/bfcode"
)

// Run executes the pending program until it is exhausted or the machine halts.
// The returned error is the recorded *HaltError, or a usage error when the
// machine is already running or terminated.
func (m *Machine) Run(ctx context.Context) error {
	if m.running {
		return ErrRunning
	}
	if m.terminated {
		return ErrTerminated
	}

	m.running = true
	defer func() {
		m.running = false
		m.terminated = true
	}()

	m.logger.DebugContext(ctx, "run",
		"machine", m.name,
		"tape", len(m.tape),
		"program", len(m.program),
	)

loop:
	for m.ip < len(m.program) {
		select {
		case <-ctx.Done():
			m.err = m.fail(ErrCanceled, m.ip, context.Cause(ctx))
			break loop
		default:
		}

		if m.maxSteps > 0 && m.steps >= m.maxSteps {
			m.err = m.fail(ErrStepLimit, m.ip, nil)
			break
		}

		offset := m.ip
		m.ip++
		m.steps++

		inst, ok := bfcode.Classify(m.program[offset])
		if !ok {
			continue
		}
		if err := m.dispatch(inst, offset); err != nil {
			m.err = err
			break
		}
	}

	if m.err != nil {
		m.logger.DebugContext(ctx, "halt",
			"machine", m.name,
			"error", m.err,
		)
		return m.err
	}

	m.logger.DebugContext(ctx, "done",
		"machine", m.name,
		"steps", m.steps,
		"output", len(m.output),
	)
	return nil
}

func (m *Machine) dispatch(inst bfcode.Instruction, offset int) *HaltError {
	switch inst {
	case bfcode.PointerRight:
		if m.pointer+1 >= len(m.tape) {
			return m.fail(ErrPointerOverrun, offset, nil)
		}
		m.pointer++

	case bfcode.PointerLeft:
		if m.pointer == 0 {
			return m.fail(ErrPointerUnderrun, offset, nil)
		}
		m.pointer--

	case bfcode.Increment:
		m.tape[m.pointer]++

	case bfcode.Decrement:
		m.tape[m.pointer]--

	case bfcode.Output:
		b := m.tape[m.pointer]
		m.output = append(m.output, b)
		if m.mirror != nil {
			if _, err := m.mirror.Write([]byte{b}); err != nil {
				return m.fail(ErrOutput, offset, err)
			}
		}

	case bfcode.Input:
		return m.inputByte(offset)

	case bfcode.LoopStart:
		return m.loopStart(offset)

	case bfcode.LoopEnd:
		return m.loopEnd(offset)
	}

	return nil
}

// loopStart skips the whole body when the current cell is zero,
// otherwise it enters the body.
func (m *Machine) loopStart(offset int) *HaltError {
	end := m.matches[offset]
	if end == unmatched {
		return m.fail(ErrUnmatchedLoopStart, offset, nil)
	}
	if m.tape[m.pointer] == 0 {
		m.ip = end + 1
		return nil
	}
	m.depth++
	return nil
}

// loopEnd repeats the innermost open loop when the current cell is non-zero,
// resuming just after its loop-start. Otherwise the loop is closed.
func (m *Machine) loopEnd(offset int) *HaltError {
	start := m.matches[offset]
	if start == unmatched || m.depth == 0 {
		return m.fail(ErrUnmatchedLoopEnd, offset, nil)
	}
	if m.tape[m.pointer] != 0 {
		m.ip = start + 1
		return nil
	}
	m.depth--
	return nil
}

func (m *Machine) fail(kind error, offset int, cause error) *HaltError {
	line, column := m.position(offset)
	return &HaltError{
		Kind:    kind,
		Cause:   cause,
		Offset:  offset,
		Line:    line,
		Column:  column,
		Step:    m.steps,
		Pointer: m.pointer,
	}
}
