package bfvm

import (
	"bytes"

	"github.com/reusee/bfi/bfcode"
)

// Load appends program bytes to the pending program.
// Brackets are paired here, each loop-end with the nearest unpaired loop-start before it.
func (m *Machine) Load(program []byte) error {
	if m.running {
		return ErrRunning
	}
	if m.terminated {
		return ErrTerminated
	}

	base := len(m.program)
	m.program = append(m.program, program...)
	m.matches = append(m.matches, make([]int, len(program))...)

	for i, b := range program {
		offset := base + i
		m.matches[offset] = unmatched
		inst, ok := bfcode.Classify(b)
		if !ok {
			continue
		}
		switch inst {
		case bfcode.LoopStart:
			m.opens = append(m.opens, offset)
		case bfcode.LoopEnd:
			n := len(m.opens)
			if n == 0 {
				continue
			}
			open := m.opens[n-1]
			m.opens = m.opens[:n-1]
			m.matches[open] = offset
			m.matches[offset] = open
		}
	}

	return nil
}

// position returns the 1-based line and column of offset
func (m *Machine) position(offset int) (line, column int) {
	if offset > len(m.program) {
		offset = len(m.program)
	}
	head := m.program[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	column = offset - (bytes.LastIndexByte(head, '\n') + 1) + 1
	return
}
