package bfvm

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// EOFPolicy decides what the input instruction does when the input source is exhausted.
type EOFPolicy uint8

const (
	EOFError EOFPolicy = iota
	EOFZero
	EOFKeep
)

func (p EOFPolicy) String() string {
	switch p {
	case EOFError:
		return "error"
	case EOFZero:
		return "zero"
	case EOFKeep:
		return "keep"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(p))
}

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "error", "fail":
		return EOFError, nil
	case "zero", "0":
		return EOFZero, nil
	case "keep", "unchanged", "noop":
		return EOFKeep, nil
	}
	return EOFError, fmt.Errorf("unknown eof policy: %s", str)
}

func (p *EOFPolicy) UnmarshalText(text []byte) (err error) {
	*p, err = ParseEOFPolicy(string(text))
	return
}

func (p EOFPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (m *Machine) readByte() (byte, error) {
	if m.input == nil {
		return 0, io.EOF
	}
	if r, ok := m.input.(io.ByteReader); ok {
		return r.ReadByte()
	}
	var buf [1]byte
	if _, err := io.ReadFull(m.input, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (m *Machine) inputByte(offset int) *HaltError {
	b, err := m.readByte()
	if errors.Is(err, io.EOF) {
		switch m.eofPolicy {
		case EOFZero:
			m.tape[m.pointer] = 0
			return nil
		case EOFKeep:
			return nil
		}
		return m.fail(ErrInputExhausted, offset, nil)
	}
	if err != nil {
		return m.fail(ErrInput, offset, err)
	}
	m.tape[m.pointer] = b
	return nil
}
