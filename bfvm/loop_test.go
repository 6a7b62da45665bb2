package bfvm

import (
	"bytes"
	"errors"
	"testing"
)

func TestLoopSkippedOnZero(t *testing.T) {
	m := run(t, 8, "[>+.<-]+")
	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	if len(m.Output()) != 0 {
		t.Fatalf("got %q", m.Output())
	}
	if !bytes.Equal(m.Tape(), []byte{1, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("got %v", m.Tape())
	}
	if m.Pointer() != 0 {
		t.Fatal()
	}
	// the skip is a single step
	if m.Steps() != 2 {
		t.Fatalf("got %d", m.Steps())
	}
}

func TestNestedLoopSkipped(t *testing.T) {
	m := run(t, 8, "[[[]]<<]+")
	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	if m.Cell(0) != 1 {
		t.Fatalf("got %d", m.Cell(0))
	}
}

func TestLoopIterations(t *testing.T) {
	for initial := 1; initial < 20; initial++ {
		program := bytes.Repeat([]byte("+"), initial)
		program = append(program, "[>+.<-]"...)
		m := run(t, 4, string(program))
		if m.Err() != nil {
			t.Fatal(m.Err())
		}
		if len(m.Output()) != initial {
			t.Fatalf("got %d iterations, want %d", len(m.Output()), initial)
		}
		if int(m.Cell(1)) != initial || m.Cell(0) != 0 {
			t.Fatalf("got %v", m.Tape())
		}
	}
}

func TestClearIdiom(t *testing.T) {
	m := run(t, 4, "+++++[+]")
	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	if m.Cell(0) != 0 {
		t.Fatalf("got %d", m.Cell(0))
	}

	m = run(t, 4, "[+]")
	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	if m.Cell(0) != 0 || m.Steps() != 1 {
		t.Fatal()
	}

	m = run(t, 4, "++[-]")
	if m.Err() != nil || m.Cell(0) != 0 {
		t.Fatal()
	}
}

func TestNestedLoops(t *testing.T) {
	// 3 * 4 into cell 2
	m := run(t, 4, "+++[>++++[>+<-]<-]")
	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	if !bytes.Equal(m.Tape(), []byte{0, 0, 12, 0}) {
		t.Fatalf("got %v", m.Tape())
	}
}

func TestHelloWorld(t *testing.T) {
	m := run(t, 16, `
		++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]
		>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.
	`)
	if m.Err() != nil {
		t.Fatal(m.Err())
	}
	if string(m.Output()) != "Hello World!\n" {
		t.Fatalf("got %q", m.Output())
	}
}

func TestUnmatchedLoopEnd(t *testing.T) {
	m := run(t, 4, "+++]+")
	if !errors.Is(m.Err(), ErrUnmatchedLoopEnd) {
		t.Fatalf("got %v", m.Err())
	}
	if m.Cell(0) != 3 {
		t.Fatalf("got %d", m.Cell(0))
	}
	if m.Err().Offset != 3 {
		t.Fatalf("got %d", m.Err().Offset)
	}

	m = run(t, 4, "+[-]].")
	if !errors.Is(m.Err(), ErrUnmatchedLoopEnd) {
		t.Fatalf("got %v", m.Err())
	}
	if m.Err().Offset != 4 {
		t.Fatalf("got %d", m.Err().Offset)
	}
	if len(m.Output()) != 0 {
		t.Fatal()
	}

	// a loop-end before its would-be loop-start
	m = run(t, 4, "][")
	if !errors.Is(m.Err(), ErrUnmatchedLoopEnd) {
		t.Fatalf("got %v", m.Err())
	}
}

func TestUnmatchedLoopStart(t *testing.T) {
	// zero cell
	m := run(t, 4, ".[+")
	if !errors.Is(m.Err(), ErrUnmatchedLoopStart) {
		t.Fatalf("got %v", m.Err())
	}
	if len(m.Output()) != 1 {
		t.Fatal()
	}
	if m.Cell(0) != 0 {
		t.Fatal()
	}

	// non-zero cell
	m = run(t, 4, "+[+")
	if !errors.Is(m.Err(), ErrUnmatchedLoopStart) {
		t.Fatalf("got %v", m.Err())
	}
	if m.Cell(0) != 1 {
		t.Fatalf("got %d", m.Cell(0))
	}

	// the outer loop-start has no partner
	m = run(t, 4, "+[[]")
	if !errors.Is(m.Err(), ErrUnmatchedLoopStart) {
		t.Fatalf("got %v", m.Err())
	}
	if m.Err().Offset != 1 {
		t.Fatalf("got %d", m.Err().Offset)
	}

	m = run(t, 4, "[")
	if !errors.Is(m.Err(), ErrUnmatchedLoopStart) {
		t.Fatalf("got %v", m.Err())
	}
}

func TestInnerLoopPairing(t *testing.T) {
	// inner pair is balanced, so the unpaired outer start only fails when reached
	m := run(t, 4, "[]+[")
	if !errors.Is(m.Err(), ErrUnmatchedLoopStart) {
		t.Fatalf("got %v", m.Err())
	}
	if m.Cell(0) != 1 {
		t.Fatal()
	}
	if m.Err().Offset != 3 {
		t.Fatalf("got %d", m.Err().Offset)
	}
}
