package bfcode

import (
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	expected := map[byte]Instruction{
		43: Increment,
		44: Input,
		45: Decrement,
		46: Output,
		60: PointerLeft,
		62: PointerRight,
		91: LoopStart,
		93: LoopEnd,
	}
	for i := range 256 {
		b := byte(i)
		inst, ok := Classify(b)
		want, isInst := expected[b]
		if ok != isInst {
			t.Fatalf("byte %d: got ok=%v", b, ok)
		}
		if inst != want {
			t.Fatalf("byte %d: got %v, want %v", b, inst, want)
		}
		if ok && inst.Symbol() != b {
			t.Fatalf("byte %d: symbol %q", b, inst.Symbol())
		}
	}
}

func TestInstructionString(t *testing.T) {
	if s := LoopStart.String(); s != "[" {
		t.Fatalf("got %q", s)
	}
	if s := PointerRight.Name(); s != "pointer-right" {
		t.Fatalf("got %q", s)
	}
	if s := Instruction(0).String(); s != "?" {
		t.Fatalf("got %q", s)
	}
	if s := Instruction(42).Name(); s != "unknown" {
		t.Fatalf("got %q", s)
	}
}

func TestStrip(t *testing.T) {
	got := Strip([]byte("a+b[ -]\n.# comment >"))
	if string(got) != "+[-].>" {
		t.Fatalf("got %q", got)
	}
}

func TestInstructions(t *testing.T) {
	var parts []string
	for offset, inst := range Instructions([]byte("x+ ]")) {
		parts = append(parts, fmt.Sprintf("%d:%s", offset, inst))
	}
	if str := fmt.Sprintf("%v", parts); str != "[1:+ 3:]]" {
		t.Fatalf("got %s", str)
	}

	n := 0
	for range Instructions([]byte("+++")) {
		n++
		break
	}
	if n != 1 {
		t.Fatal()
	}
}
