package bfcode

type Instruction uint8

const (
	Increment Instruction = iota + 1
	Input
	Decrement
	Output
	PointerLeft
	PointerRight
	LoopStart
	LoopEnd
)

var symbols = [...]byte{
	Increment:    '+',
	Input:        ',',
	Decrement:    '-',
	Output:       '.',
	PointerLeft:  '<',
	PointerRight: '>',
	LoopStart:    '[',
	LoopEnd:      ']',
}

var names = [...]string{
	Increment:    "increment",
	Input:        "input",
	Decrement:    "decrement",
	Output:       "output",
	PointerLeft:  "pointer-left",
	PointerRight: "pointer-right",
	LoopStart:    "loop-start",
	LoopEnd:      "loop-end",
}

// table maps every byte value to its instruction, zero for none
var table = func() (ret [256]Instruction) {
	for inst := Increment; inst <= LoopEnd; inst++ {
		ret[symbols[inst]] = inst
	}
	return
}()

// Classify returns the instruction denoted by b.
// The second return value is false for bytes that are not instructions.
func Classify(b byte) (Instruction, bool) {
	inst := table[b]
	return inst, inst != 0
}

func (i Instruction) Valid() bool {
	return i >= Increment && i <= LoopEnd
}

// Symbol returns the source byte of the instruction
func (i Instruction) Symbol() byte {
	if !i.Valid() {
		return 0
	}
	return symbols[i]
}

func (i Instruction) String() string {
	if !i.Valid() {
		return "?"
	}
	return string(symbols[i])
}

func (i Instruction) Name() string {
	if !i.Valid() {
		return "unknown"
	}
	return names[i]
}
