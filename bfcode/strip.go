package bfcode

import "iter"

// Strip returns the instruction bytes of program, dropping everything else.
func Strip(program []byte) []byte {
	ret := make([]byte, 0, len(program))
	for _, b := range program {
		if _, ok := Classify(b); ok {
			ret = append(ret, b)
		}
	}
	return ret
}

// Instructions iterates the instructions of program with their byte offsets.
func Instructions(program []byte) iter.Seq2[int, Instruction] {
	return func(yield func(int, Instruction) bool) {
		for offset, b := range program {
			inst, ok := Classify(b)
			if !ok {
				continue
			}
			if !yield(offset, inst) {
				return
			}
		}
	}
}
