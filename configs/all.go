package configs

import (
	"fmt"
	"iter"
)

// All yields the values at path from every config file, earlier files first.
// Iteration stops after the first error.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err == nil {
				if err = value.Decode(&v); err != nil {
					err = fmt.Errorf("decode %s: %w", path, err)
				}
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
