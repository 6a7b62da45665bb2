package configs

// First returns the first value at path, or the zero value if not configured.
// Malformed config panics.
func First[T any](loader Loader, path string) T {
	for value, err := range All[T](loader, path) {
		if err != nil {
			panic(err)
		}
		return value
	}
	var zero T
	return zero
}
