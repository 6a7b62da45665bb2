package configs

// Configurable is a value that may be set from config files.
// ConfigExpr returns its path in the config root.
type Configurable interface {
	ConfigExpr() string
}

// Lookup returns the first value of T found at T's own config path
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
