package core

// Logger interface for shading diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}
