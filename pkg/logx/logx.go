package logx

// Logger defines an interface for a single logger method.
type Logger interface {
	Printf(s string, args ...interface{})
}

// LoggerFunc is an adapter to use ordinary functions as Logger.
type LoggerFunc func(string, ...interface{})

// Printf calls the wrapped func.
func (f LoggerFunc) Printf(s string, args ...interface{}) { f(s, args...) }

// Nop returns a logger that logs literally nothing.
func Nop() Logger {
	return LoggerFunc(func(string, ...interface{}) {})
}

// Sub returns a logger that prepends the given prefix to every message.
func Sub(l Logger, prefix string) Logger {
	return LoggerFunc(func(s string, args ...interface{}) { l.Printf(prefix+s, args...) })
}
