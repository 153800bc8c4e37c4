package core

// Logger receives render progress messages. Library packages report through
// it and never pick a logging backend themselves.
type Logger interface {
	Printf(format string, args ...interface{})
}
