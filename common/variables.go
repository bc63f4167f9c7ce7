package common

import (
	"github.com/google/uuid"
)

type Verbosity uint8

const (
	Undefined Verbosity = 0
	Silently  Verbosity = 1
	Normal    Verbosity = 2
	Debugging Verbosity = 3
	Tracing   Verbosity = 4
)

var (
	LogHides []string
	Verbose  Verbosity = Normal

	// SessionId identifies one walk in debug output.
	SessionId = uuid.NewString()
)

func DefineVerbosity(silent, debug, trace bool) {
	override := Normal
	switch {
	case silent:
		override = Silently
	case trace:
		override = Tracing
	case debug:
		override = Debugging
	}
	Verbose = override
}

func Silent() bool {
	return Verbose == Silently
}

func DebugFlag() bool {
	return Verbose >= Debugging
}

func TraceFlag() bool {
	return Verbose >= Tracing
}
