package config

import "github.com/brettbedarf/ramshell/internal/util"

// CLI verbosity values; higher is chattier.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// verboseLevels maps ErrorVerbose..TraceVerbose onto util log levels.
var verboseLevels = [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}

// VerboseToLogLevel clamps v to 1..5 and returns the matching log level.
func VerboseToLogLevel(v int) util.LogLevel {
	if v < ErrorVerbose {
		v = ErrorVerbose
	}
	if v > TraceVerbose {
		v = TraceVerbose
	}
	return verboseLevels[v-1]
}
