package util

import (
	"fmt"
	"io"
	"os"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogPatrol | LogConfig | LogSimulation

// LogOutput receives every line that passes the level and category filters.
var LogOutput io.Writer = os.Stderr

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

func (l LogLevel) ToString() string {
	switch l {
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARN"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	default:
		return "?"
	}
}

type LogCategory int

const (
	LogPatrol LogCategory = 1 << iota
	LogNavigation
	LogAnimation
	LogConfig
	LogSimulation
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	fmt.Fprintf(LogOutput, "[%s] %s\n", lvl.ToString(), txt)
}

func LogPatrolInfo(txt string) {
	log(LogPatrol, LogLevelInfo, txt)
}

func LogPatrolDebug(txt string) {
	log(LogPatrol, LogLevelDebug, txt)
}

func LogPatrolWarning(txt string) {
	log(LogPatrol, LogLevelWarning, txt)
}

func LogNavigationDebug(txt string) {
	log(LogNavigation, LogLevelDebug, txt)
}

func LogNavigationInfo(txt string) {
	log(LogNavigation, LogLevelInfo, txt)
}

func LogAnimationDebug(txt string) {
	log(LogAnimation, LogLevelDebug, txt)
}

func LogConfigInfo(txt string) {
	log(LogConfig, LogLevelInfo, txt)
}

func LogConfigWarning(txt string) {
	log(LogConfig, LogLevelWarning, txt)
}

func LogConfigError(txt string) {
	log(LogConfig, LogLevelError, txt)
}

func LogSimulationInfo(txt string) {
	log(LogSimulation, LogLevelInfo, txt)
}

func LogSimulationError(txt string) {
	log(LogSimulation, LogLevelError, txt)
}
