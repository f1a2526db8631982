package util

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogMask | LogRegion | LogExport | LogIO | LogSystem

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogMask LogCategory = 1 << iota
	LogRegion
	LogExport
	LogIO
	LogSystem
)

var (
	logMutex  sync.Mutex
	logOutput io.Writer = os.Stderr
)

// SetLogOutput replaces the log sink. Passing nil discards all output.
func SetLogOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	logMutex.Lock()
	fmt.Fprintln(logOutput, txt)
	logMutex.Unlock()
}

func LogMaskDebug(txt string) {
	log(LogMask, LogLevelDebug, txt)
}

func LogMaskInfo(txt string) {
	log(LogMask, LogLevelInfo, txt)
}

func LogRegionDebug(txt string) {
	log(LogRegion, LogLevelDebug, txt)
}

func LogRegionInfo(txt string) {
	log(LogRegion, LogLevelInfo, txt)
}

func LogRegionError(txt string) {
	log(LogRegion, LogLevelError, txt)
}

func LogExportInfo(txt string) {
	log(LogExport, LogLevelInfo, txt)
}

func LogExportDebug(txt string) {
	log(LogExport, LogLevelDebug, txt)
}

func LogExportWarning(txt string) {
	log(LogExport, LogLevelWarning, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}
