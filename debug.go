package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	debugEnabled bool
	debugMu      sync.Mutex
	debugFile    *os.File
)

func EnableDebugLogging(enabled bool) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = enabled
}

func debugLogPath() string {
	return filepath.Join(os.TempDir(), "termtris-debug.log")
}

// DebugLogf appends one timestamped line to the debug log. Newlines in the
// message are flattened so every record stays on one line.
func DebugLogf(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !debugEnabled {
		return
	}
	if debugFile == nil {
		file, err := os.OpenFile(debugLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		debugFile = file
	}
	_, _ = fmt.Fprintln(debugFile, formatLogLine(time.Now(), format, args...))
}

func formatLogLine(now time.Time, format string, args ...any) string {
	message := fmt.Sprintf(format, args...)
	message = strings.ReplaceAll(message, "\n", " ")
	return now.Format(time.RFC3339) + " " + message
}
