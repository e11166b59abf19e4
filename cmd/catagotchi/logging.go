package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "catagotchi.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/catagotchi.log when debug is set
// and discards it otherwise; the terminal is in raw mode so stdout/stderr are off limits
// The returned file must be closed by the caller
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}

	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(logDir, fmt.Sprintf("catagotchi-%s.log", stamp))
	_ = os.Rename(logPath, rotated)
}
