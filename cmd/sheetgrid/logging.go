package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// maxLogSize triggers rotation of an existing log file on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging sends log output to path, rotating to path.1 when over maxLogSize
// An empty path discards log output so the alternate screen stays clean
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	var rotateErr error
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotateErr = os.Rename(path, path+".1")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if rotateErr != nil {
		log.Printf("log rotation failed, appending to %s: %v", path, rotateErr)
	}
	return f
}
