package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
)

const defaultLogFile = "runcmd.log"

var (
	mu      sync.Mutex
	logPath = defaultLogFile
)

// Configure sets the log file path. An empty path keeps the default.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if path != "" {
		logPath = path
	}
}

// Error writes an error with its context to the shared log file. The UI
// reduces errors to one-line status messages; the full cause lands here.
func Error(context string, err error) {
	if err == nil {
		return
	}
	write(fmt.Sprintf("error: %s: %v", context, err))
}

// Infof writes a formatted informational entry to the shared log file.
func Infof(format string, args ...any) {
	write(fmt.Sprintf(format, args...))
}

func write(line string) {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	log.New(f, "", log.LstdFlags).Println(line)
}
