package common

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/joshyorko/mansion/logbuf"
)

// logline is one finished line, stamp included, bound for out.
type logline struct {
	out  io.Writer
	text string
}

var (
	logqueue   = make(chan logline)
	logbarrier = sync.WaitGroup{}

	logMu     sync.RWMutex
	logTarget io.Writer = os.Stderr
	logHeld   *logbuf.LogBuffer
)

// Lines are written by a single goroutine, in the order they were logged.
func logLoop(queue <-chan logline) {
	for line := range queue {
		fmt.Fprintln(line.out, line.text)
		if file, ok := line.out.(*os.File); ok {
			file.Sync()
		}
		logbarrier.Done()
	}
}

func init() {
	go logLoop(logqueue)
}

func emit(out io.Writer, text string) {
	logbarrier.Add(1)
	logqueue <- logline{out: out, text: text}
}

// RedirectLogs sends log lines to out until the returned restore is called.
// Restore waits for lines already sent to out.
func RedirectLogs(out io.Writer) (restore func()) {
	logMu.Lock()
	previous := logTarget
	logTarget = out
	logMu.Unlock()
	return func() {
		WaitLogs()
		logMu.Lock()
		logTarget = previous
		logMu.Unlock()
	}
}

// HoldLogs keeps log lines in memory, at most limit of them, while the
// terminal belongs to someone else. Release writes the kept lines out
// oldest first and returns how many older ones had to be dropped.
func HoldLogs(limit int) (release func() (dropped int)) {
	held := logbuf.NewLogBuffer(limit)
	logMu.Lock()
	logHeld = held
	logMu.Unlock()
	return func() int {
		logMu.Lock()
		if logHeld == held {
			logHeld = nil
		}
		out := logTarget
		logMu.Unlock()
		for _, text := range held.Lines() {
			emit(out, text)
		}
		return held.Dropped()
	}
}

func AcceptableOutput(message string) bool {
	for _, fragment := range LogHides {
		if strings.Contains(message, fragment) {
			return false
		}
	}
	return true
}

func printout(message string) {
	if !AcceptableOutput(message) {
		return
	}
	if TraceFlag() {
		message = time.Now().Format("02.150405.000 ") + message
	}
	logMu.RLock()
	held, out := logHeld, logTarget
	logMu.RUnlock()
	if held != nil {
		held.Add(message)
		return
	}
	emit(out, message)
}

func Uncritical(context string, err error) {
	if err != nil {
		Log("Warning [%s; not critical]: %v", context, err)
	}
}

func Log(format string, details ...interface{}) {
	if !Silent() {
		prefix := ""
		if DebugFlag() {
			prefix = "[N] "
		}
		printout(fmt.Sprintf(prefix+format, details...))
	}
}

func Debug(format string, details ...interface{}) error {
	if DebugFlag() {
		printout(fmt.Sprintf("[D] "+format, details...))
	}
	return nil
}

func Trace(format string, details ...interface{}) error {
	if TraceFlag() {
		printout(fmt.Sprintf("[T] "+format, details...))
	}
	return nil
}

// WaitLogs blocks until every line sent so far has been written.
func WaitLogs() {
	runtime.Gosched()
	logbarrier.Wait()
}
