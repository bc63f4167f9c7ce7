package common

import "fmt"

const (
	Product = `mansion`
	Version = `v1.2.0`
)

// ExitCode is panicked by pretty.Exit and recovered by ExitProtection in
// main, so that pending log lines are flushed before the process exits.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) > 0 {
		Log("%s", it.Message)
	}
}

func (it ExitCode) Error() string {
	return fmt.Sprintf("exit %d: %s", it.Code, it.Message)
}
