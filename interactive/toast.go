package interactive

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastType defines the type of toast notification
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastWarning
	ToastError
)

const toastDuration = 3 * time.Second

// Toast is the notice shown under the room panel
type Toast struct {
	ID       int64
	Type     ToastType
	Message  string
	Duration time.Duration
}

// ToastMsg is sent to trigger a new toast
type ToastMsg struct {
	Type     ToastType
	Message  string
	Duration time.Duration
}

// ToastTimeoutMsg is sent when a toast expires
type ToastTimeoutMsg struct {
	ID int64
}

func ShowToast(msg string, t ToastType) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Type:     t,
			Message:  msg,
			Duration: toastDuration,
		}
	}
}

func ShowErrorToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastError)
}

func ShowInfoToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastInfo)
}

func ShowWarningToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastWarning)
}

func expireToast(id int64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastTimeoutMsg{ID: id}
	})
}
