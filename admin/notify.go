package admin

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ToastTTL is how long a notification stays visible in the session view.
const ToastTTL = 3 * time.Second

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
)

// Toast is a time-limited notification shown to the operator.
type Toast struct {
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
	At      time.Time  `json:"at"`
}

// Visible reports whether the toast is still within its display window at now.
func (t Toast) Visible(now time.Time, ttl time.Duration) bool {
	return now.Sub(t.At) < ttl
}

// Notifier delivers toasts to wherever the operator is looking.
type Notifier interface {
	Notify(Toast)
}

type NotifierFunc func(Toast)

func (f NotifierFunc) Notify(t Toast) {
	f(t)
}

// LogNotifier writes toasts to the structured log. Error toasts are logged
// at warn level, everything else at info.
type LogNotifier struct {
	// Logger defaults to the global logger.
	Logger *zerolog.Logger
}

func (n LogNotifier) Notify(t Toast) {
	logger := &log.Logger
	if n.Logger != nil {
		logger = n.Logger
	}
	event := logger.Info()
	if t.Level == ToastError {
		event = logger.Warn()
	}
	event.Str("toast_level", string(t.Level)).Msg(t.Message)
}

// Confirmer asks the operator a blocking yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// declineAll is the confirmer used when none is configured, so destructive
// operations never run unattended.
type declineAll struct{}

func (declineAll) Confirm(context.Context, string) bool {
	return false
}
