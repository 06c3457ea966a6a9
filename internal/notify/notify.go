// Package notify defines the notification capability the state containers
// use to surface toasts. Containers receive a Notifier at construction and
// must work when none is supplied, so callers wire NopNotifier (via OrNop)
// when no UI host is present.
package notify

import "go.uber.org/zap"

// Toast types.
const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeWarning = "warning"
	TypeInfo    = "info"
)

// Action is an optional follow-up a toast can offer (e.g. a link target).
type Action struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Toast is the structured notification payload.
type Toast struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Duration int      `json:"duration"` // milliseconds
	Actions  []Action `json:"actions,omitempty"`
}

// Notifier delivers toasts to whatever presentation layer is attached.
type Notifier interface {
	Show(t Toast)
}

// NopNotifier discards every toast.
type NopNotifier struct{}

func (NopNotifier) Show(Toast) {}

// OrNop returns n, or a NopNotifier when n is nil, so containers never have
// to nil-check their notifier.
func OrNop(n Notifier) Notifier {
	if n == nil {
		return NopNotifier{}
	}
	return n
}

// LogNotifier writes toasts to the structured log. It is the default sink
// for the API server, where no toast UI exists.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier on the given logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Show(t Toast) {
	n.logger.Info("Notification",
		zap.String("type", t.Type),
		zap.String("title", t.Title),
		zap.String("message", t.Message),
		zap.Int("duration_ms", t.Duration),
	)
}
