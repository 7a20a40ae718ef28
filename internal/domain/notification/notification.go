package notification

import "context"

type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Sink receives operational notifications emitted by the services, such as
// payroll batch completions and leave decisions. Delivery is best effort;
// services never fail an operation because a notification could not be sent.
type Sink interface {
	Notify(ctx context.Context, kind Kind, message string)
}

// NoopSink discards every notification. Useful in tests.
type NoopSink struct{}

func (NoopSink) Notify(ctx context.Context, kind Kind, message string) {}
