package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

// Outcome is a finished dispatch together with context that never went on
// chain.
type Outcome struct {
	Result domain.Result
	// Detail is free-form context recorded with the activity, such as an
	// appeal's reason.
	Detail string
}

// Notifier receives every terminal dispatch outcome. Busy dispatches are
// not reported.
type Notifier interface {
	Notify(ctx context.Context, o Outcome)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, o Outcome)

func (f NotifierFunc) Notify(ctx context.Context, o Outcome) { f(ctx, o) }

// FanOut notifies each member in order.
type FanOut []Notifier

func (f FanOut) Notify(ctx context.Context, o Outcome) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, o)
		}
	}
}

// LogNotifier writes each notification as a log line. It uses the request
// logger when Logger is nil.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, o Outcome) {
	l := n.Logger
	if l == nil {
		l = slogx.FromContext(ctx)
	}
	res := o.Result
	if res.Notice == nil {
		return
	}

	attrs := []any{
		slog.String("action", string(res.Kind)),
		slog.String("address", res.Account.Hex()),
		slog.String("title", res.Notice.Title),
		slog.String("message", res.Notice.Message),
	}
	if res.Notice.Level == domain.NoticeError {
		l.Warn("notification", attrs...)
		return
	}
	l.Info("notification", attrs...)
}
