// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/mcpmarket/marketplace-manager/internal/middleware"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

// ContextHandler adds values from the [context.Context] to the [slog.Record].
// It has to use the same attribute keys as the Gin [middleware.RequestLogger]
// so logs created by the middleware and the context aware logger methods line
// up. Not every use of the logger is within an HTTP request, so missing keys
// are fine.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

func (rh *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return rh.Handler.Enabled(ctx, level)
}

func (rh *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyCorrelationID, id))
	}

	// public routes do not have a principal in the context
	if user, ok := model.GetUserFromContext(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyUser, user.Email))
	}

	return rh.Handler.Handle(ctx, r)
}

func (rh *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(rh.Handler.WithAttrs(attrs))
}

func (rh *ContextHandler) WithGroup(name string) slog.Handler {
	return New(rh.Handler.WithGroup(name))
}
