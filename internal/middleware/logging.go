// Package middleware wraps roster actions with cross-cutting behavior.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmynk/members/internal/models"
	"github.com/mmynk/members/internal/service"
)

// Roster is the action set being wrapped. It matches ui.Roster.
type Roster interface {
	AddMember(ctx context.Context, name, contact string) (*models.Member, error)
	ListMembers(ctx context.Context) ([]models.Member, error)
	SearchMembers(ctx context.Context, fragment string) ([]models.Member, error)
	DeleteMember(ctx context.Context, id int64) error
}

// LoggingRoster logs every action with its duration and outcome.
// Expected rejections (bad input, duplicates) log at WARN, anything else
// that fails at ERROR.
type LoggingRoster struct {
	next   Roster
	logger *slog.Logger
}

// Logging wraps next. A nil logger uses slog.Default().
func Logging(next Roster, logger *slog.Logger) *LoggingRoster {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingRoster{next: next, logger: logger}
}

// AddMember implements Roster.
func (l *LoggingRoster) AddMember(ctx context.Context, name, contact string) (*models.Member, error) {
	start := time.Now()
	m, err := l.next.AddMember(ctx, name, contact)
	l.log(ctx, "AddMember", start, err)
	return m, err
}

// ListMembers implements Roster.
func (l *LoggingRoster) ListMembers(ctx context.Context) ([]models.Member, error) {
	start := time.Now()
	ms, err := l.next.ListMembers(ctx)
	l.log(ctx, "ListMembers", start, err, "count", len(ms))
	return ms, err
}

// SearchMembers implements Roster.
func (l *LoggingRoster) SearchMembers(ctx context.Context, fragment string) ([]models.Member, error) {
	start := time.Now()
	ms, err := l.next.SearchMembers(ctx, fragment)
	l.log(ctx, "SearchMembers", start, err, "count", len(ms))
	return ms, err
}

// DeleteMember implements Roster.
func (l *LoggingRoster) DeleteMember(ctx context.Context, id int64) error {
	start := time.Now()
	err := l.next.DeleteMember(ctx, id)
	l.log(ctx, "DeleteMember", start, err, "member_id", id)
	return err
}

func (l *LoggingRoster) log(ctx context.Context, action string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs, "action", action, "duration_ms", time.Since(start).Milliseconds())
	switch {
	case err == nil:
		l.logger.InfoContext(ctx, "Action ok", attrs...)
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrDuplicateContact):
		l.logger.WarnContext(ctx, "Action rejected", append(attrs, "error", err)...)
	default:
		l.logger.ErrorContext(ctx, "Action error", append(attrs, "error", err)...)
	}
}
