package service

import (
	"context"
	"log/slog"

	"scribe/internal/domain/services"
)

// LogMailer satisfies the Mailer interface without an outbound mail
// dependency. It logs the verification token instead of sending it,
// which is what local development wants anyway.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that writes to the log
func NewLogMailer(logger *slog.Logger) services.Mailer {
	return &LogMailer{logger: logger}
}

// SendVerification logs the verification token for the given address
func (m *LogMailer) SendVerification(_ context.Context, email, token string) error {
	m.logger.Info("verification mail", "email", email, "token", token)
	return nil
}
