// Package mail holds the outbound email collaborator.
package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/core/ports"
)

// LogMailer records what would have been sent instead of delivering it.
// Deployments wire a real provider behind ports.Mailer; locally the token in
// the log is enough to exercise the reset flow.
type LogMailer struct {
	from string
}

var _ ports.Mailer = (*LogMailer)(nil)

func NewLogMailer(from string) *LogMailer {
	return &LogMailer{from: from}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	zap.L().Info("password reset email",
		zap.String("from", m.from),
		zap.String("to", to),
		zap.String("token", token),
	)
	return nil
}
