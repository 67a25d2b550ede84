package ports

import "context"

// Mailer is the outbound email collaborator. The service only ever hands it
// a recipient and a reset token; formatting and delivery are its problem.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}
