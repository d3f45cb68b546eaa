package services

import "log/slog"

// EmailService is a console-logged delivery stub. Sends are fire-and-forget;
// delivery failures are never the caller's concern.
type EmailService struct{}

func NewEmailService() *EmailService {
	return &EmailService{}
}

func (s *EmailService) SendPasswordReset(email, token string) {
	slog.Info("email: password reset requested", "to", email, "reset_token", token)
}

func (s *EmailService) SendResetSuccess(email string) {
	slog.Info("email: password reset completed", "to", email)
}
