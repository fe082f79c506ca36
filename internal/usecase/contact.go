package usecase

import (
	"context"
	"log/slog"

	"github.com/Konete326/elitedev/internal/domain"
)

// Notifier forwards a stored contact message somewhere out of band.
type Notifier interface {
	Enabled() bool
	Notify(ctx context.Context, msg *domain.ContactMessage) error
}

type ContactUsecase struct {
	repo     domain.ContactRepository
	notifier Notifier
	logger   *slog.Logger
}

func NewContactUsecase(repo domain.ContactRepository, notifier Notifier, logger *slog.Logger) *ContactUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactUsecase{repo: repo, notifier: notifier, logger: logger}
}

// Submit stores the message. Notification failures are logged and swallowed;
// the submission already succeeded once it is persisted.
func (uc *ContactUsecase) Submit(ctx context.Context, name, email, subject, message string) error {
	msg := domain.NewContactMessage(name, email, subject, message)
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return err
	}

	if uc.notifier != nil && uc.notifier.Enabled() {
		if err := uc.notifier.Notify(ctx, msg); err != nil {
			uc.logger.Warn("contact notification failed", "error", err)
		}
	}
	return nil
}
