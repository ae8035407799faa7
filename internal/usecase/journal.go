package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-tutorial/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tutorial/internal/repository"
)

const defaultJournalTimeout = 2 * time.Second

type activationRepo interface {
	Append(ctx context.Context, event entity.ActivationEvent) error
	DeleteByMount(ctx context.Context, mountID string) error
}

// Journal - records every activation in the repository. Failures are logged
// and never reach the click.
type Journal struct {
	logger  *slog.Logger
	repo    activationRepo
	timeout time.Duration
}

func NewJournal(logger *slog.Logger, repo activationRepo) *Journal {
	return &Journal{
		logger:  logger.With("component", "journal"),
		repo:    repo,
		timeout: defaultJournalTimeout,
	}
}

func (that *Journal) CellActivated(event entity.ActivationEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	if err := that.repo.Append(ctx, event); err != nil {
		that.logger.Error("failed to record activation", "mount_id", event.MountID, "error", err)
	}
}

// MountReleased - drops the trail of a mount that no longer exists.
func (that *Journal) MountReleased(mountID string) {
	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	err := that.repo.DeleteByMount(ctx, mountID)
	if err != nil && !errors.Is(err, repository.ErrActivationsNotFound) {
		that.logger.Error("failed to drop activations", "mount_id", mountID, "error", err)
	}
}
