package commands

import (
	"context"

	"building-management/internal/domain/announcement"
	"building-management/internal/pkg/clock"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/shared"
)

type CreateAnnouncementRequest struct {
	Title       string
	Description string
	User        string
}

type AnnouncementCommands interface {
	Create(ctx context.Context, req CreateAnnouncementRequest) (string, error)
}

type announcementCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAnnouncementCommands(uow shared.UnitOfWork, clk clock.Clock) AnnouncementCommands {
	return &announcementCommandsImpl{uow: uow, clock: clk}
}

func (uc *announcementCommandsImpl) Create(ctx context.Context, req CreateAnnouncementRequest) (string, error) {
	a, err := announcement.NewAnnouncement(req.Title, req.Description, req.User, uc.clock.Now())
	if err != nil {
		return "", badRequest(err)
	}

	id, err := uc.uow.Repositories().Announcements().Create(ctx, a)
	if err != nil {
		return "", mapRepoErr(err, errs.ErrNotFound)
	}
	return id, nil
}
