package repository

import (
	"context"

	"building-management/internal/domain/announcement"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
)

type AnnouncementRepository struct {
	coll docstore.Collection
}

func NewAnnouncementRepository(coll docstore.Collection) *AnnouncementRepository {
	return &AnnouncementRepository{coll: coll}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *announcement.Announcement) (string, error) {
	id, err := r.coll.InsertOne(ctx, docstore.AnnouncementDoc{
		Title:       a.Title(),
		Description: a.Description(),
		User:        a.Author(),
		CreatedAt:   a.CreatedAt(),
	})
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert announcement", err)
	}
	return id, nil
}
