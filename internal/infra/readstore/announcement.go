package readstore

import (
	"context"

	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type AnnouncementReadStore struct {
	announcements docstore.Collection
}

func NewAnnouncementReadStore(announcements docstore.Collection) *AnnouncementReadStore {
	return &AnnouncementReadStore{announcements: announcements}
}

func (r *AnnouncementReadStore) FindAllNewestFirst(ctx context.Context) ([]*queries.AnnouncementView, error) {
	var docs []docstore.AnnouncementDoc
	opts := docstore.FindOptions{Sort: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}
	if err := r.announcements.FindMany(ctx, bson.M{}, &docs, opts); err != nil {
		return nil, infra.WrapRepoErr("failed to list announcements", err)
	}
	views, err := toViews[queries.AnnouncementView](docs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map announcements", err, infra.KindDBFailure)
	}
	return views, nil
}
