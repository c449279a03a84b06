package queries

import (
	"context"

	"building-management/internal/pkg/errs"
)

type AnnouncementQueries interface {
	// List returns announcements newest first.
	List(ctx context.Context) ([]*AnnouncementView, error)
}

type AnnouncementReadStore interface {
	FindAllNewestFirst(ctx context.Context) ([]*AnnouncementView, error)
}

type announcementQueriesImpl struct {
	readStore AnnouncementReadStore
}

func NewAnnouncementQueries(readStore AnnouncementReadStore) AnnouncementQueries {
	return &announcementQueriesImpl{readStore: readStore}
}

func (q *announcementQueriesImpl) List(ctx context.Context) ([]*AnnouncementView, error) {
	items, err := q.readStore.FindAllNewestFirst(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nonNil(items), nil
}
