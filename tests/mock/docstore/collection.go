//go:build unit || e2e

package docstoremock

import (
	"context"
	"reflect"

	"building-management/internal/infra/docstore"

	"github.com/stretchr/testify/mock"
)

// Collection is a testify mock of docstore.Collection. Decoded results are
// supplied through the Return values and copied into the caller's out value.
type Collection struct {
	mock.Mock
}

var _ docstore.Collection = (*Collection)(nil)

func (m *Collection) FindOne(ctx context.Context, filter any, out any) error {
	args := m.Called(ctx, filter, out)
	fill(out, args.Get(0))
	return args.Error(1)
}

func (m *Collection) FindMany(ctx context.Context, filter any, out any, opts docstore.FindOptions) error {
	args := m.Called(ctx, filter, out, opts)
	fill(out, args.Get(0))
	return args.Error(1)
}

func (m *Collection) InsertOne(ctx context.Context, doc any) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

func (m *Collection) UpdateOne(ctx context.Context, filter, update any, upsert bool) (docstore.UpdateResult, error) {
	args := m.Called(ctx, filter, update, upsert)
	return args.Get(0).(docstore.UpdateResult), args.Error(1)
}

func (m *Collection) DeleteOne(ctx context.Context, filter any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Collection) Count(ctx context.Context, filter any) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Collection) Distinct(ctx context.Context, field string, filter any) ([]any, error) {
	args := m.Called(ctx, field, filter)
	values, _ := args.Get(0).([]any)
	return values, args.Error(1)
}

func fill(out, value any) {
	if value == nil {
		return
	}
	reflect.ValueOf(out).Elem().Set(reflect.ValueOf(value))
}
