//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"building-management/internal/domain/user"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/queries"
	queriesmock "building-management/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	q := queries.NewUserQueries(store)
	ctx := context.Background()

	t.Run("GetByEmail returns the stored user", func(t *testing.T) {
		want := &queries.UserView{ID: "u1", Email: "jane@example.com", Role: "member"}
		store.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(want, nil)

		got, err := q.GetByEmail(ctx, " jane@example.com ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("GetByEmail maps a miss to user not found", func(t *testing.T) {
		store.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, infra.WrapRepoErr("find user", docstore.ErrNoDocument))

		_, err := q.GetByEmail(ctx, "ghost@example.com")
		assert.True(t, errs.Is(err, errs.ErrUserNotFound))
	})

	t.Run("GetByEmail requires an email", func(t *testing.T) {
		_, err := q.GetByEmail(ctx, "  ")
		assert.True(t, errs.Is(err, errs.ErrBadRequest))
	})

	t.Run("ListByRole never returns nil", func(t *testing.T) {
		store.EXPECT().FindByRole(gomock.Any(), "member").Return(nil, nil)

		got, err := q.ListByRole(ctx, "member")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("CurrentRole parses the stored role", func(t *testing.T) {
		store.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(&queries.UserView{Email: "admin@example.com", Role: "admin"}, nil)

		role, err := q.CurrentRole(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("CurrentRole forbids an unknown stored role", func(t *testing.T) {
		store.EXPECT().FindByEmail(gomock.Any(), "odd@example.com").
			Return(&queries.UserView{Email: "odd@example.com", Role: "superuser"}, nil)

		_, err := q.CurrentRole(ctx, "odd@example.com")
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}

func TestApartmentQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockApartmentReadStore(ctrl)
	q := queries.NewApartmentQueries(store)

	t.Run("marks apartments under accepted agreements as unavailable", func(t *testing.T) {
		store.EXPECT().FindAll(gomock.Any()).Return([]*queries.ApartmentView{
			{ID: "a1", ApartmentNo: "101"},
			{ID: "a2", ApartmentNo: "102"},
		}, nil)
		store.EXPECT().RentedApartmentIDs(gomock.Any()).Return([]string{"a2"}, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].Available)
		assert.False(t, got[1].Available)
	})

	t.Run("store failure", func(t *testing.T) {
		store.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := q.List(context.Background())
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestAgreementQueries_CountUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAgreementReadStore(ctrl)
	q := queries.NewAgreementQueries(store)

	store.EXPECT().CountByStatus(gomock.Any(), "accepted").Return(int64(3), nil)

	n, err := q.CountUnavailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestPaymentQueries_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPaymentReadStore(ctrl)
	q := queries.NewPaymentQueries(store)

	t.Run("narrows to a month", func(t *testing.T) {
		store.EXPECT().FindByEmail(gomock.Any(), "jane@example.com", "March").
			Return([]*queries.PaymentView{{ID: "p1", Month: "March"}}, nil)

		got, err := q.History(context.Background(), "jane@example.com", " March ")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("email is required", func(t *testing.T) {
		_, err := q.History(context.Background(), "", "")
		assert.True(t, errs.Is(err, errs.ErrBadRequest))
	})
}

func TestCouponQueries_GetByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCouponReadStore(ctrl)
	q := queries.NewCouponQueries(store)

	store.EXPECT().FindByCode(gomock.Any(), "NOPE").
		Return(nil, infra.WrapRepoErr("find coupon", docstore.ErrNoDocument))

	_, err := q.GetByCode(context.Background(), "NOPE")
	assert.True(t, errs.Is(err, errs.ErrCouponNotFound))
}

func TestAnnouncementQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAnnouncementReadStore(ctrl)
	q := queries.NewAnnouncementQueries(store)

	store.EXPECT().FindAllNewestFirst(gomock.Any()).Return(nil, nil)

	got, err := q.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}
