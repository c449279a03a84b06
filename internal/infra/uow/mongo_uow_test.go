//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"

	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsTransactionInfraError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "transient transaction error",
			err:  mongo.CommandError{Code: 251, Labels: []string{"TransientTransactionError"}},
			want: true,
		},
		{
			name: "unknown commit result wrapped",
			err:  errs.Wrap(mongo.CommandError{Code: 50, Labels: []string{"UnknownTransactionCommitResult"}}, "commit"),
			want: true,
		},
		{
			name: "command error without labels",
			err:  mongo.CommandError{Code: 11000},
			want: false,
		},
		{
			name: "usecase error",
			err:  errs.ErrAgreementNotSettleable,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransactionInfraError(tt.err))
		})
	}
}

func TestWithin_Sequential(t *testing.T) {
	u := NewMongoUoW(nil, false)

	t.Run("runs fn once and returns its error", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
			calls++
			require.NotNil(t, tx)
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("success", func(t *testing.T) {
		err := u.Within(context.Background(), func(context.Context, shared.Tx) error { return nil })
		assert.NoError(t, err)
	})
}
