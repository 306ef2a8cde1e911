//go:build unit

package notify_test

import (
	"context"
	"testing"

	"wayfare/internal/domain/notification"
	"wayfare/internal/pkg/errs"
	"wayfare/internal/usecase/notify"
	"wayfare/tests/common/testutil"
	sharedmock "wayfare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type failingDeliverer struct{}

func (failingDeliverer) Deliver(context.Context, *notification.Notification) error {
	return errs.New("smtp unreachable")
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	newTx := func(t *testing.T) (*testutil.FakeTx, *sharedmock.MockNotificationRepository) {
		t.Helper()
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockNotificationRepository(ctrl)
		return &testutil.FakeTx{NotificationsRepo: repo}, repo
	}

	t.Run("new notification is recorded and delivered", func(t *testing.T) {
		tx, repo := newTx(t)
		d := notify.NewDispatcher(notify.NoopDeliverer{})
		n := notification.BookingConfirmed(uuid.New(), uuid.New())

		repo.EXPECT().Exists(gomock.Any(), gomock.Any(), n.Type, *n.ReferenceID).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), n).Return(uuid.New(), nil)

		fresh, err := d.Dispatch(ctx, tx, n)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("duplicate is skipped", func(t *testing.T) {
		tx, repo := newTx(t)
		d := notify.NewDispatcher(notify.NoopDeliverer{})
		n := notification.BookingConfirmed(uuid.New(), uuid.New())

		repo.EXPECT().Exists(gomock.Any(), gomock.Any(), n.Type, *n.ReferenceID).Return(true, nil)

		fresh, err := d.Dispatch(ctx, tx, n)
		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("delivery failure does not fail the dispatch", func(t *testing.T) {
		tx, repo := newTx(t)
		d := notify.NewDispatcher(failingDeliverer{})
		n := notification.TripReminder(uuid.New(), uuid.New())

		repo.EXPECT().Exists(gomock.Any(), gomock.Any(), n.Type, *n.ReferenceID).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), n).Return(uuid.New(), nil)

		fresh, err := d.Dispatch(ctx, tx, n)
		require.NoError(t, err)
		assert.True(t, fresh)
	})
}
