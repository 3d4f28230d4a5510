package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stylehub/order-service/internal/entities"
	"github.com/stylehub/order-service/internal/service"
	mocks "github.com/stylehub/order-service/internal/service/mocks"
	txMocks "github.com/stylehub/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type lifecycleAPI interface {
	UpdateStatus(ctx context.Context, orderID string, change entities.StatusChange) (entities.Order, entities.Status, error)
	CreateOrder(ctx context.Context, order entities.Order) error
	DeleteOrder(ctx context.Context, orderID string) error
	GetCustomerOrder(ctx context.Context, customerID, orderNumber string) (entities.Order, error)
	WarmUpCache(ctx context.Context, count int) error
}

func newLifecycle(t *testing.T) (*mocks.MockOrderRepo, *mocks.MockCache, *mocks.MockNotifier, lifecycleAPI) {
	t.Helper()

	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	notifier := mocks.NewMockNotifier(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// транзакция в тестах прозрачная: просто вызываем колбэк
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	svc := service.NewLifecycleService(logger, tx, orderRepo, cache, notifier)
	return orderRepo, cache, notifier, svc
}

func TestLifecycleService_UpdateStatus(t *testing.T) {
	admin := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
	stored := entities.Order{
		ID:          "id-1",
		OrderNumber: "ORD-20250601-ABCDEF12",
		CustomerID:  "cust-1",
		Status:      entities.StatusProcessing,
		StatusHistory: []entities.StatusEntry{
			{Status: entities.StatusPending, ChangedBy: entities.ActorSystem},
			{Status: entities.StatusProcessing, ChangedBy: "admin-1"},
		},
	}

	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier)

	testCases := []struct {
		name         string
		orderID      string
		change       entities.StatusChange
		mockBehavior MockBehavior
		wantErr      error
		wantPrev     entities.Status
		check        func(t *testing.T, order entities.Order)
	}{
		{
			name:    "success",
			orderID: "id-1",
			change: entities.StatusChange{
				Status:         entities.StatusShipped,
				Note:           "handed to carrier",
				TrackingNumber: "TRK123",
				Actor:          admin,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				repo.EXPECT().LockOrder(mock.Anything, "id-1").Return(stored, nil).Once()
				repo.EXPECT().AppendStatusEntry(mock.Anything, "id-1", mock.Anything).Return(nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).Return(nil).Once()
				cache.EXPECT().Delete("ORD-20250601-ABCDEF12").Return().Once()
				notifier.EXPECT().StatusChanged(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantPrev: entities.StatusProcessing,
			check: func(t *testing.T, order entities.Order) {
				assert.Equal(t, entities.StatusShipped, order.Status)
				assert.Equal(t, "TRK123", order.TrackingNumber)
				require.Len(t, order.StatusHistory, 3)
				last := order.StatusHistory[2]
				assert.Equal(t, entities.StatusShipped, last.Status)
				assert.Equal(t, "handed to carrier", last.Note)
				assert.Equal(t, "admin-1", last.ChangedBy)
			},
		},
		{
			name:    "invalid status rejected before transaction",
			orderID: "id-1",
			change:  entities.StatusChange{Status: "bogus", Actor: admin},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
			},
			wantErr: entities.ErrInvalidStatus,
		},
		{
			name:    "order not found is not retried",
			orderID: "missing",
			change:  entities.StatusChange{Status: entities.StatusShipped, Actor: admin},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				repo.EXPECT().LockOrder(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "retry works (first attempt fails, second succeeds)",
			orderID: "id-1",
			change:  entities.StatusChange{Status: entities.StatusShipped, Actor: admin},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				repo.EXPECT().LockOrder(mock.Anything, "id-1").
					Return(entities.Order{}, errors.New("temporary error")).Once()
				repo.EXPECT().LockOrder(mock.Anything, "id-1").Return(stored, nil).Once()
				repo.EXPECT().AppendStatusEntry(mock.Anything, "id-1", mock.Anything).Return(nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).Return(nil).Once()
				cache.EXPECT().Delete("ORD-20250601-ABCDEF12").Return().Once()
				notifier.EXPECT().StatusChanged(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantPrev: entities.StatusProcessing,
		},
		{
			name:    "notifier failure does not fail the update",
			orderID: "id-1",
			change:  entities.StatusChange{Status: entities.StatusDelivered, Actor: admin},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache, notifier *mocks.MockNotifier) {
				repo.EXPECT().LockOrder(mock.Anything, "id-1").Return(stored, nil).Once()
				repo.EXPECT().AppendStatusEntry(mock.Anything, "id-1", mock.Anything).Return(nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, mock.Anything).Return(nil).Once()
				cache.EXPECT().Delete("ORD-20250601-ABCDEF12").Return().Once()
				notifier.EXPECT().StatusChanged(mock.Anything, mock.Anything).
					Return(errors.New("kafka is down")).Once()
			},
			wantPrev: entities.StatusProcessing,
			check: func(t *testing.T, order entities.Order) {
				assert.Equal(t, entities.StatusDelivered, order.Status)
				require.NotNil(t, order.DeliveredAt)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, cache, notifier, svc := newLifecycle(t)
			tc.mockBehavior(repo, cache, notifier)

			order, prev, err := svc.UpdateStatus(context.Background(), tc.orderID, tc.change)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPrev, prev)
			if tc.check != nil {
				tc.check(t, order)
			}
		})
	}
}

func TestLifecycleService_CreateOrder(t *testing.T) {
	validOrder := entities.Order{
		CustomerID:   "cust-1",
		CustomerInfo: entities.CustomerInfo{Name: "Jane", Email: "jane@example.com"},
		Items:        []entities.Item{{ProductID: "p1", Name: "t-shirt", Price: 1999, Quantity: 2}},
		Subtotal:     3998,
		Shipping:     599,
		Tax:          0,
		Discount:     0,
		Total:        4597,
	}

	type MockBehavior func(repo *mocks.MockOrderRepo)

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (bool, error) {
						assert.NotEmpty(t, o.ID)
						assert.NotEmpty(t, o.OrderNumber)
						assert.Equal(t, entities.StatusPending, o.Status)
						require.Len(t, o.StatusHistory, 1)
						assert.Equal(t, entities.ActorSystem, o.StatusHistory[0].ChangedBy)
						return true, nil
					}).Once()
				repo.EXPECT().SaveItems(mock.Anything, mock.Anything, validOrder.Items).Return(nil).Once()
				repo.EXPECT().AppendStatusEntry(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "duplicate order number is a no-op",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
		},
		{
			name: "total mismatch rejected",
			order: entities.Order{
				CustomerID: "cust-1",
				Subtotal:   3998, Shipping: 599, Total: 9999,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrTotalMismatch,
		},
		{
			name:  "retry works (first attempt fails, second succeeds)",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Return(false, errors.New("temporary error")).Once()
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(true, nil).Once()
				repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().AppendStatusEntry(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, _, _, svc := newLifecycle(t)
			tc.mockBehavior(repo)

			err := svc.CreateOrder(context.Background(), tc.order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLifecycleService_DeleteOrder(t *testing.T) {
	shipped := entities.Order{ID: "id-1", OrderNumber: "ORD-1", Status: entities.StatusShipped}
	delivered := entities.Order{ID: "id-2", OrderNumber: "ORD-2", Status: entities.StatusDelivered}

	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "success",
			orderID: "id-1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().LockOrder(mock.Anything, "id-1").Return(shipped, nil).Once()
				repo.EXPECT().DeleteOrder(mock.Anything, "id-1").Return(nil).Once()
				cache.EXPECT().Delete("ORD-1").Return().Once()
			},
		},
		{
			name:    "delivered order refused",
			orderID: "id-2",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().LockOrder(mock.Anything, "id-2").Return(delivered, nil).Once()
			},
			wantErr: entities.ErrOrderDelivered,
		},
		{
			name:    "not found",
			orderID: "missing",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().LockOrder(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, cache, _, svc := newLifecycle(t)
			tc.mockBehavior(repo, cache)

			err := svc.DeleteOrder(context.Background(), tc.orderID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLifecycleService_GetCustomerOrder(t *testing.T) {
	order := entities.Order{ID: "id-1", OrderNumber: "ORD-1", CustomerID: "cust-1"}
	data, err := order.Marshal()
	require.NoError(t, err)

	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	testCases := []struct {
		name         string
		customerID   string
		orderNumber  string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:        "success from cache",
			customerID:  "cust-1",
			orderNumber: "ORD-1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD-1").Return(data, true).Once()
			},
			want: order,
		},
		{
			name:        "success from repo and set to cache",
			customerID:  "cust-1",
			orderNumber: "ORD-1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD-1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD-1").Return(order, nil).Once()
				cache.EXPECT().Set("ORD-1", data).Return().Once()
			},
			want: order,
		},
		{
			name:        "other customer's order surfaces as not found",
			customerID:  "cust-2",
			orderNumber: "ORD-1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ORD-1").Return(data, true).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:        "not found in repo",
			customerID:  "cust-1",
			orderNumber: "missing",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("missing").Return(nil, false).Once()
				repo.EXPECT().GetOrderByNumber(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, cache, _, svc := newLifecycle(t)
			tc.mockBehavior(repo, cache)

			got, err := svc.GetCustomerOrder(context.Background(), tc.customerID, tc.orderNumber)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLifecycleService_WarmUpCache(t *testing.T) {
	orders := []entities.Order{
		{ID: "id-1", OrderNumber: "ORD-1"},
		{ID: "id-2", OrderNumber: "ORD-2"},
	}

	repo, cache, _, svc := newLifecycle(t)
	repo.EXPECT().LatestOrders(mock.Anything, 2).Return(orders, nil).Once()
	cache.EXPECT().Set("ORD-1", mock.Anything).Return().Once()
	cache.EXPECT().Set("ORD-2", mock.Anything).Return().Once()

	assert.NoError(t, svc.WarmUpCache(context.Background(), 2))
}
