package entities_test

import (
	"testing"
	"time"

	"github.com/stylehub/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range entities.Statuses() {
		assert.True(t, s.Valid(), "status %q must be valid", s)
	}
	assert.False(t, entities.Status("unknown").Valid())
	assert.False(t, entities.Status("").Valid())
	assert.False(t, entities.Status("PENDING").Valid())
}

func TestStatus_NextLogical(t *testing.T) {
	testCases := []struct {
		status entities.Status
		want   entities.Status
		ok     bool
	}{
		{entities.StatusPending, entities.StatusProcessing, true},
		{entities.StatusProcessing, entities.StatusShipped, true},
		{entities.StatusShipped, entities.StatusDelivered, true},
		{entities.StatusDelivered, "", false},
		{entities.StatusCancelled, "", false},
		{entities.StatusRefunded, "", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			got, ok := tc.status.NextLogical()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, entities.StatusPending.Terminal())
	assert.False(t, entities.StatusProcessing.Terminal())
	assert.False(t, entities.StatusShipped.Terminal())
	assert.True(t, entities.StatusDelivered.Terminal())
	assert.True(t, entities.StatusCancelled.Terminal())
	assert.True(t, entities.StatusRefunded.Terminal())
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	admin := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}

	t.Run("invalid status has no side effects", func(t *testing.T) {
		order := entities.Order{Status: entities.StatusPending}

		_, err := order.ChangeStatus("bogus", "note", "TRK", admin, now)

		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
		assert.Equal(t, entities.StatusPending, order.Status)
		assert.Empty(t, order.StatusHistory)
		assert.Empty(t, order.TrackingNumber)
	})

	t.Run("returns previous status and appends history", func(t *testing.T) {
		order := entities.Order{Status: entities.StatusPending}

		prev, err := order.ChangeStatus(entities.StatusProcessing, "picked up", "", admin, now)

		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, prev)
		assert.Equal(t, entities.StatusProcessing, order.Status)
		require.Len(t, order.StatusHistory, 1)
		entry := order.StatusHistory[0]
		assert.Equal(t, entities.StatusProcessing, entry.Status)
		assert.Equal(t, "picked up", entry.Note)
		assert.Equal(t, "admin-1", entry.ChangedBy)
		assert.Equal(t, now, entry.ChangedAt)
	})

	t.Run("tracking number overwrites order field", func(t *testing.T) {
		order := entities.Order{Status: entities.StatusProcessing, TrackingNumber: "OLD"}

		_, err := order.ChangeStatus(entities.StatusShipped, "", "TRK123", admin, now)

		require.NoError(t, err)
		assert.Equal(t, "TRK123", order.TrackingNumber)

		// без номера поле не трогаем
		_, err = order.ChangeStatus(entities.StatusDelivered, "", "", admin, now)
		require.NoError(t, err)
		assert.Equal(t, "TRK123", order.TrackingNumber)
	})

	t.Run("delivered at is set once", func(t *testing.T) {
		order := entities.Order{Status: entities.StatusPending}

		for _, s := range []entities.Status{
			entities.StatusProcessing, entities.StatusShipped, entities.StatusDelivered,
		} {
			_, err := order.ChangeStatus(s, "", "", admin, now)
			require.NoError(t, err)
		}

		require.NotNil(t, order.DeliveredAt)
		first := *order.DeliveredAt
		assert.Equal(t, now, first)
		assert.Len(t, order.StatusHistory, 3)

		// refunded и повторная доставка не сдвигают отметку
		later := now.Add(48 * time.Hour)
		_, err := order.ChangeStatus(entities.StatusRefunded, "", "", admin, later)
		require.NoError(t, err)
		_, err = order.ChangeStatus(entities.StatusDelivered, "", "", admin, later)
		require.NoError(t, err)

		assert.Equal(t, first, *order.DeliveredAt)
		assert.Len(t, order.StatusHistory, 5)
	})

	t.Run("duplicate transitions are both recorded", func(t *testing.T) {
		order := entities.Order{Status: entities.StatusProcessing}

		_, err := order.ChangeStatus(entities.StatusProcessing, "first", "", admin, now)
		require.NoError(t, err)
		prev, err := order.ChangeStatus(entities.StatusProcessing, "second", "", admin, now)
		require.NoError(t, err)

		assert.Equal(t, entities.StatusProcessing, prev)
		assert.Len(t, order.StatusHistory, 2)
	})
}

func TestOrder_ValidateAmounts(t *testing.T) {
	testCases := []struct {
		name    string
		order   entities.Order
		wantErr error
	}{
		{
			name: "matching total",
			order: entities.Order{
				Subtotal: 10000, Shipping: 599, Tax: 850, Discount: 0, Total: 11449,
			},
		},
		{
			name: "discount applied",
			order: entities.Order{
				Subtotal: 10000, Shipping: 599, Tax: 850, Discount: 1000, Total: 10449,
			},
		},
		{
			name: "mismatch",
			order: entities.Order{
				Subtotal: 10000, Shipping: 599, Tax: 850, Discount: 0, Total: 11450,
			},
			wantErr: entities.ErrTotalMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.ValidateAmounts()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrder_Unmarshal(t *testing.T) {
	src := entities.Order{
		ID:          "id-1",
		OrderNumber: "ORD-20250601-ABCDEF12",
		CustomerID:  "cust-1",
		Status:      entities.StatusShipped,
		Items:       []entities.Item{{ProductID: "p1", Name: "t-shirt", Price: 1999, Quantity: 2}},
		Total:       3998,
		Subtotal:    3998,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := src.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, src, got)

	var broken entities.Order
	assert.ErrorIs(t, broken.Unmarshal([]byte("garbage")), entities.ErrInvalidOrder)
}

func TestListQuery_Normalize(t *testing.T) {
	testCases := []struct {
		name string
		in   entities.ListQuery
		want entities.ListQuery
	}{
		{
			name: "defaults",
			in:   entities.ListQuery{},
			want: entities.ListQuery{Page: 1, Limit: 10, SortBy: entities.SortCreatedAt, SortOrder: entities.SortDesc},
		},
		{
			name: "limit clamped",
			in:   entities.ListQuery{Page: 3, Limit: 500},
			want: entities.ListQuery{Page: 3, Limit: entities.MaxPageSize, SortBy: entities.SortCreatedAt, SortOrder: entities.SortDesc},
		},
		{
			name: "unknown sort falls back",
			in:   entities.ListQuery{Page: 1, Limit: 10, SortBy: "customer_id; DROP TABLE orders", SortOrder: "sideways"},
			want: entities.ListQuery{Page: 1, Limit: 10, SortBy: entities.SortCreatedAt, SortOrder: entities.SortDesc},
		},
		{
			name: "valid values kept",
			in:   entities.ListQuery{Status: entities.StatusShipped, Page: 2, Limit: 25, SortBy: entities.SortTotal, SortOrder: entities.SortAsc},
			want: entities.ListQuery{Status: entities.StatusShipped, Page: 2, Limit: 25, SortBy: entities.SortTotal, SortOrder: entities.SortAsc},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}
