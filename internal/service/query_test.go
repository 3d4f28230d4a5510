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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryService_ListOrders(t *testing.T) {
	summaries := func(n int) []entities.OrderSummary {
		out := make([]entities.OrderSummary, n)
		for i := range out {
			out[i] = entities.OrderSummary{ID: "id", Status: entities.StatusPending}
		}
		return out
	}

	type MockBehavior func(repo *mocks.MockQueryRepo)

	testCases := []struct {
		name           string
		query          entities.ListQuery
		mockBehavior   MockBehavior
		wantErr        bool
		wantPagination entities.Pagination
	}{
		{
			name:  "first page of three",
			query: entities.ListQuery{Page: 1, Limit: 10},
			mockBehavior: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().
					ListOrders(mock.Anything, mock.Anything).
					Return(summaries(10), 25, nil).Once()
			},
			wantPagination: entities.Pagination{
				CurrentPage: 1, TotalPages: 3, TotalOrders: 25,
				HasNextPage: true, HasPrevPage: false,
			},
		},
		{
			name:  "last page",
			query: entities.ListQuery{Page: 3, Limit: 10},
			mockBehavior: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().
					ListOrders(mock.Anything, mock.Anything).
					Return(summaries(5), 25, nil).Once()
			},
			wantPagination: entities.Pagination{
				CurrentPage: 3, TotalPages: 3, TotalOrders: 25,
				HasNextPage: false, HasPrevPage: true,
			},
		},
		{
			name:  "empty result",
			query: entities.ListQuery{Page: 1, Limit: 10},
			mockBehavior: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().
					ListOrders(mock.Anything, mock.Anything).
					Return(nil, 0, nil).Once()
			},
			wantPagination: entities.Pagination{
				CurrentPage: 1, TotalPages: 0, TotalOrders: 0,
				HasNextPage: false, HasPrevPage: false,
			},
		},
		{
			name:  "query is normalized before repo call",
			query: entities.ListQuery{Page: -5, Limit: 1000, SortBy: "bogus"},
			mockBehavior: func(repo *mocks.MockQueryRepo) {
				normalized := entities.ListQuery{
					Page: 1, Limit: entities.MaxPageSize,
					SortBy: entities.SortCreatedAt, SortOrder: entities.SortDesc,
				}
				repo.EXPECT().
					ListOrders(mock.Anything, normalized).
					Return(summaries(1), 1, nil).Once()
			},
			wantPagination: entities.Pagination{
				CurrentPage: 1, TotalPages: 1, TotalOrders: 1,
				HasNextPage: false, HasPrevPage: false,
			},
		},
		{
			name:  "repo error propagates",
			query: entities.ListQuery{Page: 1, Limit: 10},
			mockBehavior: func(repo *mocks.MockQueryRepo) {
				repo.EXPECT().
					ListOrders(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockQueryRepo(t)
			tc.mockBehavior(repo)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := service.NewQueryService(logger, repo)

			page, err := svc.ListOrders(context.Background(), tc.query)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPagination, page.Pagination)
		})
	}
}

func TestQueryService_StatusBreakdown(t *testing.T) {
	counts := []entities.StatusCount{
		{Status: entities.StatusPending, Count: 3},
		{Status: entities.StatusDelivered, Count: 7},
	}

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewMockQueryRepo(t)
		repo.EXPECT().StatusBreakdown(mock.Anything, "").Return(counts, nil).Once()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewQueryService(logger, repo)

		got, err := svc.StatusBreakdown(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, counts, got)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		repo := mocks.NewMockQueryRepo(t)
		repo.EXPECT().StatusBreakdown(mock.Anything, "cust-1").
			Return(nil, errors.New("db error")).Once()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc := service.NewQueryService(logger, repo)

		_, err := svc.StatusBreakdown(context.Background(), "cust-1")
		assert.Error(t, err)
	})
}
