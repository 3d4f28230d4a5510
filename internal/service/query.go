package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stylehub/order-service/internal/entities"
)

type QueryRepo interface {
	// ListOrders returns one page of summaries plus the total match count.
	ListOrders(ctx context.Context, q entities.ListQuery) ([]entities.OrderSummary, int64, error)

	// StatusBreakdown counts orders per status; customerID narrows the
	// scope when non-empty.
	StatusBreakdown(ctx context.Context, customerID string) ([]entities.StatusCount, error)
}

type queryService struct {
	logger *slog.Logger
	repo   QueryRepo
}

func NewQueryService(logger *slog.Logger, repo QueryRepo) *queryService {
	return &queryService{
		logger: logger.With(slog.String("service", "query")),
		repo:   repo,
	}
}

func (s *queryService) ListOrders(ctx context.Context, q entities.ListQuery) (entities.OrderPage, error) {
	q = q.Normalize()

	orders, total, err := s.repo.ListOrders(ctx, q)
	if err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to list orders: %w", err)
	}

	return entities.OrderPage{
		Orders:     orders,
		Pagination: paginate(q.Page, q.Limit, total),
	}, nil
}

// StatusBreakdown reflects live data; repo failures propagate instead of
// degrading to zeroed counts.
func (s *queryService) StatusBreakdown(ctx context.Context, customerID string) ([]entities.StatusCount, error) {
	counts, err := s.repo.StatusBreakdown(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get status breakdown: %w", err)
	}
	return counts, nil
}

func paginate(page, limit int, total int64) entities.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return entities.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalOrders: total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
