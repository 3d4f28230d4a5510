package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stylehub/order-service/internal/entities"
	"github.com/stylehub/order-service/pkg/trm"
	"github.com/stylehub/order-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)

	// LockOrder takes the row lock; it only makes sense inside a
	// transaction started through the tx manager.
	LockOrder(ctx context.Context, orderID string) (entities.Order, error)

	// SaveOrder is idempotent on order number and reports whether the
	// row was actually inserted.
	SaveOrder(ctx context.Context, o entities.Order) (bool, error)
	SaveItems(ctx context.Context, orderID string, items []entities.Item) error
	AppendStatusEntry(ctx context.Context, orderID string, e entities.StatusEntry) error
	UpdateOrderStatus(ctx context.Context, o entities.Order) error
	DeleteOrder(ctx context.Context, orderID string) error

	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Notifier is the notification/audit sink. Delivery is best effort: a
// committed status change is never rolled back because an event failed
// to publish.
type Notifier interface {
	StatusChanged(ctx context.Context, event entities.StatusEvent) error
}

type lifecycleService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	notifier  Notifier
}

func NewLifecycleService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, notifier Notifier) *lifecycleService {
	return &lifecycleService{
		logger:    logger.With(slog.String("service", "lifecycle")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		notifier:  notifier,
	}
}

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// UpdateStatus applies one transition and returns the updated order plus
// the previous status. The history append and the order-row update commit
// in one transaction; the row lock serializes concurrent updates on the
// same order. Transition direction is deliberately not validated, the
// admin panel may move an order anywhere at any time.
func (s *lifecycleService) UpdateStatus(ctx context.Context, orderID string, change entities.StatusChange) (entities.Order, entities.Status, error) {
	if !change.Status.Valid() {
		return entities.Order{}, "", entities.ErrInvalidStatus
	}

	var (
		order entities.Order
		prev  entities.Status
	)
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			o, err := s.repo.LockOrder(ctx, orderID)
			if err != nil {
				return err
			}

			prev, err = o.ChangeStatus(change.Status, change.Note, change.TrackingNumber, change.Actor, time.Now().UTC())
			if err != nil {
				return err
			}

			entry := o.StatusHistory[len(o.StatusHistory)-1]
			if err := s.repo.AppendStatusEntry(ctx, o.ID, entry); err != nil {
				return fmt.Errorf("failed to append status entry: %w", err)
			}
			if err := s.repo.UpdateOrderStatus(ctx, o); err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}

			order = o
			return nil
		})
	}

	if err := utils.Retry(retryCfg, fn, entities.ErrOrderNotFound, entities.ErrInvalidStatus); err != nil {
		return entities.Order{}, "", err
	}

	s.cache.Delete(order.OrderNumber)

	event := entities.StatusEvent{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		CustomerID:     order.CustomerID,
		PreviousStatus: prev,
		NewStatus:      order.Status,
		TrackingNumber: order.TrackingNumber,
		ChangedBy:      change.Actor.ID,
		ChangedAt:      order.StatusHistory[len(order.StatusHistory)-1].ChangedAt,
	}
	if err := s.notifier.StatusChanged(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish status event",
			slog.Any("error", err), slog.String("order_id", order.ID))
	}

	s.logger.Debug("order status updated",
		"order_id", order.ID, "from", string(prev), "to", string(order.Status))
	return order, prev, nil
}

// CreateOrder persists a checkout draft. The order row, its item
// snapshots and the single initial history entry commit atomically, so
// the history is never empty for an order that exists. Re-delivery of
// the same order number is a no-op.
func (s *lifecycleService) CreateOrder(ctx context.Context, order entities.Order) error {
	if err := order.ValidateAmounts(); err != nil {
		return err
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber()
	}
	if order.Status == "" {
		order.Status = entities.StatusPending
	}
	if !order.Status.Valid() {
		return entities.ErrInvalidStatus
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	initial := entities.StatusEntry{
		Status:    order.Status,
		Note:      "order created",
		ChangedAt: order.CreatedAt,
		ChangedBy: entities.ActorSystem,
	}
	order.StatusHistory = []entities.StatusEntry{initial}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			inserted, err := s.repo.SaveOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if !inserted {
				s.logger.Debug("order already exists", "order_number", order.OrderNumber)
				return nil
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
			if err := s.repo.AppendStatusEntry(ctx, order.ID, initial); err != nil {
				return fmt.Errorf("failed to save initial status: %w", err)
			}

			s.logger.Debug("order saved", "order_number", order.OrderNumber)
			return nil
		})
	}

	return utils.Retry(retryCfg, fn)
}

// DeleteOrder removes an order. Delivered orders are refused: they are
// the customer's receipt.
func (s *lifecycleService) DeleteOrder(ctx context.Context, orderID string) error {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.repo.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status == entities.StatusDelivered {
			return entities.ErrOrderDelivered
		}
		if err := s.repo.DeleteOrder(ctx, o.ID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Delete(order.OrderNumber)
	s.logger.Debug("order deleted", "order_id", orderID)
	return nil
}

func (s *lifecycleService) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderNumber); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByNumber(ctx, orderNumber)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderNumber, data)
	return order, nil
}

// GetCustomerOrder is the owner-scoped read. Orders of other customers
// surface as not found rather than forbidden so order numbers cannot be
// probed.
func (s *lifecycleService) GetCustomerOrder(ctx context.Context, customerID, orderNumber string) (entities.Order, error) {
	order, err := s.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	if order.CustomerID != customerID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *lifecycleService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.Any("error", err))
			continue
		}
		s.cache.Set(order.OrderNumber, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
