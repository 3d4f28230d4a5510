package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stylehub/order-service/internal/entities"
	"github.com/stylehub/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "order_number", "customer_id", "status", "tracking_number",
	"customer_name", "customer_email", "customer_phone",
	"ship_street", "ship_city", "ship_state", "ship_zip", "ship_country",
	"subtotal", "shipping", "tax", "discount", "total",
	"payment_method", "payment_id", "payment_status",
	"created_at", "delivered_at",
}

var sortColumns = map[string]string{
	entities.SortCreatedAt: "created_at",
	entities.SortTotal:     "total",
	entities.SortStatus:    "status",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_number": orderNumber}, false)
}

// LockOrder loads the order by id with FOR UPDATE. It must run inside a
// transaction; concurrent status updates on the same order serialize on
// the row lock, which keeps the history append linearizable.
func (r *postgresRepo) LockOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID}, true)
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq, forUpdate bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(where)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	history, err := r.historyFor(ctx, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	items, err := r.itemsFor(ctx, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, history[order.ID], items[order.ID]), nil
}

// SaveOrder inserts the order row. The insert is idempotent on the order
// number; it reports false when the order already existed so the caller
// can skip re-inserting items and history.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (bool, error) {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.CustomerID, string(o.Status), nullString(o.TrackingNumber),
			o.CustomerInfo.Name, o.CustomerInfo.Email, nullString(o.CustomerInfo.Phone),
			o.ShippingAddress.Street, o.ShippingAddress.City, nullString(o.ShippingAddress.State),
			o.ShippingAddress.Zip, o.ShippingAddress.Country,
			o.Subtotal, o.Shipping, o.Tax, o.Discount, o.Total,
			nullString(o.PaymentMethod), nullString(o.PaymentID), nullString(o.PaymentStatus),
			o.CreatedAt, nullTime(o.DeliveredAt),
		).
		Suffix("ON CONFLICT (order_number) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to save order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to save order: %w", err)
	}
	return affected > 0, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "name", "price", "quantity", "size", "color", "image")

	for _, it := range items {
		q = q.Values(
			orderID,
			it.ProductID,
			it.Name,
			it.Price,
			it.Quantity,
			nullString(it.Size),
			nullString(it.Color),
			nullString(it.Image),
		)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) AppendStatusEntry(ctx context.Context, orderID string, e entities.StatusEntry) error {
	query, args := r.qb.Insert("status_history").
		Columns("order_id", "status", "note", "tracking_number", "changed_at", "changed_by").
		Values(orderID, string(e.Status), nullString(e.Note), nullString(e.TrackingNumber), e.ChangedAt, e.ChangedBy).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to append status entry: %w", err)
	}
	return nil
}

// UpdateOrderStatus persists the mutable lifecycle fields. Callers run it
// in the same transaction as AppendStatusEntry so status and history
// cannot diverge.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("tracking_number", nullString(o.TrackingNumber)).
		Set("delivered_at", nullTime(o.DeliveredAt)).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// DeleteOrder removes the order row; items and history go with it via
// ON DELETE CASCADE.
func (r *postgresRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	history, err := r.historyFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, history[order.ID], items[order.ID]))
	}

	return result, nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, q entities.ListQuery) ([]entities.OrderSummary, int64, error) {
	where := listConditions(q)

	countQuery, countArgs := r.qb.Select("COUNT(*)").
		From("orders").
		Where(where).
		MustSql()

	var total int64
	if err := r.getContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if q.SortOrder == entities.SortAsc {
		direction = "ASC"
	}

	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy(fmt.Sprintf("%s %s", column, direction)).
		Limit(uint64(q.Limit)).
		Offset(uint64((q.Page - 1) * q.Limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.OrderSummary{}, total, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]entities.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summary := entities.OrderSummary{
			ID:             order.ID,
			OrderNumber:    order.OrderNumber,
			CustomerID:     order.CustomerID,
			CustomerName:   order.CustomerName,
			CustomerEmail:  order.CustomerEmail,
			Status:         entities.Status(order.Status),
			Total:          order.Total,
			TrackingNumber: nullStringToString(order.TrackingNumber),
			CreatedAt:      order.CreatedAt,
		}
		if rows := items[order.ID]; len(rows) > 0 {
			summary.ItemsSummary = entities.ItemsSummary{
				FirstItem:       ItemToEntity(rows[0]),
				AdditionalCount: len(rows) - 1,
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries, total, nil
}

func (r *postgresRepo) StatusBreakdown(ctx context.Context, customerID string) ([]entities.StatusCount, error) {
	q := r.qb.Select("status", "COUNT(*) AS count").
		From("orders").
		GroupBy("status")
	if customerID != "" {
		q = q.Where(sq.Eq{"customer_id": customerID})
	}
	query, args := q.MustSql()

	var rows []struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status breakdown: %w", err)
	}

	result := make([]entities.StatusCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, entities.StatusCount{
			Status: entities.Status(row.Status),
			Count:  row.Count,
		})
	}
	return result, nil
}

func listConditions(q entities.ListQuery) sq.And {
	where := sq.And{}
	if q.Status != "" {
		where = append(where, sq.Eq{"status": string(q.Status)})
	}
	if q.CustomerID != "" {
		where = append(where, sq.Eq{"customer_id": q.CustomerID})
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"order_number": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_email": pattern},
		})
	}
	return where
}

func (r *postgresRepo) historyFor(ctx context.Context, orderIDs []string) (map[string][]StatusEntry, error) {
	query, args := r.qb.Select("order_id", "status", "note", "tracking_number", "changed_at", "changed_by").
		From("status_history").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("id ASC").
		MustSql()

	var entries []StatusEntry
	if err := r.selectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status history: %w", err)
	}

	result := make(map[string][]StatusEntry, len(orderIDs))
	for _, e := range entries {
		result[e.OrderID] = append(result[e.OrderID], e)
	}
	return result, nil
}

func (r *postgresRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select("order_id", "product_id", "name", "price", "quantity", "size", "color", "image").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("id ASC").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	result := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
