package repo

import (
	"database/sql"
	"time"

	"github.com/stylehub/order-service/internal/entities"
)

type Order struct {
	ID             string         `db:"id"`
	OrderNumber    string         `db:"order_number"`
	CustomerID     string         `db:"customer_id"`
	Status         string         `db:"status"`
	TrackingNumber sql.NullString `db:"tracking_number"`

	CustomerName  string         `db:"customer_name"`
	CustomerEmail string         `db:"customer_email"`
	CustomerPhone sql.NullString `db:"customer_phone"`

	ShipStreet  string         `db:"ship_street"`
	ShipCity    string         `db:"ship_city"`
	ShipState   sql.NullString `db:"ship_state"`
	ShipZip     string         `db:"ship_zip"`
	ShipCountry string         `db:"ship_country"`

	Subtotal int64 `db:"subtotal"`
	Shipping int64 `db:"shipping"`
	Tax      int64 `db:"tax"`
	Discount int64 `db:"discount"`
	Total    int64 `db:"total"`

	PaymentMethod sql.NullString `db:"payment_method"`
	PaymentID     sql.NullString `db:"payment_id"`
	PaymentStatus sql.NullString `db:"payment_status"`

	CreatedAt   time.Time    `db:"created_at"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
}

type StatusEntry struct {
	OrderID        string         `db:"order_id"`
	Status         string         `db:"status"`
	Note           sql.NullString `db:"note"`
	TrackingNumber sql.NullString `db:"tracking_number"`
	ChangedAt      time.Time      `db:"changed_at"`
	ChangedBy      string         `db:"changed_by"`
}

type Item struct {
	OrderID   string         `db:"order_id"`
	ProductID string         `db:"product_id"`
	Name      string         `db:"name"`
	Price     int64          `db:"price"`
	Quantity  int            `db:"quantity"`
	Size      sql.NullString `db:"size"`
	Color     sql.NullString `db:"color"`
	Image     sql.NullString `db:"image"`
}

func StatusEntryToEntity(e StatusEntry) entities.StatusEntry {
	return entities.StatusEntry{
		Status:         entities.Status(e.Status),
		Note:           nullStringToString(e.Note),
		TrackingNumber: nullStringToString(e.TrackingNumber),
		ChangedAt:      e.ChangedAt,
		ChangedBy:      e.ChangedBy,
	}
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Size:      nullStringToString(i.Size),
		Color:     nullStringToString(i.Color),
		Image:     nullStringToString(i.Image),
	}
}

func OrderToEntity(o Order, history []StatusEntry, items []Item) entities.Order {
	order := entities.Order{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		Status:         entities.Status(o.Status),
		TrackingNumber: nullStringToString(o.TrackingNumber),
		CustomerInfo: entities.CustomerInfo{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: nullStringToString(o.CustomerPhone),
		},
		ShippingAddress: entities.Address{
			Street:  o.ShipStreet,
			City:    o.ShipCity,
			State:   nullStringToString(o.ShipState),
			Zip:     o.ShipZip,
			Country: o.ShipCountry,
		},
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		Tax:           o.Tax,
		Discount:      o.Discount,
		Total:         o.Total,
		PaymentMethod: nullStringToString(o.PaymentMethod),
		PaymentID:     nullStringToString(o.PaymentID),
		PaymentStatus: nullStringToString(o.PaymentStatus),
		CreatedAt:     o.CreatedAt,
	}

	if o.DeliveredAt.Valid {
		t := o.DeliveredAt.Time
		order.DeliveredAt = &t
	}

	if len(history) > 0 {
		order.StatusHistory = make([]entities.StatusEntry, 0, len(history))
		for _, e := range history {
			order.StatusHistory = append(order.StatusHistory, StatusEntryToEntity(e))
		}
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
