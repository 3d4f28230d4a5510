package handler

import (
	"time"

	"github.com/stylehub/order-service/internal/entities"
)

// Order представляет заказ в ответах API. Суммы в минорных единицах (центах).
type Order struct {
	ID                string        `json:"id"`
	OrderNumber       string        `json:"orderNumber"`
	CustomerID        string        `json:"customerId,omitempty"`
	Status            string        `json:"status"`
	NextLogicalStatus string        `json:"nextLogicalStatus,omitempty"`
	StatusHistory     []StatusEntry `json:"statusHistory"`
	Items             []Item        `json:"items"`
	CustomerInfo      CustomerInfo  `json:"customerInfo"`
	ShippingAddress   Address       `json:"shippingAddress"`
	Subtotal          int64         `json:"subtotal"`
	Shipping          int64         `json:"shipping"`
	Tax               int64         `json:"tax"`
	Discount          int64         `json:"discount"`
	Total             int64         `json:"total"`
	TrackingNumber    string        `json:"trackingNumber,omitempty"`
	PaymentMethod     string        `json:"paymentMethod,omitempty"`
	PaymentID         string        `json:"paymentId,omitempty"`
	PaymentStatus     string        `json:"paymentStatus,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	DeliveredAt       *time.Time    `json:"deliveredAt,omitempty"`
}

// StatusEntry запись истории статусов
type StatusEntry struct {
	Status         string    `json:"status"`
	Note           string    `json:"note,omitempty"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	ChangedAt      time.Time `json:"changedAt"`
	ChangedBy      string    `json:"changedBy"`
}

// Item снапшот товара на момент оформления
type Item struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     int64  `json:"price" validate:"gte=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Image     string `json:"image,omitempty"`
}

// CustomerInfo контакты покупателя
type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// Address адрес доставки
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// UpdateStatusRequest тело запроса смены статуса
type UpdateStatusRequest struct {
	Status         string `json:"status" validate:"required"`
	Note           string `json:"note,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

// UpdateStatusResponse результат смены статуса
type UpdateStatusResponse struct {
	Order          Order  `json:"order"`
	PreviousStatus string `json:"previousStatus"`
}

// OrderSummary строка списка заказов
type OrderSummary struct {
	ID             string       `json:"id"`
	OrderNumber    string       `json:"orderNumber"`
	CustomerName   string       `json:"customerName,omitempty"`
	CustomerEmail  string       `json:"customerEmail,omitempty"`
	Status         string       `json:"status"`
	Total          int64        `json:"total"`
	TrackingNumber string       `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	ItemsSummary   ItemsSummary `json:"itemsSummary"`
}

// ItemsSummary превью товаров заказа
type ItemsSummary struct {
	FirstItem       *Item `json:"firstItem,omitempty"`
	AdditionalCount int   `json:"additionalCount"`
}

// Pagination метаданные страницы
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalOrders int64 `json:"totalOrders"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ListOrdersResponse страница заказов
type ListOrdersResponse struct {
	Orders     []OrderSummary `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

// StatusCount количество заказов в статусе
type StatusCount struct {
	// Поле называется _id: так его исторически отдаёт админка витрины.
	Status string `json:"_id"`
	Count  int64  `json:"count"`
}

// StatsResponse сводка по статусам
type StatsResponse struct {
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
}

// CheckoutOrder заказ из события оформления
type CheckoutOrder struct {
	OrderNumber     string       `json:"order_number,omitempty"`
	CustomerID      string       `json:"customer_id" validate:"required"`
	Items           []Item       `json:"items" validate:"required,min=1,dive"`
	CustomerInfo    CustomerInfo `json:"customer_info" validate:"required"`
	ShippingAddress Address      `json:"shipping_address" validate:"required"`
	Subtotal        int64        `json:"subtotal" validate:"gte=0"`
	Shipping        int64        `json:"shipping" validate:"gte=0"`
	Tax             int64        `json:"tax" validate:"gte=0"`
	Discount        int64        `json:"discount" validate:"gte=0"`
	Total           int64        `json:"total" validate:"gte=0"`
	PaymentMethod   string       `json:"payment_method,omitempty"`
	PaymentID       string       `json:"payment_id,omitempty"`
	PaymentStatus   string       `json:"payment_status,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

func StatusEntryToJSON(e entities.StatusEntry) StatusEntry {
	return StatusEntry{
		Status:         string(e.Status),
		Note:           e.Note,
		TrackingNumber: e.TrackingNumber,
		ChangedAt:      e.ChangedAt,
		ChangedBy:      e.ChangedBy,
	}
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Size:      i.Size,
		Color:     i.Color,
		Image:     i.Image,
	}
}

func ItemJSONToEntity(i Item) entities.Item {
	return entities.Item{
		ProductID: i.ProductID,
		Name:      i.Name,
		Price:     i.Price,
		Quantity:  i.Quantity,
		Size:      i.Size,
		Color:     i.Color,
		Image:     i.Image,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	history := make([]StatusEntry, 0, len(o.StatusHistory))
	for _, e := range o.StatusHistory {
		history = append(history, StatusEntryToJSON(e))
	}

	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	order := Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		Status:        string(o.Status),
		StatusHistory: history,
		Items:         items,
		CustomerInfo: CustomerInfo{
			Name:  o.CustomerInfo.Name,
			Email: o.CustomerInfo.Email,
			Phone: o.CustomerInfo.Phone,
		},
		ShippingAddress: Address{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			Zip:     o.ShippingAddress.Zip,
			Country: o.ShippingAddress.Country,
		},
		Subtotal:       o.Subtotal,
		Shipping:       o.Shipping,
		Tax:            o.Tax,
		Discount:       o.Discount,
		Total:          o.Total,
		TrackingNumber: o.TrackingNumber,
		PaymentMethod:  o.PaymentMethod,
		PaymentID:      o.PaymentID,
		PaymentStatus:  o.PaymentStatus,
		CreatedAt:      o.CreatedAt,
		DeliveredAt:    o.DeliveredAt,
	}

	if next, ok := o.Status.NextLogical(); ok {
		order.NextLogicalStatus = string(next)
	}

	return order
}

func SummaryEntityToJSON(s entities.OrderSummary) OrderSummary {
	summary := OrderSummary{
		ID:             s.ID,
		OrderNumber:    s.OrderNumber,
		CustomerName:   s.CustomerName,
		CustomerEmail:  s.CustomerEmail,
		Status:         string(s.Status),
		Total:          s.Total,
		TrackingNumber: s.TrackingNumber,
		CreatedAt:      s.CreatedAt,
		ItemsSummary: ItemsSummary{
			AdditionalCount: s.ItemsSummary.AdditionalCount,
		},
	}
	if s.ItemsSummary.FirstItem != (entities.Item{}) {
		first := ItemEntityToJSON(s.ItemsSummary.FirstItem)
		summary.ItemsSummary.FirstItem = &first
	}
	return summary
}

func OrderPageToJSON(page entities.OrderPage) ListOrdersResponse {
	orders := make([]OrderSummary, 0, len(page.Orders))
	for _, s := range page.Orders {
		orders = append(orders, SummaryEntityToJSON(s))
	}
	return ListOrdersResponse{
		Orders: orders,
		Pagination: Pagination{
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalOrders: page.Pagination.TotalOrders,
			HasNextPage: page.Pagination.HasNextPage,
			HasPrevPage: page.Pagination.HasPrevPage,
		},
	}
}

func CheckoutOrderToEntity(o CheckoutOrder) entities.Order {
	items := make([]entities.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	return entities.Order{
		OrderNumber: o.OrderNumber,
		CustomerID:  o.CustomerID,
		Items:       items,
		CustomerInfo: entities.CustomerInfo{
			Name:  o.CustomerInfo.Name,
			Email: o.CustomerInfo.Email,
			Phone: o.CustomerInfo.Phone,
		},
		ShippingAddress: entities.Address{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			Zip:     o.ShippingAddress.Zip,
			Country: o.ShippingAddress.Country,
		},
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		Tax:           o.Tax,
		Discount:      o.Discount,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		PaymentID:     o.PaymentID,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
	}
}
