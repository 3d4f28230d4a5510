package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrInvalidOrder   = errors.New("invalid order")
	ErrTotalMismatch  = errors.New("order total does not match amounts")
	ErrOrderDelivered = errors.New("delivered orders cannot be deleted")
)

// Actor identifies who performed an operation. It is supplied by the
// gateway's auth layer and trusted as-is.
type Actor struct {
	ID   string
	Role string
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	// ActorSystem marks changes made by the service itself,
	// e.g. the initial history entry written at creation.
	ActorSystem = "system"
)

// StatusChange is one requested transition.
type StatusChange struct {
	Status         Status
	Note           string
	TrackingNumber string
	Actor          Actor
}

// StatusEntry is one record of the append-only status history.
type StatusEntry struct {
	Status         Status
	Note           string
	TrackingNumber string
	ChangedAt      time.Time
	ChangedBy      string
}

// Item is a snapshot of a catalog product taken at checkout. Snapshots
// are never resynced: the order stays a faithful receipt even if the
// product is later edited or deleted.
type Item struct {
	ProductID string
	Name      string
	Price     int64 // minor units (cents)
	Quantity  int
	Size      string
	Color     string
	Image     string
}

type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

type Address struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

type Order struct {
	ID          string
	OrderNumber string
	CustomerID  string

	Status        Status
	StatusHistory []StatusEntry

	Items           []Item
	CustomerInfo    CustomerInfo
	ShippingAddress Address

	// Amounts are minor units (cents). Total must equal
	// Subtotal + Shipping + Tax - Discount; checked at creation only.
	Subtotal int64
	Shipping int64
	Tax      int64
	Discount int64
	Total    int64

	TrackingNumber string

	PaymentMethod string
	PaymentID     string
	PaymentStatus string

	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// ValidateAmounts checks the creation-time financial invariant.
func (o *Order) ValidateAmounts() error {
	if o.Total != o.Subtotal+o.Shipping+o.Tax-o.Discount {
		return ErrTotalMismatch
	}
	return nil
}

// ChangeStatus appends a history entry and moves the order to status.
// It returns the previous status for caller display ("processing → shipped").
//
// Rules:
//   - an unknown status is rejected with ErrInvalidStatus and no side effects
//   - a tracking number, when given, overwrites the order's field regardless
//     of the target status
//   - DeliveredAt is set on the first transition into delivered and never
//     overwritten afterwards
//   - duplicate transitions are not deduplicated, the history records every
//     action taken
func (o *Order) ChangeStatus(status Status, note, trackingNumber string, actor Actor, now time.Time) (Status, error) {
	if !status.Valid() {
		return "", ErrInvalidStatus
	}

	prev := o.Status
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:         status,
		Note:           note,
		TrackingNumber: trackingNumber,
		ChangedAt:      now,
		ChangedBy:      actor.ID,
	})
	o.Status = status

	if trackingNumber != "" {
		o.TrackingNumber = trackingNumber
	}
	if status == StatusDelivered && o.DeliveredAt == nil {
		t := now
		o.DeliveredAt = &t
	}
	return prev, nil
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(StatusEntry{})
	gob.Register(Item{})
	gob.Register(CustomerInfo{})
	gob.Register(Address{})
}
