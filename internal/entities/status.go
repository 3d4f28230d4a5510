package entities

// Status is the shipment lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// Statuses lists every valid status, in display order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
		StatusRefunded,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether s normally ends the shipment lifecycle.
// This is informational only: transitions out of a terminal status are
// still permitted, the admin panel relies on that for refunds after
// delivery and for re-opening mistaken cancellations.
func (s Status) Terminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// NextLogical returns the conventional next step of the happy path
// (pending → processing → shipped → delivered). It is a UI hint and
// must never be used to reject a transition.
func (s Status) NextLogical() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusProcessing, true
	case StatusProcessing:
		return StatusShipped, true
	case StatusShipped:
		return StatusDelivered, true
	}
	return "", false
}
