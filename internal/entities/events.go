package entities

import "time"

// StatusEvent is published to the notification topic after every
// committed status change. Downstream consumers turn it into customer
// email/SMS; this service only emits it.
type StatusEvent struct {
	OrderID        string
	OrderNumber    string
	CustomerID     string
	PreviousStatus Status
	NewStatus      Status
	TrackingNumber string
	ChangedBy      string
	ChangedAt      time.Time
}
