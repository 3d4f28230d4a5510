package entities

import "time"

// Safe sort columns for order listings. Anything else falls back to SortCreatedAt.
const (
	SortCreatedAt = "createdAt"
	SortTotal     = "total"
	SortStatus    = "status"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// MaxPageSize bounds listing responses.
const MaxPageSize = 100

// ListQuery describes one paginated listing request. CustomerID, when set,
// pins the result to that customer; the customer-facing endpoint sets it
// from the authenticated actor and callers cannot override it.
type ListQuery struct {
	Status     Status
	Search     string
	CustomerID string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize clamps pagination and falls back to safe sort defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	switch q.SortBy {
	case SortCreatedAt, SortTotal, SortStatus:
	default:
		q.SortBy = SortCreatedAt
	}
	switch q.SortOrder {
	case SortAsc, SortDesc:
	default:
		q.SortOrder = SortDesc
	}
	return q
}

// ItemsSummary is the denormalized preview of an order's items,
// computed at query time and never stored.
type ItemsSummary struct {
	FirstItem       Item
	AdditionalCount int
}

// OrderSummary is one row of a listing.
type OrderSummary struct {
	ID             string
	OrderNumber    string
	CustomerID     string
	CustomerName   string
	CustomerEmail  string
	Status         Status
	Total          int64
	TrackingNumber string
	CreatedAt      time.Time
	ItemsSummary   ItemsSummary
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalOrders int64
	HasNextPage bool
	HasPrevPage bool
}

type OrderPage struct {
	Orders     []OrderSummary
	Pagination Pagination
}

type StatusCount struct {
	Status Status
	Count  int64
}
