// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally narrowed to a single lifecycle
// status. Results come back newest first.
//
// Example:
//
//	status := order.Pending
//	query, _ := NewGetOrdersQuery(&status)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list.
// status is optional; nil returns every order.
func NewGetOrdersQuery(status *order.Status) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

// OrderResponse represents an order in the read model, including the
// persistence timestamps that the aggregate itself does not carry.
type OrderResponse struct {
	ID              kernel.UUID
	Customer        string
	CustomerPhone   string
	PickupAddress   string
	DeliveryAddress string
	PickupPoint     kernel.GeoPoint
	DeliveryPoint   kernel.GeoPoint
	Items           []string
	Status          order.Status
	PartnerID       *kernel.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
