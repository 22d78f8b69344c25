package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and linked partner.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStatus retrieves all orders in the given status.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllByPartner retrieves all orders whose active assignment references
	// the given partner.
	GetAllByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)

	// Remove deletes the order with the given identifier.
	Remove(ctx context.Context, id kernel.UUID) error
}
