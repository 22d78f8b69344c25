// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
// Provides methods for storing, retrieving, and querying delivery partners
// with their complete state including the set of assigned orders.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetAll retrieves every partner.
	GetAll(ctx context.Context) ([]*partner.Partner, error)

	// GetAllAvailable retrieves partners that can take a new order.
	// A partner qualifies when their status is AVAILABLE and they carry
	// no active order.
	GetAllAvailable(ctx context.Context) ([]*partner.Partner, error)

	// Remove deletes the partner with the given identifier. Orders that
	// still reference the partner are left untouched; the reconciliation
	// job repairs such links.
	Remove(ctx context.Context, id kernel.UUID) error
}
