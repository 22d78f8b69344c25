// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and partner assignment.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Customer        string         `gorm:"not null"`
	CustomerPhone   string         `gorm:"not null"`
	PickupAddress   string         `gorm:"not null"`
	DeliveryAddress string         `gorm:"not null"`
	Pickup          GeoPointDTO    `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery        GeoPointDTO    `gorm:"embedded;embeddedPrefix:delivery_"`
	Items           pq.StringArray `gorm:"type:text[]"`
	Status          int            `gorm:"index"`
	PartnerID       *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded WGS84 coordinates within a table.
type GeoPointDTO struct {
	Lng float64
	Lat float64
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional partner link.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Customer:        aggregate.Customer(),
		CustomerPhone:   aggregate.CustomerPhone(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Pickup: GeoPointDTO{
			Lng: aggregate.PickupPoint().Longitude(),
			Lat: aggregate.PickupPoint().Latitude(),
		},
		Delivery: GeoPointDTO{
			Lng: aggregate.DeliveryPoint().Longitude(),
			Lat: aggregate.DeliveryPoint().Latitude(),
		},
		Items:     pq.StringArray(aggregate.Items()),
		Status:    int(aggregate.Status()),
		PartnerID: partnerID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and partner link using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	pickup, err := kernel.NewGeoPoint(dto.Pickup.Lng, dto.Pickup.Lat)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewGeoPoint(dto.Delivery.Lng, dto.Delivery.Lat)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		Customer:        dto.Customer,
		CustomerPhone:   dto.CustomerPhone,
		PickupAddress:   dto.PickupAddress,
		DeliveryAddress: dto.DeliveryAddress,
		PickupPoint:     pickup,
		DeliveryPoint:   delivery,
		Items:           dto.Items,
	}

	return order.RestoreOrder(id, details, order.Status(dto.Status), partnerID)
}
