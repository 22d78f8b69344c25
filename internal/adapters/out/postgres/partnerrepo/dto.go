// Package partnerrepo provides data transfer objects and mapping functions for
// partner persistence, converting between the partner aggregate and its
// database representation.
package partnerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// The assigned order set is stored inline as a uuid text array; the unique
// index on email backs the duplicate-registration check.
type PartnerDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"not null"`
	Email          string         `gorm:"uniqueIndex;not null"`
	Phone          string         `gorm:"not null"`
	Location       GeoPointDTO    `gorm:"embedded;embeddedPrefix:location_"`
	Status         int            `gorm:"index"`
	AssignedOrders pq.StringArray `gorm:"type:text[]"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// GeoPointDTO represents embedded WGS84 coordinates within a table.
type GeoPointDTO struct {
	Lng float64
	Lat float64
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	assigned := aggregate.AssignedOrders()
	rawOrders := make(pq.StringArray, 0, len(assigned))
	for _, orderID := range assigned {
		rawOrders = append(rawOrders, orderID.String())
	}

	return PartnerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Phone: aggregate.Phone(),
		Location: GeoPointDTO{
			Lng: aggregate.Location().Longitude(),
			Lat: aggregate.Location().Latitude(),
		},
		Status:         int(aggregate.Status()),
		AssignedOrders: rawOrders,
	}
}

// toDomain converts a database DTO to a partner domain aggregate using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lng, dto.Location.Lat)
	if err != nil {
		return nil, err
	}

	assigned := make([]kernel.UUID, 0, len(dto.AssignedOrders))
	for _, raw := range dto.AssignedOrders {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		assigned = append(assigned, orderID)
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		location,
		partner.Status(dto.Status),
		assigned,
	)
}
