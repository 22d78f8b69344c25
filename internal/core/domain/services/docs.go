// Package services contains domain services that coordinate logic spanning
// multiple aggregates. PartnerSelector implements nearest-available partner
// selection for auto-assignment.
package services
