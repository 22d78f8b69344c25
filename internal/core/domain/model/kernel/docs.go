// Package kernel contains the shared value objects of the domain model:
// UUID identities and geographic points.
//
// Both types are immutable, created only through validating constructors,
// and detect zero-value misuse via Validate. GeoPoint follows the GeoJSON
// Point convention ([longitude, latitude]) on the wire and provides
// haversine distance for partner selection.
package kernel
