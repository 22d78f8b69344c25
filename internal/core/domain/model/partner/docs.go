// Package partner provides the Partner aggregate for delivery partners.
//
// A partner carries an availability status and the set of orders assigned to
// them. The aggregate keeps the two consistent: taking an order requires
// AVAILABLE and an empty set and moves the partner to ON_DELIVERY; releasing
// the last order returns the partner to AVAILABLE; explicit status updates
// cannot declare a loaded partner AVAILABLE.
package partner
