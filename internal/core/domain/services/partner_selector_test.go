package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partnerAt(t *testing.T, name string, lng, lat float64) *partner.Partner {
	t.Helper()
	location, err := kernel.NewGeoPoint(lng, lat)
	require.NoError(t, err)
	p, err := partner.NewPartner(kernel.NewUUID(), name, name+"@example.com", "9876543210", location)
	require.NoError(t, err)
	return p
}

func TestPartnerSelector_SelectNearest(t *testing.T) {
	selector := services.NewPartnerSelector()
	pickup, err := kernel.NewGeoPoint(77.5946, 12.9716)
	require.NoError(t, err)

	t.Run("picks the geographically nearest available partner", func(t *testing.T) {
		near := partnerAt(t, "near", 77.60, 12.97)
		far := partnerAt(t, "far", 77.70, 13.19)
		farther := partnerAt(t, "farther", 78.50, 17.40)

		chosen, err := selector.SelectNearest(pickup, []*partner.Partner{far, near, farther})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(near))
	})

	t.Run("skips unavailable partners even when nearest", func(t *testing.T) {
		near := partnerAt(t, "near", 77.60, 12.97)
		require.NoError(t, near.ChangeStatus(partner.OnBreak))
		far := partnerAt(t, "far", 77.70, 13.19)

		chosen, err := selector.SelectNearest(pickup, []*partner.Partner{near, far})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(far))
	})

	t.Run("skips loaded partners even when nearest", func(t *testing.T) {
		near := partnerAt(t, "near", 77.60, 12.97)
		require.NoError(t, near.TakeOrder(kernel.NewUUID()))
		far := partnerAt(t, "far", 77.70, 13.19)

		chosen, err := selector.SelectNearest(pickup, []*partner.Partner{near, far})

		require.NoError(t, err)
		assert.True(t, chosen.IsEqual(far))
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := selector.SelectNearest(pickup, nil)
		require.ErrorIs(t, err, services.ErrNoAvailablePartners)
	})

	t.Run("no available candidates", func(t *testing.T) {
		offline := partnerAt(t, "offline", 77.60, 12.97)
		require.NoError(t, offline.ChangeStatus(partner.Offline))

		_, err := selector.SelectNearest(pickup, []*partner.Partner{offline})

		require.ErrorIs(t, err, services.ErrNoAvailablePartners)
	})

	t.Run("rejects unconstructed partner", func(t *testing.T) {
		var zero partner.Partner

		_, err := selector.SelectNearest(pickup, []*partner.Partner{&zero})

		require.Error(t, err)
	})
}
