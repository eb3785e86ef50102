package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/services/asset"
	"github.com/luminet-io/luminet/internal/services/telecell"
	"github.com/luminet-io/luminet/internal/store"
)

func TestAssembleAssetWithLocation(t *testing.T) {
	a := assembleAsset(&asset.Detail{
		Asset: &store.Asset{
			ID:       7,
			Status:   store.StatusActive,
			Location: &store.Location{Latitude: 55.7, Longitude: 12.6},
		},
		ElementIDs: []int64{1, 2},
	})

	assert.Equal(t, int64(7), a.Id)
	assert.Equal(t, lightingv1.ActivityStatusActive, a.Status)
	require.NotNil(t, a.Location)
	assert.Equal(t, 55.7, a.Location.Latitude)
	assert.Equal(t, 12.6, a.Location.Longitude)
	assert.False(t, a.NoLocation)
	assert.Equal(t, []int64{1, 2}, a.ElementIds)
}

func TestAssembleAssetWithoutLocation(t *testing.T) {
	a := assembleAsset(&asset.Detail{
		Asset: &store.Asset{ID: 7, Status: store.StatusInactive},
	})

	assert.Nil(t, a.Location)
	assert.True(t, a.NoLocation)
}

func TestAssembleTelecell(t *testing.T) {
	bsID := int64(3)
	now := time.Now().UTC()
	tc := assembleTelecell(&telecell.Detail{
		Telecell: &store.Telecell{
			ID:            9,
			UUID:          900123,
			Relay:         true,
			Status:        store.StatusActive,
			BasestationID: &bsID,
			UpdatedAt:     now,
		},
		ElementIDs: []int64{4, 5},
		Basestation: &store.Basestation{
			ID:      3,
			UUID:    77,
			Version: 3,
			Status:  store.StatusActive,
		},
	})

	assert.Equal(t, int64(900123), tc.Uuid)
	assert.True(t, tc.Relay)
	assert.True(t, tc.NoLocation)
	require.NotNil(t, tc.BasestationId)
	assert.Equal(t, int64(3), *tc.BasestationId)
	assert.Equal(t, []int64{4, 5}, tc.ElementIds)
	require.NotNil(t, tc.Basestation)
	assert.Equal(t, int64(77), tc.Basestation.Uuid)
	assert.True(t, tc.Basestation.NoLocation)
	require.NotNil(t, tc.UpdatedAt)
	assert.Equal(t, now.Unix(), tc.UpdatedAt.AsTime().Unix())
}

func TestStatusParam(t *testing.T) {
	assert.Nil(t, statusParam(nil))

	st := lightingv1.ActivityStatusActive
	got := statusParam(&st)
	require.NotNil(t, got)
	assert.Equal(t, store.StatusActive, *got)
}

func TestCornersRequiresBothCorners(t *testing.T) {
	_, _, err := corners(nil)
	assert.ErrorIs(t, err, store.ErrValidation)

	_, _, err = corners(&lightingv1.Rectangle{Lo: &lightingv1.Location{}})
	assert.ErrorIs(t, err, store.ErrValidation)

	a, b, err := corners(&lightingv1.Rectangle{
		Lo: &lightingv1.Location{Latitude: 10, Longitude: 0},
		Hi: &lightingv1.Location{Latitude: 0, Longitude: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, a.Latitude)
	assert.Equal(t, 10.0, b.Longitude)
}
