package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
)

func TestAssetRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New()

	created, err := st.Assets().Create(ctx, &store.Asset{
		Status:   store.StatusActive,
		Location: &store.Location{Latitude: 45.0, Longitude: 9.0},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := st.Assets().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusActive, got.Status)
	require.NotNil(t, got.Location)
	assert.Equal(t, 45.0, got.Location.Latitude)
	assert.Equal(t, 9.0, got.Location.Longitude)

	// Mutating the returned copy must not affect the stored record.
	got.Location.Latitude = 0
	again, err := st.Assets().Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 45.0, again.Location.Latitude)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	st := New()

	_, err := st.Assets().Get(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Elements().Get(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Telecells().Get(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Basestations().Get(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().Get(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTelecellUUIDLookupAndUniqueness(t *testing.T) {
	ctx := context.Background()
	st := New()

	tc, err := st.Telecells().Create(ctx, &store.Telecell{
		UUID:      9001,
		Status:    store.DefaultStatus,
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	byUUID, err := st.Telecells().GetByUUID(ctx, 9001)
	require.NoError(t, err)
	assert.Equal(t, tc.ID, byUUID.ID)

	_, err = st.Telecells().Create(ctx, &store.Telecell{UUID: 9001})
	assert.ErrorIs(t, err, store.ErrDuplicateUUID)

	_, err = st.Telecells().Create(ctx, &store.Telecell{})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestElementAdjacency(t *testing.T) {
	ctx := context.Background()
	st := New()

	asset, err := st.Assets().Create(ctx, &store.Asset{Status: store.StatusActive})
	require.NoError(t, err)
	tc, err := st.Telecells().Create(ctx, &store.Telecell{UUID: 7})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := st.Elements().Create(ctx, &store.Element{
			Status:     store.DefaultStatus,
			AssetID:    &asset.ID,
			TelecellID: &tc.ID,
		})
		require.NoError(t, err)
	}
	_, err = st.Elements().Create(ctx, &store.Element{Status: store.DefaultStatus})
	require.NoError(t, err)

	byAsset, err := st.Elements().ListByAsset(ctx, asset.ID)
	require.NoError(t, err)
	assert.Len(t, byAsset, 3)

	byTC, err := st.Elements().ListByTelecell(ctx, tc.ID)
	require.NoError(t, err)
	assert.Len(t, byTC, 3)
}

func TestElementSearchResolvesAssetLocation(t *testing.T) {
	ctx := context.Background()
	st := New()

	inside, err := st.Assets().Create(ctx, &store.Asset{
		Location: &store.Location{Latitude: 5, Longitude: 5},
	})
	require.NoError(t, err)
	outside, err := st.Assets().Create(ctx, &store.Asset{
		Location: &store.Location{Latitude: 50, Longitude: 50},
	})
	require.NoError(t, err)
	bare, err := st.Assets().Create(ctx, &store.Asset{})
	require.NoError(t, err)

	want, err := st.Elements().Create(ctx, &store.Element{AssetID: &inside.ID})
	require.NoError(t, err)
	_, err = st.Elements().Create(ctx, &store.Element{AssetID: &outside.ID})
	require.NoError(t, err)
	_, err = st.Elements().Create(ctx, &store.Element{AssetID: &bare.ID})
	require.NoError(t, err)
	_, err = st.Elements().Create(ctx, &store.Element{})
	require.NoError(t, err)

	box := spatial.NewRect(spatial.Point{Latitude: 0, Longitude: 0}, spatial.Point{Latitude: 10, Longitude: 10})
	found, err := st.Elements().SearchByAssetBox(ctx, box)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, want.ID, found[0].ID)
}

func TestUpdateClearFields(t *testing.T) {
	ctx := context.Background()
	st := New()

	asset, err := st.Assets().Create(ctx, &store.Asset{
		Location: &store.Location{Latitude: 1, Longitude: 2},
	})
	require.NoError(t, err)

	updated, err := st.Assets().Update(ctx, asset.ID, store.AssetUpdate{ClearLocation: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Location)

	tc, err := st.Telecells().Create(ctx, &store.Telecell{UUID: 11})
	require.NoError(t, err)
	el, err := st.Elements().Create(ctx, &store.Element{TelecellID: &tc.ID})
	require.NoError(t, err)

	cleared, err := st.Elements().Update(ctx, el.ID, store.ElementUpdate{ClearTelecell: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.TelecellID)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := New()

	asset, err := st.Assets().Create(ctx, &store.Asset{Status: store.StatusActive})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = st.WithTx(ctx, func(tx store.Store) error {
		if err := tx.Assets().Delete(ctx, asset.ID); err != nil {
			return err
		}
		if _, err := tx.Elements().Create(ctx, &store.Element{}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The delete and the create were both discarded.
	_, err = st.Assets().Get(ctx, asset.ID)
	assert.NoError(t, err)
	els, err := st.Elements().List(ctx, store.Page{})
	require.NoError(t, err)
	assert.Empty(t, els)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	st := New()

	err := st.WithTx(ctx, func(tx store.Store) error {
		a, err := tx.Assets().Create(ctx, &store.Asset{Status: store.StatusActive})
		if err != nil {
			return err
		}
		_, err = tx.Elements().Create(ctx, &store.Element{AssetID: &a.ID})
		return err
	})
	require.NoError(t, err)

	assetsList, err := st.Assets().List(ctx, store.Page{})
	require.NoError(t, err)
	require.Len(t, assetsList, 1)
	els, err := st.Elements().ListByAsset(ctx, assetsList[0].ID)
	require.NoError(t, err)
	assert.Len(t, els, 1)
}

func TestUserUniqueness(t *testing.T) {
	ctx := context.Background()
	st := New()

	_, err := st.Users().Create(ctx, &store.User{Username: "ada", Role: store.DefaultRole})
	require.NoError(t, err)
	_, err = st.Users().Create(ctx, &store.User{Username: "ada"})
	assert.ErrorIs(t, err, store.ErrDuplicateUUID)
	_, err = st.Users().Create(ctx, &store.User{})
	assert.ErrorIs(t, err, store.ErrValidation)

	got, err := st.Users().GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, store.RoleOperator, got.Role)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	st := New()

	n, err := st.Assets().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	a, err := st.Assets().Create(ctx, &store.Asset{Status: store.DefaultStatus})
	require.NoError(t, err)
	_, err = st.Elements().Create(ctx, &store.Element{AssetID: &a.ID, Status: store.DefaultStatus})
	require.NoError(t, err)

	n, err = st.Assets().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = st.Elements().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, st.Assets().Delete(ctx, a.ID))
	n, err = st.Assets().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
