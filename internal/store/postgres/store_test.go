package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/pkg/database"
)

// testStore connects to the database named by LUMINET_TEST_DATABASE_URL
// and rebuilds the schema. Tests here are skipped when the variable is
// unset so the suite stays runnable without a live server.
func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("LUMINET_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("LUMINET_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := database.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, Reset(ctx, db))
	require.NoError(t, Migrate(ctx, db))
	return New(db)
}

func TestPostgresAssetLifecycle(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	created, err := st.Assets().Create(ctx, &store.Asset{
		Status:   store.StatusActive,
		Location: &store.Location{Latitude: 55.7, Longitude: 12.6},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.Location)
	assert.Equal(t, 55.7, created.Location.Latitude)

	// A status-only update leaves the coordinate alone.
	deleted := store.StatusDeleted
	upd, err := st.Assets().Update(ctx, created.ID, store.AssetUpdate{Status: &deleted})
	require.NoError(t, err)
	assert.Equal(t, store.StatusDeleted, upd.Status)
	require.NotNil(t, upd.Location)
	assert.Equal(t, 12.6, upd.Location.Longitude)

	// Clearing the coordinate nulls both columns.
	upd, err = st.Assets().Update(ctx, created.ID, store.AssetUpdate{ClearLocation: true})
	require.NoError(t, err)
	assert.Nil(t, upd.Location)

	_, err = st.Assets().Get(ctx, created.ID+1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresListPaging(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		a, err := st.Assets().Create(ctx, &store.Asset{Status: store.StatusActive})
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}

	page, err := st.Assets().List(ctx, store.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[1], page[0].ID)
	assert.Equal(t, ids[2], page[1].ID)

	rest, err := st.Assets().List(ctx, store.Page{Offset: 4})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, ids[4], rest[0].ID)

	all, err := st.Assets().List(ctx, store.Page{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	n, err := st.Assets().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
}

func TestPostgresConstraintMapping(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	// A dangling asset reference trips the foreign key.
	missing := int64(9999)
	_, err := st.Elements().Create(ctx, &store.Element{AssetID: &missing})
	assert.ErrorIs(t, err, store.ErrNotFound)

	// A second telecell with the same uuid trips the unique index.
	_, err = st.Telecells().Create(ctx, &store.Telecell{UUID: 42, Status: store.StatusInactive})
	require.NoError(t, err)
	_, err = st.Telecells().Create(ctx, &store.Telecell{UUID: 42, Status: store.StatusInactive})
	assert.ErrorIs(t, err, store.ErrDuplicateUUID)

	// A half-set coordinate pair trips the location check.
	_, err = st.q.Exec(ctx,
		"INSERT INTO assets (status, latitude) VALUES ($1, $2)",
		store.StatusActive, 55.7)
	assert.ErrorIs(t, translate(err, "insert asset"), store.ErrValidation)
}

func TestPostgresTelecellUpdateBuilder(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	bs, err := st.Basestations().Create(ctx, &store.Basestation{
		UUID:    900001,
		Status:  store.StatusInactive,
		Version: store.DefaultBasestationVersion,
	})
	require.NoError(t, err)

	created, err := st.Telecells().Create(ctx, &store.Telecell{UUID: 7, Status: store.StatusInactive})
	require.NoError(t, err)
	assert.False(t, created.Relay)

	relay := true
	upd, err := st.Telecells().Update(ctx, created.ID, store.TelecellUpdate{Relay: &relay})
	require.NoError(t, err)
	assert.True(t, upd.Relay)
	assert.Equal(t, store.StatusInactive, upd.Status)
	assert.False(t, upd.UpdatedAt.IsZero())

	active := store.StatusActive
	upd, err = st.Telecells().Update(ctx, created.ID, store.TelecellUpdate{
		Status:        &active,
		Location:      &store.Location{Latitude: 55.6, Longitude: 12.5},
		BasestationID: &bs.ID,
	})
	require.NoError(t, err)
	assert.True(t, upd.Relay)
	assert.Equal(t, store.StatusActive, upd.Status)
	require.NotNil(t, upd.Location)
	require.NotNil(t, upd.BasestationID)
	assert.Equal(t, bs.ID, *upd.BasestationID)

	upd, err = st.Telecells().Update(ctx, created.ID, store.TelecellUpdate{
		ClearLocation:    true,
		ClearBasestation: true,
	})
	require.NoError(t, err)
	assert.Nil(t, upd.Location)
	assert.Nil(t, upd.BasestationID)

	got, err := st.Telecells().GetByUUID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestPostgresWithTxRollback(t *testing.T) {
	ctx := context.Background()
	st := testStore(t)

	failed := errors.New("write rejected")
	err := st.WithTx(ctx, func(tx store.Store) error {
		if _, err := tx.Assets().Create(ctx, &store.Asset{Status: store.StatusActive}); err != nil {
			return err
		}
		return failed
	})
	assert.ErrorIs(t, err, failed)

	n, err := st.Assets().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
