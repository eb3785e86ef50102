package telecell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/internal/store/memory"
	"github.com/luminet-io/luminet/pkg/logger"
)

func newService(t *testing.T) (*Service, store.Store) {
	t.Helper()
	st := memory.New()
	return NewService(st, logger.NewDiscard()), st
}

func seedElements(t *testing.T, st store.Store, n int) []int64 {
	t.Helper()
	ctx := context.Background()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		el, err := st.Elements().Create(ctx, &store.Element{Status: store.DefaultStatus})
		require.NoError(t, err)
		ids = append(ids, el.ID)
	}
	return ids
}

func TestCreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	d, err := svc.Create(ctx, CreateParams{UUID: 42})
	require.NoError(t, err)
	assert.Equal(t, store.StatusInactive, d.Telecell.Status)
	assert.False(t, d.Telecell.UpdatedAt.IsZero())
	assert.Nil(t, d.Telecell.Location)
	assert.Nil(t, d.Basestation)
}

func TestCreateRequiresUUID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.Create(ctx, CreateParams{})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestResolveByUUID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.Create(ctx, CreateParams{UUID: 42})
	require.NoError(t, err)

	byUUID, err := svc.Get(ctx, 0, 42)
	require.NoError(t, err)
	assert.Equal(t, created.Telecell.ID, byUUID.Telecell.ID)

	byID, err := svc.Get(ctx, created.Telecell.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), byID.Telecell.UUID)

	_, err = svc.Get(ctx, 0, 0)
	assert.ErrorIs(t, err, store.ErrMissingIdentifier)
}

func TestAddToElements(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)
	elIDs := seedElements(t, st, 3)

	created, err := svc.Create(ctx, CreateParams{UUID: 7})
	require.NoError(t, err)

	d, err := svc.AddToElements(ctx, 0, 7, elIDs)
	require.NoError(t, err)
	assert.ElementsMatch(t, elIDs, d.ElementIDs)

	for _, id := range elIDs {
		el, err := st.Elements().Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, el.TelecellID)
		assert.Equal(t, created.Telecell.ID, *el.TelecellID)
	}
}

func TestAddToElementsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)
	elIDs := seedElements(t, st, 2)

	_, err := svc.Create(ctx, CreateParams{UUID: 7})
	require.NoError(t, err)

	batch := append(append([]int64{}, elIDs...), 9999)
	_, err = svc.AddToElements(ctx, 0, 7, batch)
	require.ErrorIs(t, err, store.ErrPartialBatch)

	// No element was associated.
	for _, id := range elIDs {
		el, err := st.Elements().Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, el.TelecellID)
	}
}

func TestRemoveFromElements(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)
	elIDs := seedElements(t, st, 2)

	_, err := svc.Create(ctx, CreateParams{UUID: 7})
	require.NoError(t, err)
	_, err = svc.AddToElements(ctx, 0, 7, elIDs)
	require.NoError(t, err)

	d, err := svc.RemoveFromElements(ctx, 0, 7, elIDs)
	require.NoError(t, err)
	assert.Empty(t, d.ElementIDs)

	for _, id := range elIDs {
		el, err := st.Elements().Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, el.TelecellID)
	}
}

func TestRemoveFromElementsRejectsForeignElement(t *testing.T) {
	ctx := context.Background()
	svc, st := newService(t)
	elIDs := seedElements(t, st, 2)

	_, err := svc.Create(ctx, CreateParams{UUID: 7})
	require.NoError(t, err)
	other, err := svc.Create(ctx, CreateParams{UUID: 8})
	require.NoError(t, err)

	_, err = svc.AddToElements(ctx, 0, 7, elIDs[:1])
	require.NoError(t, err)
	_, err = svc.AddToElements(ctx, other.Telecell.ID, 0, elIDs[1:])
	require.NoError(t, err)

	// One of the two elements belongs to the other telecell; nothing
	// may change.
	_, err = svc.RemoveFromElements(ctx, 0, 7, elIDs)
	require.ErrorIs(t, err, store.ErrPartialBatch)

	el, err := st.Elements().Get(ctx, elIDs[0])
	require.NoError(t, err)
	assert.NotNil(t, el.TelecellID)
}

func TestUpdateRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.Create(ctx, CreateParams{UUID: 7})
	require.NoError(t, err)

	active := store.StatusActive
	updated, err := svc.Update(ctx, created.Telecell.ID, 0, store.TelecellUpdate{Status: &active})
	require.NoError(t, err)
	assert.Equal(t, store.StatusActive, updated.Telecell.Status)
	assert.False(t, updated.Telecell.UpdatedAt.Before(created.Telecell.UpdatedAt))
}

func TestUpdateRejectsMissingBasestation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.Create(ctx, CreateParams{UUID: 7})
	require.NoError(t, err)

	missing := int64(9999)
	_, err = svc.Update(ctx, created.Telecell.ID, 0, store.TelecellUpdate{BasestationID: &missing})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
