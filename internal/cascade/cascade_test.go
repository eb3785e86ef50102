package cascade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminet-io/luminet/internal/store"
	"github.com/luminet-io/luminet/internal/store/memory"
)

// graph builds asset -> 2 elements, both on one telecell, telecell on a
// basestation, plus a detached element owned by the asset only.
type graph struct {
	asset       *store.Asset
	el1, el2    *store.Element
	bare        *store.Element
	telecell    *store.Telecell
	basestation *store.Basestation
}

func buildGraph(t *testing.T, st store.Store) graph {
	t.Helper()
	ctx := context.Background()

	bs, err := st.Basestations().Create(ctx, &store.Basestation{UUID: 500, Version: store.DefaultBasestationVersion})
	require.NoError(t, err)
	tc, err := st.Telecells().Create(ctx, &store.Telecell{UUID: 100, BasestationID: &bs.ID, Status: store.StatusActive})
	require.NoError(t, err)
	asset, err := st.Assets().Create(ctx, &store.Asset{Status: store.StatusActive})
	require.NoError(t, err)

	el1, err := st.Elements().Create(ctx, &store.Element{Status: store.StatusActive, AssetID: &asset.ID, TelecellID: &tc.ID})
	require.NoError(t, err)
	el2, err := st.Elements().Create(ctx, &store.Element{Status: store.StatusActive, AssetID: &asset.ID, TelecellID: &tc.ID})
	require.NoError(t, err)
	bare, err := st.Elements().Create(ctx, &store.Element{Status: store.StatusActive, AssetID: &asset.ID})
	require.NoError(t, err)

	return graph{asset: asset, el1: el1, el2: el2, bare: bare, telecell: tc, basestation: bs}
}

func TestSoftDeleteAssetCascadesTwoLevels(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	g := buildGraph(t, st)

	asset, res, err := SoftDeleteAsset(ctx, st, g.asset.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusDeleted, asset.Status)
	assert.ElementsMatch(t, []int64{g.el1.ID, g.el2.ID, g.bare.ID}, res.ElementIDs)
	// Shared telecell reported once.
	assert.Equal(t, []int64{g.telecell.ID}, res.TelecellIDs)

	// Everything still exists, marked DELETED.
	for _, id := range []int64{g.el1.ID, g.el2.ID, g.bare.ID} {
		el, err := st.Elements().Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, store.StatusDeleted, el.Status)
	}
	tc, err := st.Telecells().Get(ctx, g.telecell.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusDeleted, tc.Status)

	// The cascade stops at telecells.
	bs, err := st.Basestations().Get(ctx, g.basestation.ID)
	require.NoError(t, err)
	assert.NotEqual(t, store.StatusDeleted, bs.Status)
}

func TestSoftDeleteAssetIdempotent(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	g := buildGraph(t, st)

	_, _, err := SoftDeleteAsset(ctx, st, g.asset.ID)
	require.NoError(t, err)

	asset, res, err := SoftDeleteAsset(ctx, st, g.asset.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusDeleted, asset.Status)
	assert.Empty(t, res.ElementIDs)
	assert.Empty(t, res.TelecellIDs)
}

func TestSoftDeleteElementLeavesNeighbors(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	g := buildGraph(t, st)

	el, err := SoftDeleteElement(ctx, st, g.el1.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusDeleted, el.Status)

	asset, err := st.Assets().Get(ctx, g.asset.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusActive, asset.Status)
	tc, err := st.Telecells().Get(ctx, g.telecell.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusActive, tc.Status)
}

func TestPruneAssetRemovesElementsKeepsTelecells(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	g := buildGraph(t, st)

	res, err := PruneAsset(ctx, st, g.asset.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{g.el1.ID, g.el2.ID, g.bare.ID}, res.ElementIDs)

	_, err = st.Assets().Get(ctx, g.asset.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	for _, id := range []int64{g.el1.ID, g.el2.ID, g.bare.ID} {
		_, err := st.Elements().Get(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound)
	}

	tc, err := st.Telecells().Get(ctx, g.telecell.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusActive, tc.Status)
}

func TestPruneTelecellClearsElementRefs(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	g := buildGraph(t, st)

	res, err := PruneTelecell(ctx, st, g.telecell.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{g.el1.ID, g.el2.ID}, res.ElementIDs)

	_, err = st.Telecells().Get(ctx, g.telecell.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	for _, id := range []int64{g.el1.ID, g.el2.ID} {
		el, err := st.Elements().Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, el.TelecellID)
		assert.Equal(t, store.StatusActive, el.Status)
	}
}

func TestPruneBasestationClearsTelecellRefs(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	g := buildGraph(t, st)

	res, err := PruneBasestation(ctx, st, g.basestation.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{g.telecell.ID}, res.TelecellIDs)

	_, err = st.Basestations().Get(ctx, g.basestation.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	tc, err := st.Telecells().Get(ctx, g.telecell.ID)
	require.NoError(t, err)
	assert.Nil(t, tc.BasestationID)
}

func TestCascadeMissingRoot(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	_, _, err := SoftDeleteAsset(ctx, st, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = PruneAsset(ctx, st, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = PruneTelecell(ctx, st, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = PruneBasestation(ctx, st, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
