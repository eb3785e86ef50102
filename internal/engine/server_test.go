package engine

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/store/memory"
	"github.com/luminet-io/luminet/pkg/config"
	"github.com/luminet-io/luminet/pkg/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	e := NewEngine(config.New())
	e.SetLogger(logger.NewDiscard())
	e.SetStore(memory.New())
	return NewServer(e)
}

type assetListStream struct {
	grpc.ServerStream
	ctx     context.Context
	batches []*lightingv1.ListAssetsResponse
}

func (s *assetListStream) Context() context.Context { return s.ctx }

func (s *assetListStream) Send(m *lightingv1.ListAssetsResponse) error {
	s.batches = append(s.batches, m)
	return nil
}

type assetSearchStream struct {
	grpc.ServerStream
	ctx     context.Context
	batches []*lightingv1.SearchAssetsByLocationResponse
}

func (s *assetSearchStream) Context() context.Context { return s.ctx }

func (s *assetSearchStream) Send(m *lightingv1.SearchAssetsByLocationResponse) error {
	s.batches = append(s.batches, m)
	return nil
}

func createAsset(t *testing.T, srv *Server, lat, long float64) *lightingv1.Asset {
	t.Helper()
	resp, err := srv.CreateAsset(context.Background(), &lightingv1.CreateAssetRequest{
		Location: &lightingv1.Location{Latitude: lat, Longitude: long},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	return resp.Asset
}

func createElementOn(t *testing.T, srv *Server, assetID int64) *lightingv1.Element {
	t.Helper()
	resp, err := srv.CreateElement(context.Background(), &lightingv1.CreateElementRequest{AssetId: assetID})
	require.NoError(t, err)
	require.True(t, resp.Success)
	return resp.Element
}

func TestAssetLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	a := createAsset(t, srv, 55.7, 12.6)
	assert.Equal(t, lightingv1.ActivityStatusInactive, a.Status)
	assert.False(t, a.NoLocation)

	el1 := createElementOn(t, srv, a.Id)
	el2 := createElementOn(t, srv, a.Id)

	got, err := srv.GetAsset(ctx, &lightingv1.GetAssetRequest{Id: a.Id})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{el1.Id, el2.Id}, got.Asset.ElementIds)

	active := lightingv1.ActivityStatusActive
	upd, err := srv.UpdateAsset(ctx, &lightingv1.UpdateAssetRequest{Id: a.Id, Status: &active})
	require.NoError(t, err)
	assert.Equal(t, lightingv1.ActivityStatusActive, upd.Asset.Status)

	search := &assetSearchStream{ctx: ctx}
	err = srv.SearchAssetsByLocation(&lightingv1.SearchAssetsByLocationRequest{
		Rectangle: &lightingv1.Rectangle{
			Lo: &lightingv1.Location{Latitude: 55, Longitude: 12},
			Hi: &lightingv1.Location{Latitude: 56, Longitude: 13},
		},
	}, search)
	require.NoError(t, err)
	require.Len(t, search.batches, 1)
	require.Len(t, search.batches[0].Assets, 1)
	assert.Equal(t, a.Id, search.batches[0].Assets[0].Id)

	del, err := srv.DeleteAsset(ctx, &lightingv1.DeleteAssetRequest{Id: a.Id})
	require.NoError(t, err)
	assert.True(t, del.Success)
	assert.Equal(t, lightingv1.ActivityStatusDeleted, del.Asset.Status)
	assert.ElementsMatch(t, []int64{el1.Id, el2.Id}, del.DeletedElementIds)

	gotEl, err := srv.GetElement(ctx, &lightingv1.GetElementRequest{Id: el1.Id})
	require.NoError(t, err)
	assert.Equal(t, lightingv1.ActivityStatusDeleted, gotEl.Element.Status)

	pruned, err := srv.PruneAsset(ctx, &lightingv1.PruneAssetRequest{Id: a.Id})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{el1.Id, el2.Id}, pruned.PrunedElementIds)

	_, err = srv.GetAsset(ctx, &lightingv1.GetAssetRequest{Id: a.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = srv.GetElement(ctx, &lightingv1.GetElementRequest{Id: el1.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTelecellBatchAssociation(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	bs, err := srv.CreateBasestation(ctx, &lightingv1.CreateBasestationRequest{Uuid: 500})
	require.NoError(t, err)
	assert.Equal(t, int32(3), bs.Basestation.Version)

	tc, err := srv.CreateTelecell(ctx, &lightingv1.CreateTelecellRequest{
		Uuid:          900123,
		Relay:         true,
		BasestationId: &bs.Basestation.Id,
	})
	require.NoError(t, err)
	assert.True(t, tc.Telecell.Relay)

	a := createAsset(t, srv, 55.7, 12.6)
	el1 := createElementOn(t, srv, a.Id)
	el2 := createElementOn(t, srv, a.Id)

	added, err := srv.AddTelecellToElements(ctx, &lightingv1.AddTelecellToElementsRequest{
		Uuid:       900123,
		ElementIds: []int64{el1.Id, el2.Id},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{el1.Id, el2.Id}, added.Telecell.ElementIds)

	// Identified by uuid alone, with the basestation resolved inline.
	got, err := srv.GetTelecell(ctx, &lightingv1.GetTelecellRequest{Uuid: 900123})
	require.NoError(t, err)
	require.NotNil(t, got.Telecell.Basestation)
	assert.Equal(t, int64(500), got.Telecell.Basestation.Uuid)
	assert.ElementsMatch(t, []int64{el1.Id, el2.Id}, got.Telecell.ElementIds)

	// A batch naming an unknown element fails whole and changes nothing.
	_, err = srv.AddTelecellToElements(ctx, &lightingv1.AddTelecellToElementsRequest{
		Id:         tc.Telecell.Id,
		ElementIds: []int64{el1.Id, 9999},
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	removed, err := srv.RemoveTelecellFromElements(ctx, &lightingv1.RemoveTelecellFromElementsRequest{
		Id:         tc.Telecell.Id,
		ElementIds: []int64{el1.Id},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{el2.Id}, removed.Telecell.ElementIds)
}

func TestListAssetsBatchesAndWindow(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, createAsset(t, srv, float64(i), float64(i)).Id)
	}

	stream := &assetListStream{ctx: ctx}
	err := srv.ListAssets(&lightingv1.ListAssetsRequest{Limit: 2, Offset: 1}, stream)
	require.NoError(t, err)
	require.Len(t, stream.batches, 1)
	require.Len(t, stream.batches[0].Assets, 2)
	assert.Equal(t, ids[1], stream.batches[0].Assets[0].Id)
	assert.Equal(t, ids[2], stream.batches[0].Assets[1].Id)
}

func TestErrorMapping(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	_, err := srv.GetAsset(ctx, &lightingv1.GetAssetRequest{Id: 42})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = srv.GetTelecell(ctx, &lightingv1.GetTelecellRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.CreateTelecell(ctx, &lightingv1.CreateTelecellRequest{Uuid: 7})
	require.NoError(t, err)
	_, err = srv.CreateTelecell(ctx, &lightingv1.CreateTelecellRequest{Uuid: 7})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = srv.CreateTelecell(ctx, &lightingv1.CreateTelecellRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// A missing asset reference is a bad argument, not a lookup miss.
	_, err = srv.CreateElement(ctx, &lightingv1.CreateElementRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	created, err := srv.CreateUser(ctx, &lightingv1.CreateUserRequest{Username: "ops", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, lightingv1.RoleOperator, created.User.Role)

	got, err := srv.GetUser(ctx, &lightingv1.GetUserRequest{Username: "ops"})
	require.NoError(t, err)
	assert.Equal(t, created.User.Id, got.User.Id)

	admin := lightingv1.RoleAdmin
	upd, err := srv.UpdateUser(ctx, &lightingv1.UpdateUserRequest{Id: created.User.Id, Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, lightingv1.RoleAdmin, upd.User.Role)

	_, err = srv.DeleteUser(ctx, &lightingv1.DeleteUserRequest{Username: "ops"})
	require.NoError(t, err)
	_, err = srv.GetUser(ctx, &lightingv1.GetUserRequest{Username: "ops"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestMetricsCounters(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)

	createAsset(t, srv, 1, 1)
	_, err := srv.GetAsset(ctx, &lightingv1.GetAssetRequest{Id: 9999})
	require.Error(t, err)

	m := srv.engine.GetMetrics()
	assert.Equal(t, int64(1), m["requests_processed"])
	assert.Equal(t, int64(1), m["errors"])
	assert.Equal(t, int64(0), m["ongoing_operations"])
}

func TestPrometheusCollectors(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	registry := prometheus.NewRegistry()
	srv.engine.SetMetricsRegistry(registry)

	createAsset(t, srv, 1, 1)
	createAsset(t, srv, 2, 2)
	_, err := srv.GetAsset(ctx, &lightingv1.GetAssetRequest{Id: 9999})
	require.Error(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)

	found := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				key += "/" + l.GetValue()
			}
			switch {
			case m.Counter != nil:
				found[key] = m.Counter.GetValue()
			case m.Gauge != nil:
				found[key] = m.Gauge.GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, found["luminet_requests_total/create asset"])
	assert.Equal(t, 1.0, found["luminet_errors_total/get asset"])
	assert.Equal(t, 2.0, found["luminet_entities/asset"])
	assert.Equal(t, 0.0, found["luminet_entities/element"])
}
