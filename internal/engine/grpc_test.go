package engine

import (
	"context"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	lightingv1 "github.com/luminet-io/luminet/api/lighting/v1"
	"github.com/luminet-io/luminet/internal/store/memory"
	"github.com/luminet-io/luminet/pkg/config"
	"github.com/luminet-io/luminet/pkg/logger"
)

// dialTestServer serves the full surface over an in-memory listener so
// requests cross the real marshal/unmarshal path instead of calling the
// handlers directly.
func dialTestServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	e := NewEngine(config.New())
	e.SetLogger(logger.NewDiscard())
	e.SetStore(memory.New())

	srv := grpc.NewServer()
	e.SetGRPCServer(srv)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWireRoundTrip(t *testing.T) {
	ctx := context.Background()
	conn := dialTestServer(t)
	assets := lightingv1.NewAssetServiceClient(conn)
	elements := lightingv1.NewElementServiceClient(conn)

	created, err := assets.CreateAsset(ctx, &lightingv1.CreateAssetRequest{
		Location: &lightingv1.Location{Latitude: 55.7, Longitude: 12.6},
	})
	require.NoError(t, err)
	require.True(t, created.Success)

	el, err := elements.CreateElement(ctx, &lightingv1.CreateElementRequest{AssetId: created.Asset.Id})
	require.NoError(t, err)

	got, err := assets.GetAsset(ctx, &lightingv1.GetAssetRequest{Id: created.Asset.Id})
	require.NoError(t, err)
	assert.Equal(t, []int64{el.Element.Id}, got.Asset.ElementIds)
	require.NotNil(t, got.Asset.Location)
	assert.Equal(t, 55.7, got.Asset.Location.Latitude)
	assert.False(t, got.Asset.NoLocation)

	_, err = assets.GetAsset(ctx, &lightingv1.GetAssetRequest{Id: 9999})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestWireStreaming(t *testing.T) {
	ctx := context.Background()
	conn := dialTestServer(t)
	assets := lightingv1.NewAssetServiceClient(conn)

	var all []int64
	for i := 0; i < 5; i++ {
		resp, err := assets.CreateAsset(ctx, &lightingv1.CreateAssetRequest{
			Location: &lightingv1.Location{Latitude: 55.7, Longitude: 12.6},
		})
		require.NoError(t, err)
		all = append(all, resp.Asset.Id)
	}

	stream, err := assets.ListAssets(ctx, &lightingv1.ListAssetsRequest{Limit: 3, Offset: 1})
	require.NoError(t, err)

	var ids []int64
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		for _, a := range resp.Assets {
			ids = append(ids, a.Id)
		}
	}
	assert.Equal(t, all[1:4], ids)
}

func TestWireTelecellWithNestedBasestation(t *testing.T) {
	ctx := context.Background()
	conn := dialTestServer(t)
	basestations := lightingv1.NewBasestationServiceClient(conn)
	telecells := lightingv1.NewTelecellServiceClient(conn)

	bs, err := basestations.CreateBasestation(ctx, &lightingv1.CreateBasestationRequest{
		Uuid:     900001,
		Location: &lightingv1.Location{Latitude: 55.6, Longitude: 12.5},
	})
	require.NoError(t, err)

	_, err = telecells.CreateTelecell(ctx, &lightingv1.CreateTelecellRequest{
		Uuid:          700001,
		Relay:         true,
		BasestationId: &bs.Basestation.Id,
	})
	require.NoError(t, err)

	got, err := telecells.GetTelecell(ctx, &lightingv1.GetTelecellRequest{Uuid: 700001})
	require.NoError(t, err)
	assert.True(t, got.Telecell.Relay)
	require.NotNil(t, got.Telecell.Basestation)
	assert.Equal(t, int64(900001), got.Telecell.Basestation.Uuid)
	require.NotNil(t, got.Telecell.UpdatedAt)
	assert.NotZero(t, got.Telecell.UpdatedAt.Seconds)
}
