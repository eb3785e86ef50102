package lightingv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// The message types in this package are hand maintained rather than
// generated, so the stock proto codec cannot marshal them. This codec
// keeps the proto wire format for generated messages (health checks
// and the like) and encodes the lighting messages as JSON. Registering
// it under the proto name makes it the default on every client and
// server that links this package; no dial or server option is needed.
type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

func (codec) Name() string { return "proto" }

func (codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return proto.Marshal(m)
	}
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}
