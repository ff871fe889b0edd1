// Package meetapi defines the request and response messages exchanged with
// the meet UI over Connect. Messages are plain Go structs carried as JSON.
package meetapi

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name, matching the "application/json" content type.
const CodecName = "json"

// Codec marshals messages with encoding/json.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return CodecName }

// Marshal implements connect.Codec.
func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal implements connect.Codec.
func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// WithCodec returns the option installing Codec on a handler or client.
func WithCodec() connect.Option {
	return connect.WithCodec(Codec{})
}
