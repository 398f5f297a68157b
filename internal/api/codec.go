package api

import "github.com/bytedance/sonic"

// codec is the codec for request bodies, responses and error payloads.
// ConfigStd keeps encoding/json semantics (sorted map keys, HTML escaping,
// json.Marshaler and json.Unmarshaler support).
var codec = sonic.ConfigStd

// Marshal encodes v with the client codec.
func Marshal(v any) ([]byte, error) {
	return codec.Marshal(v)
}

// Unmarshal decodes data into v with the client codec.
func Unmarshal(data []byte, v any) error {
	return codec.Unmarshal(data, v)
}
