package protocol

import (
	"encoding/json"
	"fmt"
)

// Encode serializes an outbound command to its wire payload.
// No compression, no versioning: the struct is the schema.
func Encode(cmd Command) ([]byte, error) {
	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode %s command: %w", cmd.CommandType(), err)
	}
	return data, nil
}

// Decode parses one inbound frame. On failure the caller must drop the
// frame and keep the connection open; decoding is never fatal.
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode frame: %w", err)
	}
	return env, nil
}
