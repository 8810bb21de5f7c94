// Package websocket carries named events between the relay and its clients
// over gorilla/websocket, one JSON frame per websocket message.
package websocket

import (
	"chat-relay/errors"
	"encoding/json"
	"fmt"
)

// Frame is the envelope of every event: {"event": "msg_rcv", "data": {...}}.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Encode builds the wire form of a named event.
func Encode(name string, payload any) ([]byte, error) {
	frame := Frame{Event: name}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding %s payload: %w", name, err)
		}
		frame.Data = data
	}
	return json.Marshal(frame)
}

// Decode parses a frame envelope, leaving its payload raw.
func Decode(raw []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if frame.Event == "" {
		return Frame{}, fmt.Errorf("%w: missing event name", errors.ErrInvalidPayload)
	}
	return frame, nil
}

// Payload decodes the data of a frame into T.
func Payload[T any](frame Frame) (T, error) {
	var value T
	if len(frame.Data) == 0 {
		return value, fmt.Errorf("%w: %s without data", errors.ErrInvalidPayload, frame.Event)
	}
	if err := json.Unmarshal(frame.Data, &value); err != nil {
		return value, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return value, nil
}
