// Package protocol defines the JSON wire envelopes exchanged with the
// chat server and the codec for them. Every frame is one complete
// envelope carrying a type discriminator; there is no fragmentation.
package protocol

import (
	"math"

	"chat-client/errors"
)

// Envelope types understood by the dispatcher. Anything else is
// logged and dropped by the caller, never treated as fatal.
const (
	TypeLogin            = "login"
	TypeRegister         = "register"
	TypeMessage          = "message"
	TypeUserList         = "userList"
	TypeUserStatusUpdate = "userStatusUpdate"
	TypeError            = "error"
	TypeHistory          = "history"
)

// Reply statuses for login and register envelopes.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// MessagePayload is the chat-message portion of an envelope. Timestamp is
// decoded loosely so that a malformed value invalidates one message, not
// the whole frame.
type MessagePayload struct {
	Sender    string  `json:"sender"`
	Content   string  `json:"content"`
	Receiver  *string `json:"receiver"`
	Timestamp any     `json:"timestamp"`
}

// TimestampMillis validates and returns the epoch-millisecond timestamp.
// JSON numbers arrive as float64; anything else, or a non-finite value,
// is rejected.
func (p MessagePayload) TimestampMillis() (int64, error) {
	f, ok := p.Timestamp.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.ErrInvalidTimestamp
	}
	return int64(f), nil
}

// Envelope is one decoded inbound frame. Only the fields matching its
// Type are meaningful; the rest stay at their zero values.
type Envelope struct {
	Type string `json:"type"`

	// login / register replies, and error envelopes.
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`

	// login / register requests (client to server).
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// history requests (client to server).
	Page int `json:"page,omitempty"`
	Size int `json:"size,omitempty"`

	// userList / userStatusUpdate: full roster snapshot, name -> status.
	Users map[string]string `json:"users,omitempty"`

	// history: ordered oldest-first.
	Messages []MessagePayload `json:"messages,omitempty"`

	MessagePayload
}
