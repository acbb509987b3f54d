// Package domain contains core concepts of the chat client.
// This file defines ChatMessage and the display classification rules.
// Messages are immutable and carry no transport or UI logic.
package domain

// ChatMessage represents one immutable chat event, live or replayed.
// A nil Receiver denotes a broadcast visible to every participant;
// a non-nil Receiver restricts visibility to the sender and that receiver.
type ChatMessage struct {
	Sender    string
	Content   string
	Receiver  *string
	Timestamp int64 // epoch milliseconds
}

// Broadcast reports whether the message is addressed to the whole room.
func (m ChatMessage) Broadcast() bool {
	return m.Receiver == nil
}

// Involves reports whether name is the sender or the receiver.
func (m ChatMessage) Involves(name string) bool {
	if m.Sender == name {
		return true
	}
	return m.Receiver != nil && *m.Receiver == name
}

// Classification is the display category of a message for a given
// local identity. There are exactly four outcomes.
type Classification int

const (
	GroupReceived Classification = iota
	GroupSent
	PrivateReceived
	PrivateSent
)

func (c Classification) String() string {
	switch c {
	case GroupSent:
		return "group-sent"
	case PrivateReceived:
		return "private-received"
	case PrivateSent:
		return "private-sent"
	default:
		return "group-received"
	}
}

// Private reports whether the classification is one of the private outcomes.
func (c Classification) Private() bool {
	return c == PrivateSent || c == PrivateReceived
}

// Classify applies the display rule for a message seen by identity.
// The private test runs first: a message with a receiver is private only
// when the local identity is one of the two parties. Everything else is
// a group message, split by authorship.
func Classify(m ChatMessage, identity string) Classification {
	if m.Receiver != nil && (*m.Receiver == identity || m.Sender == identity) {
		if m.Sender == identity {
			return PrivateSent
		}
		return PrivateReceived
	}
	if m.Sender == identity {
		return GroupSent
	}
	return GroupReceived
}
