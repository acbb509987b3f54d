// This file defines Participant entities and presence parsing.
// No runtime, network, or UI logic should be added here.
package domain

// Presence is a participant's last reported status.
type Presence int

const (
	Offline Presence = iota
	Online
)

const (
	presenceOnline  = "online"
	presenceOffline = "offline"
)

func (p Presence) String() string {
	if p == Online {
		return presenceOnline
	}
	return presenceOffline
}

// ParsePresence maps the wire status string to a Presence.
// Anything that is not "online" counts as offline.
func ParsePresence(s string) Presence {
	if s == presenceOnline {
		return Online
	}
	return Offline
}

// Participant is one known member of the chat, keyed by name.
type Participant struct {
	Name     string
	Presence Presence
}
