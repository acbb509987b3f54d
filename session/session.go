// Package session holds the authenticated identity and the roster of
// known participants. One Session belongs to exactly one client
// instance; it is created on a connect attempt and cleared on close.
package session

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"chat-client/domain"
	"chat-client/errors"
)

// State is the lifecycle of the client's single connection.
type State int

const (
	Disconnected State = iota
	Connecting
	Authenticating
	Authenticated
	Closed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Closed:
		return "closed"
	default:
		return "disconnected"
	}
}

// Session owns the identity and roster. Mutations normally arrive from
// the single envelope-handling loop, but reads may come from user-action
// goroutines, so access is guarded.
type Session struct {
	mu       sync.Mutex
	state    State
	identity string
	roster   map[string]domain.Presence
}

func New() *Session {
	return &Session{
		state:  Disconnected,
		roster: make(map[string]domain.Presence),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// SetIdentity records the authenticated username. It is called exactly
// once per session, on a successful login.
func (s *Session) SetIdentity(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity != "" {
		return errors.ErrIdentitySet
	}
	s.identity = name
	return nil
}

// ReplaceRoster installs a full roster snapshot. Both userList and
// userStatusUpdate envelopes carry complete snapshots, never deltas, so
// the previous roster is discarded wholesale: a name missing from the
// snapshot disappears entirely rather than losing presence.
func (s *Session) ReplaceRoster(users map[string]string) {
	next := make(map[string]domain.Presence, len(users))
	for name, status := range users {
		next[name] = domain.ParsePresence(status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = next
}

// Roster returns the known participants sorted by name.
func (s *Session) Roster() []domain.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants := lo.MapToSlice(s.roster, func(name string, p domain.Presence) domain.Participant {
		return domain.Participant{Name: name, Presence: p}
	})
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].Name < participants[j].Name
	})
	return participants
}

// Recipients returns the sorted names eligible as private-message
// targets: every roster member except the local identity.
func (s *Session) Recipients() []string {
	s.mu.Lock()
	identity := s.identity
	names := lo.Keys(s.roster)
	s.mu.Unlock()

	names = lo.Filter(names, func(name string, _ int) bool {
		return name != identity
	})
	sort.Strings(names)
	return names
}

// Clear resets identity and roster after the transport closes.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = ""
	s.roster = make(map[string]domain.Presence)
}
