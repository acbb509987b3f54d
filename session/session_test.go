package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chat-client/domain"
	"chat-client/errors"
)

func TestSession_SetIdentity(t *testing.T) {
	t.Run("should set the identity exactly once", func(t *testing.T) {
		req := require.New(t)
		s := New()

		req.NoError(s.SetIdentity("alice"))
		req.Equal("alice", s.Identity())

		req.ErrorIs(s.SetIdentity("mallory"), errors.ErrIdentitySet)
		req.Equal("alice", s.Identity())
	})
}

func TestSession_ReplaceRoster(t *testing.T) {
	t.Run("should replace the roster wholesale, dropping omitted users", func(t *testing.T) {
		req := require.New(t)
		s := New()

		s.ReplaceRoster(map[string]string{"bob": "online", "carol": "offline"})
		req.Equal([]domain.Participant{
			{Name: "bob", Presence: domain.Online},
			{Name: "carol", Presence: domain.Offline},
		}, s.Roster())

		// A snapshot omitting carol removes her entirely, it does not
		// merely flip her presence.
		s.ReplaceRoster(map[string]string{"bob": "offline"})
		req.Equal([]domain.Participant{
			{Name: "bob", Presence: domain.Offline},
		}, s.Roster())
	})

	t.Run("should be idempotent for identical snapshots", func(t *testing.T) {
		req := require.New(t)
		s := New()
		snapshot := map[string]string{"bob": "online", "carol": "offline"}

		s.ReplaceRoster(snapshot)
		first := s.Roster()
		s.ReplaceRoster(snapshot)
		second := s.Roster()

		req.Equal(first, second)
	})
}

func TestSession_Recipients(t *testing.T) {
	t.Run("should list everyone but the local identity, sorted", func(t *testing.T) {
		req := require.New(t)
		s := New()
		req.NoError(s.SetIdentity("alice"))

		s.ReplaceRoster(map[string]string{"carol": "offline", "alice": "online", "bob": "online"})

		req.Equal([]string{"bob", "carol"}, s.Recipients())
	})
}

func TestSession_Clear(t *testing.T) {
	t.Run("should reset identity and roster on transport close", func(t *testing.T) {
		req := require.New(t)
		s := New()
		req.NoError(s.SetIdentity("alice"))
		s.ReplaceRoster(map[string]string{"bob": "online"})

		s.Clear()

		req.Empty(s.Identity())
		req.Empty(s.Roster())
		req.Empty(s.Recipients())
	})
}

func TestState_String(t *testing.T) {
	req := require.New(t)

	req.Equal("disconnected", Disconnected.String())
	req.Equal("connecting", Connecting.String())
	req.Equal("authenticating", Authenticating.String())
	req.Equal("authenticated", Authenticated.String())
	req.Equal("closed", Closed.String())
}
