package ui

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"chat-client/domain"
)

func newTestTerminal() (*Terminal, *bytes.Buffer) {
	color.Disable()
	var buf bytes.Buffer
	return NewTerminal(&buf), &buf
}

func TestTerminal_RenderRoster(t *testing.T) {
	roster := []domain.Participant{
		{Name: "bob", Presence: domain.Online},
		{Name: "carol", Presence: domain.Offline},
	}

	t.Run("should show every participant with a presence indicator", func(t *testing.T) {
		req := require.New(t)
		term, buf := newTestTerminal()

		term.RenderRoster(roster)

		out := buf.String()
		req.Contains(out, "bob")
		req.Contains(out, "● online")
		req.Contains(out, "carol")
		req.Contains(out, "○ offline")
	})

	t.Run("should produce identical output for identical snapshots", func(t *testing.T) {
		req := require.New(t)
		first, firstBuf := newTestTerminal()
		second, secondBuf := newTestTerminal()

		first.RenderRoster(roster)
		second.RenderRoster(roster)

		req.Equal(firstBuf.String(), secondBuf.String())
	})
}

func TestTerminal_RenderRecipients(t *testing.T) {
	t.Run("should list whisper targets", func(t *testing.T) {
		req := require.New(t)
		term, buf := newTestTerminal()

		term.RenderRecipients([]string{"bob", "carol"})

		req.Contains(buf.String(), "bob, carol")
	})

	t.Run("should say so when alone", func(t *testing.T) {
		req := require.New(t)
		term, buf := newTestTerminal()

		term.RenderRecipients(nil)

		req.Contains(buf.String(), "nobody else")
	})
}

func TestTerminal_MessageLog(t *testing.T) {
	t.Run("should append entries verbatim and clear on replay", func(t *testing.T) {
		req := require.New(t)
		term, buf := newTestTerminal()

		term.AppendMessage(domain.Entry{ID: uuid.New(), Text: "[ts] bob: hi"})
		req.Contains(buf.String(), "[ts] bob: hi")

		term.ClearMessages()
		req.Contains(buf.String(), clearScreen)
	})
}

func TestTerminal_Views(t *testing.T) {
	req := require.New(t)
	term, buf := newTestTerminal()

	term.ShowLoginView()
	term.ShowRegisterView()
	term.ShowChatView("alice")
	term.ShowError("bad password")

	out := buf.String()
	req.Contains(out, "login")
	req.Contains(out, "register")
	req.Contains(out, "connected as alice")
	req.Contains(out, "error: bad password")
}
