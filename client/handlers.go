package client

import (
	"chat-client/domain"
	"chat-client/protocol"
	"chat-client/session"
)

// handleLogin resolves the Authenticating state. Success binds the
// identity and reveals the chat view; failure surfaces the reason and
// closes the transport, which reverts the UI on the close event.
func (c *Client) handleLogin(sess *session.Session, env protocol.Envelope) {
	c.stopAuthTimer()

	if env.Status == protocol.StatusSuccess {
		c.mu.Lock()
		pending := c.pending
		c.pending = ""
		c.mu.Unlock()

		if err := sess.SetIdentity(pending); err != nil {
			c.log.Error("Ignoring duplicate login reply", "error", err)
			return
		}
		sess.SetState(session.Authenticated)
		c.surface.ShowChatView(pending)
		return
	}

	c.surface.ShowError(env.Message)
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t != nil {
		_ = t.Close()
	}
}

// handleRegister never authenticates. Success tears the connection down
// quietly and returns the user to the login view; failure keeps the
// connection and the register view so the user can retry.
func (c *Client) handleRegister(sess *session.Session, env protocol.Envelope) {
	c.stopAuthTimer()

	if env.Status == protocol.StatusSuccess {
		c.mu.Lock()
		t := c.transport
		c.transport = nil
		c.pending = ""
		c.mu.Unlock()

		sess.SetState(session.Disconnected)
		if t != nil {
			_ = t.Close()
		}
		c.surface.ShowLoginView()
		return
	}

	c.surface.ShowError(env.Message)
	c.surface.ShowRegisterView()
}

// handleMessage validates and renders one live chat message.
func (c *Client) handleMessage(sess *session.Session, env protocol.Envelope) {
	c.renderMessage(sess, env.MessagePayload)
}

// handleRoster serves both userList and userStatusUpdate: the protocol
// treats a status delta as a full roster snapshot, so both replace the
// roster wholesale and regenerate the recipient picker.
func (c *Client) handleRoster(sess *session.Session, env protocol.Envelope) {
	sess.ReplaceRoster(env.Users)
	c.surface.RenderRoster(rosterView(sess))
	c.surface.RenderRecipients(sess.Recipients())
}

// handleError surfaces the server's message verbatim. It does not
// change connection state.
func (c *Client) handleError(_ *session.Session, env protocol.Envelope) {
	c.surface.ShowError(env.Message)
}

// handleHistory replays the stored timeline: the display log is cleared
// and every payload goes through the identical path as a live message,
// in source order.
func (c *Client) handleHistory(sess *session.Session, env protocol.Envelope) {
	c.surface.ClearMessages()
	for _, payload := range env.Messages {
		c.renderMessage(sess, payload)
	}
}

// renderMessage is the single render path shared by live messages and
// history replay. An invalid timestamp is a hard skip: the message is
// dropped with a diagnostic and nothing reaches the display log.
func (c *Client) renderMessage(sess *session.Session, payload protocol.MessagePayload) {
	ts, err := payload.TimestampMillis()
	if err != nil {
		c.log.Error("Dropping message with invalid timestamp",
			"sender", payload.Sender, "timestamp", payload.Timestamp)
		return
	}

	msg := domain.ChatMessage{
		Sender:    payload.Sender,
		Content:   payload.Content,
		Receiver:  payload.Receiver,
		Timestamp: ts,
	}

	identity := sess.Identity()
	if !msg.Broadcast() && !msg.Involves(identity) {
		// The server filters private messages; one addressed to neither
		// party must never be rendered here.
		c.log.Warn("Dropping private message not addressed to this client",
			"sender", msg.Sender)
		return
	}

	c.surface.AppendMessage(c.presenter.Render(msg, identity))
}
