// Package client owns the single persistent connection to the chat
// server: its lifecycle state machine, the envelope dispatch table, and
// the outbound commands. All inbound envelopes are processed strictly
// in delivery order on one read loop; there is no concurrent mutation
// of session state.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"chat-client/contract"
	"chat-client/domain"
	"chat-client/errors"
	"chat-client/protocol"
	"chat-client/session"
	"chat-client/ui"
)

// Config carries the connection parameters. The server address is a
// deployment constant, never user input.
type Config struct {
	ServerURL        string
	AuthTimeout      time.Duration
	HandshakeTimeout time.Duration
}

type handlerFunc func(sess *session.Session, env protocol.Envelope)

// Client is the protocol handler. One Client drives at most one open
// connection; initiating login or register while a connection exists
// closes the old transport before dialing the new one.
type Client struct {
	log       *slog.Logger
	cfg       Config
	surface   contract.ISurface
	presenter *ui.Presenter

	handlers map[string]handlerFunc
	dialer   dialer

	mu        sync.Mutex
	sess      *session.Session
	transport contract.ITransport
	pending   string // username awaiting an auth reply
	authTimer *time.Timer
}

func New(log *slog.Logger, cfg Config, surface contract.ISurface, presenter *ui.Presenter) *Client {
	c := &Client{
		log:       log,
		cfg:       cfg,
		surface:   surface,
		presenter: presenter,
		sess:      session.New(),
	}
	c.handlers = map[string]handlerFunc{
		protocol.TypeLogin:            c.handleLogin,
		protocol.TypeRegister:         c.handleRegister,
		protocol.TypeMessage:          c.handleMessage,
		protocol.TypeUserList:         c.handleRoster,
		protocol.TypeUserStatusUpdate: c.handleRoster,
		protocol.TypeError:            c.handleError,
		protocol.TypeHistory:          c.handleHistory,
	}
	c.dialer = wsDialer{handshakeTimeout: cfg.HandshakeTimeout}
	return c
}

// Session exposes the current session for read access.
func (c *Client) Session() *session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// Login validates the credential, establishes a fresh connection and
// sends the login command. The credential is not retained; only the
// username is kept until the auth reply arrives.
func (c *Client) Login(ctx context.Context, cred domain.Credential) error {
	if err := validateCredential(cred); err != nil {
		return err
	}
	return c.connect(ctx, cred.Username, protocol.NewLoginCommand(cred))
}

// Register behaves like Login on the wire but never creates a session:
// a success reply returns the user to the login view.
func (c *Client) Register(ctx context.Context, cred domain.Credential) error {
	if err := validateCredential(cred); err != nil {
		return err
	}
	return c.connect(ctx, cred.Username, protocol.NewRegisterCommand(cred))
}

func (c *Client) connect(ctx context.Context, username string, cmd protocol.Command) error {
	c.mu.Lock()
	if c.transport != nil {
		// Replace, never leak: the previous transport is closed before
		// a new one is dialed.
		_ = c.transport.Close()
		c.transport = nil
	}
	c.stopAuthTimerLocked()
	sess := session.New()
	sess.SetState(session.Connecting)
	c.sess = sess
	c.pending = username
	c.mu.Unlock()

	t, err := c.dialer.Dial(ctx, c.cfg.ServerURL)
	if err != nil {
		sess.SetState(session.Closed)
		return fmt.Errorf("connect %s: %w", c.cfg.ServerURL, err)
	}

	data, err := protocol.Encode(cmd)
	if err != nil {
		_ = t.Close()
		sess.SetState(session.Closed)
		return err
	}

	c.mu.Lock()
	c.transport = t
	sess.SetState(session.Authenticating)
	c.authTimer = time.AfterFunc(c.cfg.AuthTimeout, func() { c.authTimedOut(sess, t) })
	c.mu.Unlock()

	if err := t.WriteMessage(data); err != nil {
		c.mu.Lock()
		c.transport = nil
		c.stopAuthTimerLocked()
		c.mu.Unlock()
		_ = t.Close()
		sess.SetState(session.Closed)
		return fmt.Errorf("send %s command: %w", cmd.CommandType(), err)
	}

	go c.readLoop(t, sess)
	return nil
}

// SendMessage builds a chat message from the compose action and
// transmits it. A nil receiver broadcasts to everyone. Rendering
// happens when the server echoes the message back to the sender.
func (c *Client) SendMessage(content string, receiver *string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	c.mu.Lock()
	sess := c.sess
	t := c.transport
	c.mu.Unlock()

	if t == nil || sess.State() != session.Authenticated {
		return errors.ErrNotAuthenticated
	}

	msg := domain.ChatMessage{
		Sender:    sess.Identity(),
		Content:   content,
		Receiver:  receiver,
		Timestamp: time.Now().UnixMilli(),
	}
	data, err := protocol.Encode(protocol.NewMessageCommand(msg))
	if err != nil {
		return err
	}
	if err := t.WriteMessage(data); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// RequestHistory asks the server for one page of the stored timeline.
func (c *Client) RequestHistory(page, size int) error {
	c.mu.Lock()
	sess := c.sess
	t := c.transport
	c.mu.Unlock()

	if t == nil || sess.State() != session.Authenticated {
		return errors.ErrNotAuthenticated
	}

	data, err := protocol.Encode(protocol.NewHistoryCommand(page, size))
	if err != nil {
		return err
	}
	if err := t.WriteMessage(data); err != nil {
		return fmt.Errorf("request history: %w", err)
	}
	return nil
}

// Close tears down the current transport, if any. Safe to call twice.
func (c *Client) Close() error {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()
	if t == nil {
		return nil
	}
	return t.Close()
}

// readLoop is the single inbound event loop for one connection.
// Envelopes are handled one at a time in delivery order.
func (c *Client) readLoop(t contract.ITransport, sess *session.Session) {
	for {
		data, err := t.ReadMessage()
		if err != nil {
			c.transportClosed(t, sess, err)
			return
		}
		env, err := protocol.Decode(data)
		if err != nil {
			// Malformed frame: discard it and keep the connection.
			c.log.Error("Dropping malformed frame", "error", err)
			continue
		}
		c.dispatch(sess, env)
	}
}

// dispatch routes one decoded envelope by its declared type. Unknown
// types are logged and dropped; they change no state (fail-open).
func (c *Client) dispatch(sess *session.Session, env protocol.Envelope) {
	handler, ok := c.handlers[env.Type]
	if !ok {
		c.log.Warn("Ignoring envelope with unrecognized type", "type", env.Type)
		return
	}
	handler(sess, env)
}

// transportClosed runs once the connection dies, whether remotely or
// because this client closed it. The session is discarded and the UI
// reverts to the pre-authentication view. No automatic reconnect.
func (c *Client) transportClosed(t contract.ITransport, sess *session.Session, err error) {
	c.mu.Lock()
	current := c.transport == t
	if current {
		c.transport = nil
		// Only the live connection may cancel the auth timer; a timer
		// started by a replacing connection must keep running.
		c.stopAuthTimerLocked()
	}
	c.mu.Unlock()

	if !current {
		// A newer connection already replaced this one.
		return
	}
	if sess.State() == session.Disconnected {
		// Register success already reset the lifecycle.
		return
	}

	c.log.Info("Connection closed", "error", err)
	sess.Clear()
	sess.SetState(session.Closed)
	c.surface.ShowLoginView()
}

// authTimedOut resolves the inherited open question of an indefinite
// Authenticating hang: after the configured timeout the transport is
// closed and the failure surfaced. Timer.Stop does not wait for a
// callback already in flight, so the check runs under the client lock
// against the session the timer was armed for, and only that session's
// own transport is ever closed. A timer outlived by a replacing
// connection or a resolved auth reply is a no-op.
func (c *Client) authTimedOut(sess *session.Session, t contract.ITransport) {
	c.mu.Lock()
	live := c.sess == sess && sess.State() == session.Authenticating
	if live {
		c.authTimer = nil
	}
	c.mu.Unlock()
	if !live {
		return
	}

	c.log.Error("Authentication timed out", "timeout", c.cfg.AuthTimeout)
	c.surface.ShowError(errors.ErrAuthTimeout.Error())
	_ = t.Close()
}

func (c *Client) stopAuthTimerLocked() {
	if c.authTimer != nil {
		c.authTimer.Stop()
		c.authTimer = nil
	}
}

func (c *Client) stopAuthTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopAuthTimerLocked()
}

// rosterView is the roster snapshot minus the local identity, the only
// form the surface ever sees.
func rosterView(sess *session.Session) []domain.Participant {
	identity := sess.Identity()
	return lo.Filter(sess.Roster(), func(p domain.Participant, _ int) bool {
		return p.Name != identity
	})
}
