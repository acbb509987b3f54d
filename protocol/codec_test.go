package protocol

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"chat-client/domain"
	"chat-client/errors"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Run("should round-trip a login command", func(t *testing.T) {
		req := require.New(t)
		cmd := NewLoginCommand(domain.Credential{Username: "alice", Password: "x"})

		data, err := Encode(cmd)
		req.NoError(err)

		env, err := Decode(data)
		req.NoError(err)
		req.Equal(TypeLogin, env.Type)
		req.Equal("alice", env.Username)
		req.Equal("x", env.Password)
	})

	t.Run("should round-trip a register command", func(t *testing.T) {
		req := require.New(t)
		cmd := NewRegisterCommand(domain.Credential{Username: "bob", Password: "pw"})

		data, err := Encode(cmd)
		req.NoError(err)

		env, err := Decode(data)
		req.NoError(err)
		req.Equal(TypeRegister, env.Type)
		req.Equal("bob", env.Username)
		req.Equal("pw", env.Password)
	})

	t.Run("should round-trip a private message command with its timestamp", func(t *testing.T) {
		req := require.New(t)
		cmd := NewMessageCommand(domain.ChatMessage{
			Sender:    "alice",
			Content:   "secret",
			Receiver:  lo.ToPtr("bob"),
			Timestamp: 1699300000000,
		})

		data, err := Encode(cmd)
		req.NoError(err)

		env, err := Decode(data)
		req.NoError(err)
		req.Equal(TypeMessage, env.Type)
		req.Equal("alice", env.Sender)
		req.Equal("secret", env.Content)
		req.NotNil(env.Receiver)
		req.Equal("bob", *env.Receiver)

		ts, err := env.TimestampMillis()
		req.NoError(err)
		req.Equal(int64(1699300000000), ts)
	})

	t.Run("should keep a nil receiver as an explicit broadcast", func(t *testing.T) {
		req := require.New(t)
		cmd := NewMessageCommand(domain.ChatMessage{Sender: "alice", Content: "hi", Timestamp: 1})

		data, err := Encode(cmd)
		req.NoError(err)
		req.Contains(string(data), `"receiver":null`)

		env, err := Decode(data)
		req.NoError(err)
		req.Nil(env.Receiver)
	})

	t.Run("should round-trip a history request", func(t *testing.T) {
		req := require.New(t)

		data, err := Encode(NewHistoryCommand(2, 50))
		req.NoError(err)

		env, err := Decode(data)
		req.NoError(err)
		req.Equal(TypeHistory, env.Type)
		req.Equal(2, env.Page)
		req.Equal(50, env.Size)
	})
}

func TestDecode(t *testing.T) {
	t.Run("should fail on a malformed frame without panicking", func(t *testing.T) {
		req := require.New(t)

		_, err := Decode([]byte("{not json"))
		req.Error(err)
	})

	t.Run("should decode a roster snapshot", func(t *testing.T) {
		req := require.New(t)

		env, err := Decode([]byte(`{"type":"userList","users":{"bob":"online","carol":"offline"}}`))
		req.NoError(err)
		req.Equal(TypeUserList, env.Type)
		req.Equal(map[string]string{"bob": "online", "carol": "offline"}, env.Users)
	})

	t.Run("should decode history messages preserving order", func(t *testing.T) {
		req := require.New(t)

		env, err := Decode([]byte(`{"type":"history","messages":[
			{"sender":"bob","content":"first","receiver":null,"timestamp":1},
			{"sender":"carol","content":"second","receiver":null,"timestamp":2}]}`))
		req.NoError(err)
		req.Equal(TypeHistory, env.Type)
		req.Len(env.Messages, 2)
		req.Equal("first", env.Messages[0].Content)
		req.Equal("second", env.Messages[1].Content)
	})

	t.Run("should tolerate an unrecognized type", func(t *testing.T) {
		req := require.New(t)

		env, err := Decode([]byte(`{"type":"jazz","volume":11}`))
		req.NoError(err)
		req.Equal("jazz", env.Type)
	})
}

func TestMessagePayload_TimestampMillis(t *testing.T) {
	t.Run("should accept a finite number", func(t *testing.T) {
		req := require.New(t)

		ts, err := MessagePayload{Timestamp: float64(1699300000000)}.TimestampMillis()
		req.NoError(err)
		req.Equal(int64(1699300000000), ts)
	})

	t.Run("should reject a string timestamp", func(t *testing.T) {
		req := require.New(t)

		_, err := MessagePayload{Timestamp: "abc"}.TimestampMillis()
		req.ErrorIs(err, errors.ErrInvalidTimestamp)
	})

	t.Run("should reject a missing timestamp", func(t *testing.T) {
		req := require.New(t)

		_, err := MessagePayload{}.TimestampMillis()
		req.ErrorIs(err, errors.ErrInvalidTimestamp)
	})
}
