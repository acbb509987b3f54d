package protocol

import "chat-client/domain"

// Command is an outbound envelope. Implementations are plain structs
// whose JSON form is the exact wire payload.
type Command interface {
	CommandType() string
}

type LoginCommand struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewLoginCommand(cred domain.Credential) LoginCommand {
	return LoginCommand{Type: TypeLogin, Username: cred.Username, Password: cred.Password}
}

func (c LoginCommand) CommandType() string { return c.Type }

type RegisterCommand struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewRegisterCommand(cred domain.Credential) RegisterCommand {
	return RegisterCommand{Type: TypeRegister, Username: cred.Username, Password: cred.Password}
}

func (c RegisterCommand) CommandType() string { return c.Type }

type MessageCommand struct {
	Type      string  `json:"type"`
	Sender    string  `json:"sender"`
	Content   string  `json:"content"`
	Receiver  *string `json:"receiver"`
	Timestamp int64   `json:"timestamp"`
}

func NewMessageCommand(msg domain.ChatMessage) MessageCommand {
	return MessageCommand{
		Type:      TypeMessage,
		Sender:    msg.Sender,
		Content:   msg.Content,
		Receiver:  msg.Receiver,
		Timestamp: msg.Timestamp,
	}
}

func (c MessageCommand) CommandType() string { return c.Type }

// HistoryCommand asks the server for one page of the stored timeline.
type HistoryCommand struct {
	Type string `json:"type"`
	Page int    `json:"page"`
	Size int    `json:"size"`
}

func NewHistoryCommand(page, size int) HistoryCommand {
	return HistoryCommand{Type: TypeHistory, Page: page, Size: size}
}

func (c HistoryCommand) CommandType() string { return c.Type }
