//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import "chat-client/domain"

// ITransport is one persistent, message-oriented connection. Each
// WriteMessage/ReadMessage carries exactly one complete envelope frame.
type ITransport interface {
	WriteMessage(data []byte) error
	ReadMessage() ([]byte, error)
	Close() error
}

// ISurface is the UI collaborator the client renders against. The
// client produces render calls; it owns neither markup nor styling.
type ISurface interface {
	ShowLoginView()
	ShowRegisterView()
	ShowChatView(identity string)
	ShowError(message string)

	AppendMessage(entry domain.Entry)
	ClearMessages()

	RenderRoster(participants []domain.Participant)
	RenderRecipients(names []string)
}
