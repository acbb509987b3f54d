// Package ui classifies and formats chat messages for display and
// renders the roster and recipient picker. It observes state handed to
// it by the client and never mutates domain or session state.
package ui

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"

	"chat-client/domain"
)

// timeLayout matches the server-side history display format.
const timeLayout = "2006-01-02 15:04:05"

// Presenter turns a validated ChatMessage into one display-log entry.
// Live and replayed messages go through the exact same path so their
// formatting can never diverge.
type Presenter struct {
	loc *time.Location
}

func NewPresenter(loc *time.Location) *Presenter {
	if loc == nil {
		loc = time.Local
	}
	return &Presenter{loc: loc}
}

// Render formats a message for the given local identity. The four
// classification outcomes get distinct phrasing and styling.
func (p *Presenter) Render(msg domain.ChatMessage, identity string) domain.Entry {
	when := time.UnixMilli(msg.Timestamp).In(p.loc).Format(timeLayout)

	cls := domain.Classify(msg, identity)
	var text string
	switch cls {
	case domain.PrivateSent:
		text = color.Magenta.Sprintf("[%s] you whisper to %s: %s", when, *msg.Receiver, msg.Content)
	case domain.PrivateReceived:
		text = color.Magenta.Sprintf("[%s] %s whispers to you: %s", when, msg.Sender, msg.Content)
	case domain.GroupSent:
		text = color.Cyan.Sprintf("[%s] you: %s", when, msg.Content)
	default:
		text = fmt.Sprintf("[%s] %s: %s", when, msg.Sender, msg.Content)
	}

	return domain.Entry{ID: uuid.New(), Classification: cls, Text: text}
}
