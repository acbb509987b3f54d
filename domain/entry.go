package domain

import "github.com/google/uuid"

// Entry is one rendered line of the display log. Once appended it is
// never re-read by the client; the surface owns it.
type Entry struct {
	ID             uuid.UUID
	Classification Classification
	Text           string
}
