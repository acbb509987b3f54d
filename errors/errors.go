package errors

import "fmt"

var (
	ErrInvalidTimestamp = fmt.Errorf("invalid message timestamp")
	ErrEmptyCredential  = fmt.Errorf("username and password must not be empty")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrAuthTimeout      = fmt.Errorf("no response from server")
	ErrIdentitySet      = fmt.Errorf("identity already set")
	ErrClosed           = fmt.Errorf("connection closed")
)
