package domain

// Credential is a transient username/password pair. It is held only long
// enough to build a login or register command and is never persisted.
type Credential struct {
	Username string
	Password string
}
