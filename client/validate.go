package client

import (
	"github.com/go-playground/validator/v10"

	"chat-client/domain"
	"chat-client/errors"
)

var validate = validator.New()

type credentialRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// validateCredential rejects blank credentials before anything is sent,
// mirroring the server's own emptiness check.
func validateCredential(cred domain.Credential) error {
	req := credentialRequest{Username: cred.Username, Password: cred.Password}
	if err := validate.Struct(req); err != nil {
		return errors.ErrEmptyCredential
	}
	return nil
}
