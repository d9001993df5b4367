package domain

import "errors"

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrRoleNotRegistrable = errors.New("role cannot be self-registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("backend did not return an access token")
	ErrUndecodableToken   = errors.New("access token could not be decoded")
)
