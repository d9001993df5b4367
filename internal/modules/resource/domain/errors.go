package domain

import "errors"

var (
	ErrUnknownKind            = errors.New("unknown resource kind")
	ErrNotFound               = errors.New("resource not found")
	ErrArtistProfileNotFound  = errors.New("Artist profile not found")
	ErrManagerProfileNotFound = errors.New("Manager profile not found")
	ErrAccountNotCreated      = errors.New("artist account was not created")
)
