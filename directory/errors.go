package directory

import "errors"

var (
	// ErrEmptyKey is returned when no access key was supplied
	ErrEmptyKey = errors.New("access key is empty")
	// ErrInvalidKey is returned when the access key is not in the directory
	ErrInvalidKey = errors.New("access key is not valid")
	// ErrExpiredKey is returned when the access key is past its expiry date
	ErrExpiredKey = errors.New("access key has expired")
	// ErrProtectedKey is returned on an attempt to delete or overwrite a protected key
	ErrProtectedKey = errors.New("access key is protected")
	// ErrKeyNotFound is returned when an administrative action names an absent key
	ErrKeyNotFound = errors.New("access key not found")
	// ErrKeyExists is returned when creating a key that is already in the directory
	ErrKeyExists = errors.New("access key already exists")
	// ErrInvalidRecord is wrapped by every rejected create or update request
	ErrInvalidRecord = errors.New("invalid access key record")
)
