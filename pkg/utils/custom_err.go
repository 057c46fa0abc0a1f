package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrEntityNotFound     = errors.New("entity not found")
	ErrFeedbackNotFound   = errors.New("feedback not found")
	ErrUnresolvedTarget   = errors.New("entity type is not registered")
	ErrInvalidStatus      = errors.New("invalid feedback status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrForbidden          = errors.New("forbidden")
	ErrMailNotConfigured  = errors.New("mail transport is not configured")
)
