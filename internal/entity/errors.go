package entity

import "errors"

var (
	ErrBuyerNotFound = errors.New("buyer not found")

	// ErrStaleWrite means the record changed since the caller read it.
	// The caller should refresh and retry.
	ErrStaleWrite = errors.New("record has been modified by another user")

	// ErrNotOwner means the acting user is not the buyer's owner.
	ErrNotOwner = errors.New("only the owner may modify this lead")

	// ErrBuyerAccessDenied conflates not-found and not-owner on delete so
	// the caller cannot probe for other users' lead ids.
	ErrBuyerAccessDenied = errors.New("buyer not found or access denied")

	ErrSessionNotFound = errors.New("session not found or expired")
)
