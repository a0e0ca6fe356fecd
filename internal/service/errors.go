package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenIsExpired signals a well-formed token past its expiry;
	// ErrTokenIsInvalid covers every other verification failure (bad
	// signature, wrong issuer, malformed compact form). The auth middleware
	// reports the two cases with distinct messages.
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrNotBlogOwner is returned when an authenticated caller attempts to
	// mutate a post owned by somebody else.
	ErrNotBlogOwner = errors.New("caller is not the blog owner")

	// ErrInvalidBlogState is returned when a state change names anything
	// other than draft or published.
	ErrInvalidBlogState = errors.New("state must be either draft or published")
)
