package models

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrMissingMedia    = errors.New("image file is required")
	ErrInvalidSchedule = errors.New("auction end must be a valid future time")
	ErrMediaUpload     = errors.New("media upload failed")
	ErrInvalidAmount   = errors.New("bid amount must be greater than zero")
	ErrInvalidEmail    = errors.New("a valid email is required")
	ErrAuctionClosed   = errors.New("auction is closed")
	ErrBidTooLow       = errors.New("bid must exceed the current leading bid")
	ErrValidation      = errors.New("missing or malformed field")
)
